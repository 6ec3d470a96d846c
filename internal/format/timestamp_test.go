package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"afternoon", time.Date(2026, time.March, 5, 15, 45, 0, 0, time.UTC), "05 Mar - 3:45 PM"},
		{"midnight", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "01 Jan - 12:00 AM"},
		{"noon", time.Date(2026, time.December, 31, 12, 5, 0, 0, time.UTC), "31 Dec - 12:05 PM"},
		{"morning", time.Date(2026, time.July, 14, 9, 7, 0, 0, time.UTC), "14 Jul - 9:07 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Timestamp(tt.in))
		})
	}
}

func TestTimestamp_UsesValueLocation(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)
	ts := time.Date(2026, time.March, 5, 15, 45, 0, 0, loc)

	assert.Equal(t, "05 Mar - 3:45 PM", Timestamp(ts))
}

func TestNew_Spanish(t *testing.T) {
	f, err := New("es")
	require.NoError(t, err)
	assert.Equal(t, "es", f.Locale())

	ts := time.Date(2026, time.March, 5, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, "05 mar. - 3:45 PM", f.Timestamp(ts))
}

func TestNew_UnsupportedLocale(t *testing.T) {
	_, err := New("xx")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestRelative(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", Relative(now, now.Add(-10*time.Second)))
	assert.Equal(t, "5m ago", Relative(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", Relative(now, now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", Relative(now, now.Add(-50*time.Hour)))
	assert.Equal(t, "1w ago", Relative(now, now.Add(-8*24*time.Hour)))
	assert.Empty(t, Relative(now, time.Time{}))
}
