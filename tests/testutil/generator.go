package testutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/nhle/notifications/internal/feed"
)

// FixedNow is the reference "now" used by deterministic tests:
// 10 March 2026, 14:30 UTC.
var FixedNow = time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports FixedNow.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// NewTestGenerator creates a generator seeded with seed whose clock is
// pinned to FixedNow. Extra options are applied after the clock.
func NewTestGenerator(t *testing.T, seed int64, opts ...feed.GeneratorOption) *feed.Generator {
	t.Helper()

	all := append([]feed.GeneratorOption{feed.WithClock(FixedClock())}, opts...)
	return feed.NewGenerator(rand.New(rand.NewSource(seed)), all...)
}
