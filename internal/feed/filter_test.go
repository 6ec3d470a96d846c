package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifications/internal/feed"
	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/tests/testutil"
)

func TestApply_NoFilterIsIdentity(t *testing.T) {
	all := testutil.NewTestGenerator(t, 1).Generate(feed.DefaultCount)

	got := feed.Apply(all, feed.NoFilter())
	require.Len(t, got, len(all))
	assert.Equal(t, all, got)
	assert.Same(t, &all[0], &got[0], "unfiltered result should be the input slice")
}

func TestApply_KeepsMatchingInOrder(t *testing.T) {
	all := []model.Notification{
		{ID: 1, Type: model.NotificationNewPost},
		{ID: 2, Type: model.NotificationNewLike},
		{ID: 3, Type: model.NotificationNewPost},
	}

	got := feed.Apply(all, feed.FilterOf(model.NotificationNewPost))

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestApply_SubsetPreservesRelativeOrder(t *testing.T) {
	all := testutil.NewTestGenerator(t, 8).Generate(200)
	byID := make(map[int]model.Notification, len(all))
	for _, n := range all {
		byID[n.ID] = n
	}

	for _, typ := range model.NotificationTypes() {
		got := feed.Apply(all, feed.FilterOf(typ))
		prev := 0
		for _, n := range got {
			assert.Equal(t, typ, n.Type)
			assert.Equal(t, byID[n.ID], n, "result must be an element of the input")
			assert.Greater(t, n.ID, prev, "order not preserved")
			prev = n.ID
		}
		assert.Equal(t, feed.CountByType(all)[typ], len(got))
	}
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, feed.Apply(nil, feed.NoFilter()))
	assert.Empty(t, feed.Apply([]model.Notification{}, feed.FilterOf(model.NotificationGeneral)))
}

func TestFilter_ToggleSameTypeTwiceClears(t *testing.T) {
	for _, typ := range model.NotificationTypes() {
		f := feed.NoFilter().Toggle(typ)
		got, ok := f.Selected()
		require.True(t, ok)
		assert.Equal(t, typ, got)

		f = f.Toggle(typ)
		_, ok = f.Selected()
		assert.False(t, ok, "second click on %s should clear the filter", typ)
	}
}

func TestFilter_ToggleOtherTypeReplaces(t *testing.T) {
	f := feed.NoFilter().
		Toggle(model.NotificationNewPost).
		Toggle(model.NotificationNewLike)

	got, ok := f.Selected()
	require.True(t, ok)
	assert.Equal(t, model.NotificationNewLike, got)
	assert.True(t, f.IsActive(model.NotificationNewLike))
	assert.False(t, f.IsActive(model.NotificationNewPost))
}

func TestFilter_EveryStateReachableInOneClick(t *testing.T) {
	states := []feed.Filter{feed.NoFilter()}
	for _, typ := range model.NotificationTypes() {
		states = append(states, feed.FilterOf(typ))
	}

	for _, from := range states {
		for _, to := range states {
			if from == to {
				continue
			}
			reached := false
			for _, click := range model.NotificationTypes() {
				if from.Toggle(click) == to {
					reached = true
				}
			}
			assert.True(t, reached, "%s -> %s not reachable", from, to)
		}
	}
}

func TestFilter_ZeroValueIsUnfiltered(t *testing.T) {
	var f feed.Filter
	_, ok := f.Selected()
	assert.False(t, ok)
	assert.Equal(t, feed.NoFilter(), f)
	assert.Equal(t, "ALL", f.String())
	assert.Equal(t, "NEW_MESSAGE", feed.FilterOf(model.NotificationNewMessage).String())
}

func TestCountByType_IncludesZeroCounts(t *testing.T) {
	counts := feed.CountByType([]model.Notification{
		{ID: 1, Type: model.NotificationGeneral},
		{ID: 2, Type: model.NotificationGeneral},
	})

	assert.Equal(t, map[model.NotificationType]int{
		model.NotificationGeneral:    2,
		model.NotificationNewPost:    0,
		model.NotificationNewMessage: 0,
		model.NotificationNewLike:    0,
	}, counts)
}
