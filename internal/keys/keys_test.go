package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notifications/internal/model"
)

func TestFilterFor_OneDistinctKeyPerType(t *testing.T) {
	k := DefaultKeyMap()
	seen := map[string]model.NotificationType{}

	for _, typ := range model.NotificationTypes() {
		b := k.FilterFor(typ)
		assert.True(t, b.Enabled(), typ)
		for _, key := range b.Keys() {
			prev, dup := seen[key]
			assert.False(t, dup, "%s and %s share key %q", prev, typ, key)
			seen[key] = typ
		}
	}
	assert.NotContains(t, seen, "0")
}

func TestFilterFor_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { DefaultKeyMap().FilterFor("NEW_FOLLOWER") })
}
