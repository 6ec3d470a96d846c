package feed

import (
	"github.com/samber/lo"

	"github.com/nhle/notifications/internal/model"
)

// Filter is the type-filter state of the notifications screen: either no
// filter (the zero value) or exactly one selected NotificationType.
type Filter struct {
	selected model.NotificationType
}

// NoFilter returns the unfiltered state.
func NoFilter() Filter {
	return Filter{}
}

// FilterOf returns a state with t selected.
func FilterOf(t model.NotificationType) Filter {
	return Filter{selected: t}
}

// Selected returns the active type and true, or false when unfiltered.
func (f Filter) Selected() (model.NotificationType, bool) {
	return f.selected, f.selected != ""
}

// IsActive reports whether t is the selected type.
func (f Filter) IsActive(t model.NotificationType) bool {
	return f.selected != "" && f.selected == t
}

// Toggle returns the state after the user clicks the chip for clicked.
// Clicking the active type clears the filter; any other type replaces it.
func (f Filter) Toggle(clicked model.NotificationType) Filter {
	if f.IsActive(clicked) {
		return NoFilter()
	}
	return FilterOf(clicked)
}

// String returns the selected type name, or "ALL" when unfiltered.
func (f Filter) String() string {
	if t, ok := f.Selected(); ok {
		return string(t)
	}
	return "ALL"
}

// Apply returns the notifications visible under f. Without a filter the
// input slice itself is returned; otherwise the matching items are
// returned in their original order.
func Apply(all []model.Notification, f Filter) []model.Notification {
	selected, ok := f.Selected()
	if !ok {
		return all
	}
	return lo.Filter(all, func(n model.Notification, _ int) bool {
		return n.Type == selected
	})
}

// CountByType tallies notifications per type. Types with no
// notifications are present with a zero count.
func CountByType(all []model.Notification) map[model.NotificationType]int {
	counts := lo.CountValuesBy(all, func(n model.Notification) model.NotificationType {
		return n.Type
	})
	for _, t := range model.NotificationTypes() {
		if _, ok := counts[t]; !ok {
			counts[t] = 0
		}
	}
	return counts
}
