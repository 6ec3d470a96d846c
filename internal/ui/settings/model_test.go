package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notifications/internal/model"
)

func TestValidateIntRange(t *testing.T) {
	v := validateIntRange("Count", 0, 10000)

	assert.NoError(t, v("0"))
	assert.NoError(t, v(" 50 "))
	assert.NoError(t, v("10000"))
	assert.EqualError(t, v("-1"), "Count must be between 0 and 10000")
	assert.EqualError(t, v("ten"), "Count must be a whole number")
}

func TestValidateInt64(t *testing.T) {
	v := validateInt64("Seed")

	assert.NoError(t, v("-9223372036854775808"))
	assert.Error(t, v("1.5"))
	assert.Error(t, v(""))
}

func TestHandleSubmit_ParsesFields(t *testing.T) {
	m := New(80, 24)
	m.Start(model.GeneratorConfig{Count: 50, MaxDaysAgo: 10})
	m.fb.count = "12"
	m.fb.seed = "-3"
	m.fb.paired = true

	msg, ok := m.handleSubmit()().(SettingsSavedMsg)
	assert.True(t, ok)
	assert.Equal(t, model.GeneratorConfig{
		Count:         12,
		Seed:          -3,
		MaxDaysAgo:    10,
		PairedContent: true,
	}, msg.Generator)
}
