package helper

import (
	"testing"

	"beauteefool/config"

	"github.com/stretchr/testify/assert"
)

func TestRunner_UnknownAction(t *testing.T) {
	err := Runner(&config.Config{}, "sideways")

	assert.EqualError(t, err, `unknown migration action "sideways"`)
}

func TestSteps_Registered(t *testing.T) {
	for _, action := range []string{"up", "step-up", "down", "drop"} {
		step, ok := steps[action]
		assert.True(t, ok, action)
		assert.NotNil(t, step.run, action)
		assert.NotEmpty(t, step.done, action)
	}
}
