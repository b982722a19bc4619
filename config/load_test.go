package config_test

import (
	"testing"

	"go.arcalot.io/assert"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/simplegraph/config"
	"gopkg.in/yaml.v3"
)

var configLoadData = map[string]struct {
	input              string
	error              bool
	expectedCycleCheck config.CycleCheck
	expectedLevel      log.Level
}{
	"empty": {
		input:              "",
		expectedCycleCheck: config.CycleCheckLazy,
		expectedLevel:      log.LevelInfo,
	},
	"log-level": {
		input: `
log:
  level: debug
`,
		expectedCycleCheck: config.CycleCheckLazy,
		expectedLevel:      log.LevelDebug,
	},
	"eager": {
		input: `
cycle_check: eager
`,
		expectedCycleCheck: config.CycleCheckEager,
		expectedLevel:      log.LevelInfo,
	},
	"invalid-cycle-check": {
		input: `
cycle_check: sometimes
`,
		error: true,
	},
	"invalid-log-level": {
		input: `
log:
  level: chatty
`,
		error: true,
	},
}

func TestConfigLoad(t *testing.T) {
	for name, tc := range configLoadData {
		testCase := tc
		t.Run(name, func(t *testing.T) {
			data := map[string]any{}
			if err := yaml.Unmarshal([]byte(testCase.input), &data); err != nil {
				t.Fatal(err)
			}
			c, err := config.Load(data)
			if err != nil && !testCase.error {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err == nil && testCase.error {
				t.Fatal("No error returned")
			}
			if testCase.error {
				assert.Contains(t, err.Error(), "invalid configuration")
				return
			}
			assert.Equals(t, c.CycleCheck, testCase.expectedCycleCheck)
			assert.Equals(t, c.Log.Level, testCase.expectedLevel)
			assert.Equals(t, c.Log.Destination, log.DestinationStdout)
		})
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equals(t, c.CycleCheck, config.CycleCheckLazy)
	assert.Equals(t, c.Log.Level, log.LevelInfo)
}
