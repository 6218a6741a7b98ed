package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_Init(t *testing.T) {
	testCases := []struct {
		description string
		input       Input
		expect      Input
	}{
		{
			description: "defaults applied",
			input:       Input{DocumentURL: "simulation/cvs-model.sedml"},
			expect: Input{
				DocumentURL: "simulation/cvs-model.sedml",
				Executor:    "OpenCOR",
				Args:        []string{"-c", "SimulationSupport::simulate"},
				TimeoutMs:   60000,
			},
		},
		{
			description: "custom executor keeps its args",
			input: Input{
				DocumentURL: "simulation/cvs-model.sedml",
				Executor:    "opencor-cli",
				TimeoutMs:   500,
			},
			expect: Input{
				DocumentURL: "simulation/cvs-model.sedml",
				Executor:    "opencor-cli",
				TimeoutMs:   500,
			},
		},
	}

	for _, testCase := range testCases {
		actual := testCase.input
		actual.Init()
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestInput_Validate(t *testing.T) {
	input := &Input{}
	input.Init()
	assert.NotNil(t, input.Validate())
	input.DocumentURL = "simulation/cvs-model.sedml"
	assert.Nil(t, input.Validate())
}

func TestBuildCommand(t *testing.T) {
	input := &Input{DocumentURL: "simulation/cvs-model.sedml"}
	input.Init()
	assert.Equal(t, `OpenCOR -c SimulationSupport::simulate "simulation/cvs-model.sedml"`, buildCommand(input))
}
