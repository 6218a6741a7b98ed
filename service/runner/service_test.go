package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_ExecuteAndClose(t *testing.T) {
	ctx := context.Background()
	service := New()

	input := &Input{
		DocumentURL: "simulation/cvs-model.sedml",
		Executor:    "echo",
		TimeoutMs:   30000,
	}
	output := &Output{}
	if !assert.Nil(t, service.Execute(ctx, input, output)) {
		return
	}
	assert.NotEmpty(t, output.JobID)
	assert.EqualValues(t, 0, output.Status)
	assert.Contains(t, output.Stdout, "simulation/cvs-model.sedml")
	assert.Len(t, service.sessions, 1)

	// the local session is reused across runs
	if assert.Nil(t, service.Execute(ctx, input, &Output{})) {
		assert.Len(t, service.sessions, 1)
	}

	assert.Nil(t, service.Close(ctx))
	assert.Empty(t, service.sessions)
}

func TestService_Close_noSessions(t *testing.T) {
	service := New()
	assert.Nil(t, service.Close(context.Background()))
}

func TestService_Execute_missingSSHConfig(t *testing.T) {
	service := New()
	input := &Input{
		DocumentURL: "simulation/cvs-model.sedml",
		Host:        &Host{URL: "ssh://simhost:22"},
	}
	err := service.Execute(context.Background(), input, &Output{})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "no SSH configuration")
}
