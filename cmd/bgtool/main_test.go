package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bgtool.yaml")
	content := `
annotator:
  annotateFlows: true
runner:
  executor: opencor-cli
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, config.Annotator.AnnotateFlows)
	assert.EqualValues(t, "opencor-cli", config.Runner.Executor)
	// unset fields keep their defaults
	assert.EqualValues(t, 60000, config.Runner.TimeoutMs)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
