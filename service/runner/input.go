package runner

import (
	"fmt"
	"time"
)

// DefaultExecutor is the command line SED-ML executor invoked when the input
// does not name one.  OpenCOR ships a `-c SimulationSupport::simulate` mode
// that runs a SED-ML file headlessly.
const DefaultExecutor = "OpenCOR"

var defaultExecutorArgs = []string{"-c", "SimulationSupport::simulate"}

// Host identifies where the executor runs.  A nil host or a localhost URL
// runs locally; anything else is reached over SSH.
type Host struct {
	URL  string `json:"url" yaml:"url"`
	User string `json:"user,omitempty" yaml:"user,omitempty"`
}

// Input describes one external simulation run.
type Input struct {
	// DocumentURL locates the SED-ML document to execute.
	DocumentURL string `json:"documentURL" yaml:"documentURL"`

	// Executor is the simulation engine binary; Args are inserted between
	// the executor and the document path.
	Executor string   `json:"executor,omitempty" yaml:"executor,omitempty"`
	Args     []string `json:"args,omitempty" yaml:"args,omitempty"`

	Host      *Host             `json:"host,omitempty" yaml:"host,omitempty"`
	Directory string            `json:"directory,omitempty" yaml:"directory,omitempty"`
	Env       map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	TimeoutMs int               `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty"`
}

// Init applies defaults.
func (i *Input) Init() {
	if i.Executor == "" {
		i.Executor = DefaultExecutor
		if len(i.Args) == 0 {
			i.Args = defaultExecutorArgs
		}
	}
	if i.TimeoutMs == 0 {
		i.TimeoutMs = int(time.Minute / time.Millisecond)
	}
}

// Validate checks the input.
func (i *Input) Validate() error {
	if i.DocumentURL == "" {
		return fmt.Errorf("documentURL is required")
	}
	return nil
}

// Output captures the executor invocation result.
type Output struct {
	JobID   string        `json:"jobID"`
	Command string        `json:"command"`
	Stdout  string        `json:"stdout,omitempty"`
	Stderr  string        `json:"stderr,omitempty"`
	Status  int           `json:"status"`
	Elapsed time.Duration `json:"elapsed"`
}
