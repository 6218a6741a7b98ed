// Package runner executes simulation experiments through an external
// SED-ML-capable engine such as OpenCOR.  This repository never integrates
// the model numerically itself; it only hands the document to a configured
// executor, locally or over SSH, and captures the outcome.
package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AnatomicMaps/BG-models/internal/idgen"
	"github.com/AnatomicMaps/BG-models/tracing"
	"github.com/viant/afs/url"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	rssh "github.com/viant/gosh/runner/ssh"
	"golang.org/x/crypto/ssh"
)

// Service runs external simulation engines, reusing one shell session per
// host.
type Service struct {
	sessions   map[string]*sessionInfo
	sshConfigs map[string]*ssh.ClientConfig
	mux        sync.Mutex
}

type sessionInfo struct {
	service *gosh.Service
}

type Option func(*Service)

// WithSSHConfig registers the SSH client configuration for a remote host
// URL.  Hosts without a configuration can only be reached locally.
func WithSSHConfig(hostURL string, config *ssh.ClientConfig) Option {
	return func(s *Service) {
		s.sshConfigs[hostURL] = config
	}
}

// New creates a runner service.
func New(opts ...Option) *Service {
	ret := &Service{
		sessions:   make(map[string]*sessionInfo),
		sshConfigs: make(map[string]*ssh.ClientConfig),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Execute runs the executor for the supplied input.
func (s *Service) Execute(ctx context.Context, input *Input, output *Output) error {
	input.Init()
	if err := input.Validate(); err != nil {
		return err
	}
	output.JobID = idgen.New()

	ctx, span := tracing.StartSpan(ctx, "runner.Execute", "CLIENT")
	err := s.execute(ctx, input, output)
	tracing.EndSpan(span.WithAttributes(map[string]string{
		"document": input.DocumentURL,
		"executor": input.Executor,
		"job":      output.JobID,
	}), err)
	return err
}

func (s *Service) execute(ctx context.Context, input *Input, output *Output) error {
	session, err := s.getSession(ctx, input.Host, input.Env)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if input.Directory != "" {
		if _, _, err := session.service.Run(ctx, fmt.Sprintf("cd %s", input.Directory)); err != nil {
			return fmt.Errorf("failed to change directory: %w", err)
		}
	}

	command := buildCommand(input)
	output.Command = command

	timeout := time.Duration(input.TimeoutMs) * time.Millisecond
	started := time.Now()
	stdout, status, err := session.service.Run(ctx, command, runner.WithTimeout(input.TimeoutMs))
	output.Elapsed = time.Since(started)
	if output.Elapsed > timeout && err == nil {
		err = fmt.Errorf("simulation %v timed out after %s", input.DocumentURL, output.Elapsed)
	}

	output.Status = status
	if status == 0 {
		output.Stdout = strings.TrimSpace(stdout)
		return err
	}
	if stdout == "" && err != nil {
		stdout = err.Error()
	}
	output.Stderr = strings.TrimSpace(stdout)
	if err == nil {
		err = fmt.Errorf("executor exited with status %d", status)
	}
	return err
}

func buildCommand(input *Input) string {
	parts := append([]string{input.Executor}, input.Args...)
	parts = append(parts, fmt.Sprintf("%q", input.DocumentURL))
	return strings.Join(parts, " ")
}

// getSession retrieves an existing session or creates a new one
func (s *Service) getSession(ctx context.Context, host *Host, env map[string]string) (*sessionInfo, error) {
	sessionID := "localhost"
	if host != nil {
		sessionID = host.URL
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		return session, nil
	}

	envOptions := []runner.Option{}
	if len(env) > 0 {
		envOptions = append(envOptions, runner.WithEnvironment(env))
	}

	var service *gosh.Service
	var err error
	if host == nil || url.Host(host.URL) == "localhost" {
		service, err = gosh.New(ctx, local.New(envOptions...))
	} else {
		config, ok := s.sshConfigs[host.URL]
		if !ok {
			return nil, fmt.Errorf("no SSH configuration registered for host %s", host.URL)
		}
		sshHost := url.Host(host.URL)
		if !strings.Contains(sshHost, ":") {
			sshHost += ":22"
		}
		service, err = gosh.New(ctx, rssh.New(sshHost, config, envOptions...))
	}
	if err != nil {
		return nil, err
	}

	session := &sessionInfo{service: service}
	s.sessions[sessionID] = session
	return session, nil
}

// Close shuts down every cached session.
func (s *Service) Close(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	var errs []string
	for id, session := range s.sessions {
		if err := session.service.Close(); err != nil {
			errs = append(errs, fmt.Sprintf("failed to close session %s: %v", id, err))
		}
	}
	s.sessions = make(map[string]*sessionInfo)
	if len(errs) > 0 {
		return fmt.Errorf("errors closing sessions: %s", strings.Join(errs, "; "))
	}
	return nil
}
