package bgmodels

import (
	"github.com/AnatomicMaps/BG-models/service/annotator"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/AnatomicMaps/BG-models/service/runner"
	"github.com/AnatomicMaps/BG-models/tracing"
	"github.com/viant/afs/storage"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the service façade.
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithMetaService sets the meta service
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the meta base URL
func WithMetaBaseURL(url string) Option {
	return func(s *Service) {
		s.metaBaseURL = url
	}
}

// WithMetaFsOptions with meta file system options
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithAnnotatorOptions appends options passed to the annotation generator,
// applied after any configured profile so they take precedence.
func WithAnnotatorOptions(options ...annotator.Option) Option {
	return func(s *Service) {
		s.annotatorOptions = append(s.annotatorOptions, options...)
	}
}

// WithRunnerOptions appends options passed to the simulation runner
// (e.g. SSH configurations for remote hosts).
func WithRunnerOptions(options ...runner.Option) Option {
	return func(s *Service) {
		s.runnerOptions = append(s.runnerOptions, options...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times – the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter, for example OTLP, Jaeger or
// Zipkin. The function is safe to call multiple times – the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
