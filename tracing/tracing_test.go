package tracing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

func TestStartSpan(t *testing.T) {
	var buf bytes.Buffer
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(&buf))
	assert.NoError(t, err)
	assert.NoError(t, InitWithExporter("bgtool-test", "0.0.0", exporter))

	ctx, span := StartSpan(context.Background(), "validator.Validate", "INTERNAL")
	assert.NotNil(t, ctx)
	span.WithAttributes(map[string]string{"document": "cvs-model.sedml"})
	EndSpan(span, nil)

	_, failed := StartSpan(ctx, "runner.Execute", "CLIENT")
	EndSpan(failed, errors.New("executor not found"))

	// nil spans must be tolerated
	EndSpan(nil, nil)
	assert.Contains(t, buf.String(), "validator.Validate")
}
