package bgmodels

import (
	"bytes"
	"context"
	"embed"
	"testing"

	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed simulation models
var assetFS embed.FS

func newTestService(t *testing.T, options ...Option) *Service {
	t.Helper()
	options = append([]Option{
		WithMetaService(meta.New(afs.New(), "embed:///", &assetFS)),
	}, options...)
	srv, err := New(context.Background(), options...)
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func TestService_Validate(t *testing.T) {
	srv := newTestService(t)
	report, err := srv.Validate(context.Background(), "simulation/cvs-model.sedml")
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, report.OK(), "%v", report.Issues)
	assert.Empty(t, report.Warnings())
}

func TestService_LoadExperimentModel(t *testing.T) {
	srv := newTestService(t)
	ctx := context.Background()

	doc, err := srv.LoadExperiment(ctx, "simulation/cvs-model.sedml")
	if !assert.Nil(t, err) {
		return
	}
	model, err := srv.LoadExperimentModel(ctx, doc)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "cvs_model", model.Name)
	assert.Len(t, model.Components, 4)
	assert.NotEmpty(t, model.MetadataIDs)
}

func TestService_Annotate(t *testing.T) {
	srv := newTestService(t)
	result, err := srv.Annotate(context.Background(), "models/cvs-model.cellml")
	if !assert.Nil(t, err) {
		return
	}
	assert.NotEmpty(t, result.Triples)
	assert.Empty(t, result.UnknownCavities)

	var buf bytes.Buffer
	if assert.Nil(t, result.WriteTurtle(&buf)) {
		assert.Contains(t, buf.String(), "OPB_00509")
	}
}

func TestService_AnnotateWithProfile(t *testing.T) {
	srv := newTestService(t, WithConfig(&Config{
		Annotator: AnnotatorConfig{AnnotateFlows: true},
	}))
	result, err := srv.Annotate(context.Background(), "models/cvs-model.cellml")
	if !assert.Nil(t, err) {
		return
	}
	// model-level cvs_model id stays unclassified; all flow ids are annotated
	assert.EqualValues(t, []string{"cvs_model"}, result.Skipped)
}
