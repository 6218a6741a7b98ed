package report

import (
	"context"
	"embed"
	"strings"
	"testing"

	"github.com/AnatomicMaps/BG-models/model/sedml"
	"github.com/AnatomicMaps/BG-models/service/dao/document"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var testFS embed.FS

func loadDocument(t *testing.T) *sedml.Document {
	t.Helper()
	service := document.New(document.WithMetaService(
		meta.New(afs.New(), "embed:///testdata", &testFS)))
	doc, err := service.Load(context.Background(), "cvs-model.sedml")
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestSummarize(t *testing.T) {
	doc := loadDocument(t)
	summary := Summarize(doc)

	assert.EqualValues(t, "cvs-model", summary.Document)
	assert.EqualValues(t, 1, summary.Level)
	assert.EqualValues(t, 3, summary.Version)
	assert.EqualValues(t, 24, summary.Generators)

	if assert.Len(t, summary.Simulations, 1) {
		simulation := summary.Simulations[0]
		assert.EqualValues(t, "CVODE (KISAO:0000019)", simulation.Algorithm)
		assert.Len(t, simulation.Parameters, 11)
	}
	if assert.Len(t, summary.Tasks, 2) {
		assert.EqualValues(t, 1, summary.Tasks[1].Repeats)
		assert.EqualValues(t, "model", summary.Tasks[1].Model)
	}
	assert.Len(t, summary.Outputs, 3)
	for _, output := range summary.Outputs {
		assert.Len(t, output.Curves, 4)
	}

	text := summary.Text()
	assert.Contains(t, text, "CVODE (KISAO:0000019)")
	assert.Contains(t, text, "3000 points")
}

func TestDiff(t *testing.T) {
	doc := loadDocument(t)
	original, err := doc.Encode()
	if !assert.Nil(t, err) {
		return
	}

	patch, stats, err := Diff("a.sedml", "b.sedml", original, original, 3)
	assert.Nil(t, err)
	assert.Empty(t, patch)
	assert.EqualValues(t, DiffStats{}, stats)

	modified := strings.Replace(string(original), `numberOfPoints="3000"`, `numberOfPoints="6000"`, 1)
	patch, stats, err = Diff("a.sedml", "b.sedml", original, []byte(modified), 3)
	assert.Nil(t, err)
	assert.Contains(t, patch, `numberOfPoints="6000"`)
	assert.EqualValues(t, 1, stats.Additions)
	assert.EqualValues(t, 1, stats.Deletions)
}
