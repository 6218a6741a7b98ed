package validator

import (
	"context"
	"embed"
	"testing"

	cellmldao "github.com/AnatomicMaps/BG-models/service/dao/cellml"
	"github.com/AnatomicMaps/BG-models/service/dao/document"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var testFS embed.FS

func metaService() *meta.Service {
	return meta.New(afs.New(), "embed:///testdata", &testFS)
}

func TestService_Validate(t *testing.T) {
	ctx := context.Background()
	documents := document.New(document.WithMetaService(metaService()))
	models := cellmldao.New(cellmldao.WithMetaService(metaService()))

	doc, err := documents.Load(ctx, "cvs-model.sedml")
	if !assert.NoError(t, err) {
		return
	}
	model, err := models.Load(ctx, "cvs-model.cellml")
	if !assert.NoError(t, err) {
		return
	}

	report := New().Validate(ctx, doc, model)
	assert.True(t, report.OK(), "unexpected issues: %v", report.Issues)
	assert.Empty(t, report.Errors())
	assert.EqualValues(t, "cvs-model.sedml", report.DocumentURL)
}

func TestService_Validate_unresolvedTarget(t *testing.T) {
	ctx := context.Background()
	documents := document.New(document.WithMetaService(metaService()))
	models := cellmldao.New(cellmldao.WithMetaService(metaService()))

	doc, err := documents.Load(ctx, "cvs-model.sedml")
	if !assert.NoError(t, err) {
		return
	}
	model, err := models.Load(ctx, "cvs-model.cellml")
	if !assert.NoError(t, err) {
		return
	}

	// point one variable at a component the model does not declare
	doc.DataGenerators[1].Variables[0].Target = "/cellml:model/cellml:component[@name='kidney']/cellml:variable[@name='P_k']"

	report := New().Validate(ctx, doc, model)
	assert.False(t, report.OK())
	if assert.Len(t, report.Errors(), 1) {
		assert.EqualValues(t, CodeUnresolvedTarget, report.Errors()[0].Code)
	}
}

func TestService_Validate_algorithms(t *testing.T) {
	ctx := context.Background()
	documents := document.New(document.WithMetaService(metaService()))

	doc, err := documents.Load(ctx, "cvs-model.sedml")
	if !assert.NoError(t, err) {
		return
	}

	service := New()

	// unknown algorithm must fail the document
	doc.Simulations[0].Algorithm.KisaoID = "KISAO:0000999"
	report := service.Validate(ctx, doc, nil)
	assert.False(t, report.OK())
	if assert.Len(t, report.Errors(), 1) {
		assert.EqualValues(t, CodeUnknownAlgorithm, report.Errors()[0].Code)
	}

	// malformed id is reported as such
	doc.Simulations[0].Algorithm.KisaoID = "CVODE"
	report = service.Validate(ctx, doc, nil)
	if assert.Len(t, report.Errors(), 1) {
		assert.EqualValues(t, CodeBadKisaoID, report.Errors()[0].Code)
	}
	doc.Simulations[0].Algorithm.KisaoID = "KISAO:0000019"

	// non-positive tolerances are rejected
	doc.Simulations[0].Algorithm.Parameter("KISAO:0000211").Value = "-1"
	report = service.Validate(ctx, doc, nil)
	if assert.Len(t, report.Errors(), 1) {
		assert.EqualValues(t, CodeBadParameterValue, report.Errors()[0].Code)
	}
	doc.Simulations[0].Algorithm.Parameter("KISAO:0000211").Value = "1e-07"

	// vendor parameters downgrade to warnings
	doc.Simulations[0].Algorithm.Parameters[0].KisaoID = "KISAO:0009999"
	report = service.Validate(ctx, doc, nil)
	assert.True(t, report.OK())
	assert.Len(t, report.Warnings(), 1)
}
