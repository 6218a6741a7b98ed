package document

import (
	"context"
	"embed"
	"errors"
	"testing"

	"github.com/AnatomicMaps/BG-models/model/sedml"
	"github.com/AnatomicMaps/BG-models/service/dao"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

// testFS holds our test SED-ML files
//
//go:embed testdata/*
var testFS embed.FS

// TestService_Load tests the document loading functionality
func TestService_Load(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		url         string
		expectedErr bool
		verify      func(t *testing.T, doc *sedml.Document)
	}{
		{
			name: "cardiovascular experiment",
			url:  "cvs-model.sedml",
			verify: func(t *testing.T, doc *sedml.Document) {
				assert.EqualValues(t, "cvs-model", doc.Name)
				assert.EqualValues(t, 1, doc.Level)
				assert.EqualValues(t, 3, doc.Version)

				if assert.Len(t, doc.Models, 1) {
					assert.EqualValues(t, sedml.LanguageCellML11, doc.Models[0].Language)
					assert.EqualValues(t, "cvs-model.cellml", doc.Models[0].Source)
				}

				if assert.Len(t, doc.Simulations, 1) {
					simulation := doc.Simulations[0]
					assert.EqualValues(t, 0.0, simulation.InitialTime)
					assert.EqualValues(t, 30.0, simulation.OutputEndTime)
					assert.EqualValues(t, 3000, simulation.NumberOfPoints)
					assert.EqualValues(t, "KISAO:0000019", simulation.Algorithm.KisaoID)
					assert.Len(t, simulation.Algorithm.Parameters, 11)
					assert.EqualValues(t, "1e-07", simulation.Algorithm.Parameter("KISAO:0000211").Value)
					assert.EqualValues(t, "BDF", simulation.Algorithm.Parameter("KISAO:0000475").Value)
				}

				if assert.Len(t, doc.RepeatedTasks, 1) {
					repeated := doc.RepeatedTasks[0]
					assert.True(t, repeated.ResetModel)
					assert.EqualValues(t, 1, repeated.Iterations())
				}

				assert.Len(t, doc.DataGenerators, 24)
				for _, g := range doc.DataGenerators {
					assert.True(t, g.IsIdentity(), g.ID)
				}

				if assert.Len(t, doc.Plots, 3) {
					plot := doc.Plots[0]
					properties, err := plot.Annotation.Properties()
					assert.NoError(t, err)
					if assert.NotNil(t, properties) {
						assert.EqualValues(t, "Chamber pressures", properties.Title)
						assert.True(t, properties.Legend)
						assert.EqualValues(t, "dot", properties.GridLines.Style)
					}
					assert.Len(t, plot.Curves, 4)
					curveProperties, err := plot.Curves[0].Annotation.Properties()
					assert.NoError(t, err)
					if assert.NotNil(t, curveProperties) {
						assert.EqualValues(t, "#0072c3", curveProperties.Line.Color)
						assert.EqualValues(t, 2.0, curveProperties.Line.Width)
					}
				}
			},
		},
		{
			name:        "dangling curve reference",
			url:         "dangling-curve.sedml",
			expectedErr: true,
		},
		{
			name:        "inverted time course",
			url:         "bad-timecourse.sedml",
			expectedErr: true,
		},
		{
			name:        "missing document",
			url:         "no-such.sedml",
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		service := New(WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)))

		t.Run(tc.name, func(t *testing.T) {
			actual, err := service.Load(ctx, tc.url)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			if assert.NotNil(t, actual) && tc.verify != nil {
				tc.verify(t, actual)
			}
		})
	}
}

func TestService_Load_notFound(t *testing.T) {
	service := New(WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)))
	_, err := service.Load(context.Background(), "no-such.sedml")
	assert.True(t, errors.Is(err, dao.ErrNotFound), "%v", err)
}

func TestService_Load_defaultExtension(t *testing.T) {
	service := New(WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)))
	doc, err := service.Load(context.Background(), "cvs-model")
	assert.NoError(t, err)
	if assert.NotNil(t, doc) {
		assert.EqualValues(t, "cvs-model", doc.Name)
	}
}

func TestService_DecodeXML_rejectsForeignNamespace(t *testing.T) {
	service := New()
	_, err := service.DecodeXML([]byte(`<sedML xmlns="http://sed-ml.org/sed-ml/level1/version2" level="1" version="2"/>`))
	assert.Error(t, err)
}
