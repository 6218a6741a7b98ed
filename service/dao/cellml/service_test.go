package cellml

import (
	"context"
	"embed"
	"errors"
	"testing"

	model "github.com/AnatomicMaps/BG-models/model/cellml"
	"github.com/AnatomicMaps/BG-models/service/dao"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var testFS embed.FS

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	service := New(WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)))

	actual, err := service.Load(ctx, "cvs-model.cellml")
	if !assert.NoError(t, err) {
		return
	}

	assert.EqualValues(t, "cvs_model", actual.Name)
	assert.Len(t, actual.Components, 4)

	variable, err := actual.Resolve("heart", "P_lv")
	assert.NoError(t, err)
	if assert.NotNil(t, variable) {
		assert.EqualValues(t, "kPa", variable.Units)
		assert.EqualValues(t, "lv.blood.pressure", variable.MetaID)
	}

	_, err = actual.Resolve("heart", "no_such_variable")
	assert.Error(t, err)
	_, err = actual.Resolve("no_such_component", "time")
	assert.Error(t, err)

	set := model.ClassifyMetadataIDs(actual.MetadataIDs)
	assert.EqualValues(t, []string{
		"lv.blood.volume", "rv.blood.volume", "la.blood.volume", "ra.blood.volume",
		"aa.blood.volume", "brain.blood.volume", "liver.blood.volume",
		"pa.blood.volume", "pulm-vein.blood.volume",
	}, set.Volumes)
	assert.EqualValues(t, []string{
		"lv.blood.pressure", "rv.blood.pressure", "la.blood.pressure", "ra.blood.pressure",
		"aa.blood.pressure", "brain.blood.pressure", "liver.blood.pressure",
		"pa.blood.pressure", "pulm-vein.blood.pressure",
	}, set.Pressures)
	assert.EqualValues(t, []string{"aa.blood.flow", "pa.blood.flow"}, set.Flows)
	// the model-level cmeta:id carries no quantity suffix
	assert.EqualValues(t, []string{"cvs_model"}, set.Unknown)
}

func TestService_Load_notFound(t *testing.T) {
	service := New(WithMetaService(meta.New(afs.New(), "embed:///testdata", &testFS)))
	_, err := service.Load(context.Background(), "no-such.cellml")
	assert.True(t, errors.Is(err, dao.ErrNotFound), "%v", err)
}

func TestService_DecodeXML_rejectsForeignNamespace(t *testing.T) {
	service := New()
	_, err := service.DecodeXML([]byte(`<model xmlns="http://www.cellml.org/cellml/2.0#" name="x"/>`))
	assert.Error(t, err)
}
