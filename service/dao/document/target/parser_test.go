package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expect      *Target
		expectedErr bool
	}{
		{
			name:  "plain variable target",
			input: "/cellml:model/cellml:component[@name='heart']/cellml:variable[@name='P_lv']",
			expect: &Target{
				Raw:       "/cellml:model/cellml:component[@name='heart']/cellml:variable[@name='P_lv']",
				Component: "heart",
				Variable:  "P_lv",
			},
		},
		{
			name:  "time variable",
			input: "/cellml:model/cellml:component[@name='environment']/cellml:variable[@name='time']",
			expect: &Target{
				Raw:       "/cellml:model/cellml:component[@name='environment']/cellml:variable[@name='time']",
				Component: "environment",
				Variable:  "time",
			},
		},
		{
			name:  "unprefixed names",
			input: "/model/component[@name='systemic']/variable[@name='V_aa']",
			expect: &Target{
				Raw:       "/model/component[@name='systemic']/variable[@name='V_aa']",
				Component: "systemic",
				Variable:  "V_aa",
			},
		},
		{name: "empty", input: "", expectedErr: true},
		{name: "missing leading slash", input: "cellml:model/cellml:component[@name='x']/cellml:variable[@name='y']", expectedErr: true},
		{name: "missing variable selector", input: "/cellml:model/cellml:component[@name='heart']/cellml:variable", expectedErr: true},
		{name: "missing component selector", input: "/cellml:model/cellml:component/cellml:variable[@name='y']", expectedErr: true},
		{name: "too shallow", input: "/cellml:model", expectedErr: true},
		{name: "too deep", input: "/a/b[@name='x']/c[@name='y']/d[@name='z']", expectedErr: true},
		{name: "wrong root", input: "/sbml:sbml/cellml:component[@name='x']/cellml:variable[@name='y']", expectedErr: true},
		{name: "unterminated selector", input: "/cellml:model/cellml:component[@name='x/cellml:variable[@name='y']", expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Parse([]byte(tc.input))
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestTarget_String(t *testing.T) {
	target := &Target{Component: "heart", Variable: "V_lv"}
	assert.EqualValues(t, "/cellml:model/cellml:component[@name='heart']/cellml:variable[@name='V_lv']", target.String())
}
