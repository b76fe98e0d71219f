package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScenario = `
name: minimal
description: "One resistor"
components:
  - hardware_id: R1
    category_id: 3
    subcategory_id: 1
    environment_active_id: 1
    quality_id: 1
expect:
  - hardware_id: R1
    fields:
      hazard_rate_active: 1.5e-5
`

func TestParseScenario_Valid(t *testing.T) {
	s, err := ParseScenario([]byte(minimalScenario))
	require.NoError(t, err)

	assert.Equal(t, "minimal", s.Name)
	assert.Len(t, s.Components, 1)
	assert.Equal(t, 3, s.Components[0]["category_id"])
	require.Len(t, s.Expect, 1)
	assert.Equal(t, 1.5e-5, s.Expect[0].Fields["hazard_rate_active"])
	assert.Equal(t, DefaultTolerance, s.tolerance())
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: minimalScenario + "expectations: []\n",
			wantErr: "field expectations not found",
		},
		{
			name:    "missing name",
			content: "description: x\ncomponents: [{category_id: 3}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: x\ncomponents: [{category_id: 3}]\n",
			wantErr: "description is required",
		},
		{
			name:    "no components",
			content: "name: x\ndescription: y\n",
			wantErr: "components list is required",
		},
		{
			name:    "negative tolerance",
			content: "name: x\ndescription: y\ntolerance: -1\ncomponents: [{category_id: 3}]\n",
			wantErr: "tolerance must be non-negative",
		},
		{
			name:    "expect without hardware id",
			content: "name: x\ndescription: y\ncomponents: [{category_id: 3}]\nexpect: [{fields: {a: 1}}]\n",
			wantErr: "expect[0]: hardware_id is required",
		},
		{
			name:    "expect with neither",
			content: "name: x\ndescription: y\ncomponents: [{category_id: 3}]\nexpect: [{hardware_id: R1}]\n",
			wantErr: "one of fields or error is required",
		},
		{
			name:    "expect with both",
			content: "name: x\ndescription: y\ncomponents: [{category_id: 3}]\nexpect: [{hardware_id: R1, fields: {a: 1}, error: {code: PRECONDITION}}]\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "unknown error code",
			content: "name: x\ndescription: y\ncomponents: [{category_id: 3}]\nexpect: [{hardware_id: R1, error: {code: BOOM}}]\n",
			wantErr: `unknown code "BOOM"`,
		},
		{
			name:    "unknown system key",
			content: "name: x\ndescription: y\ncomponents: [{category_id: 3}]\nsystem: {mtbf: 1}\n",
			wantErr: `unknown key "mtbf"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadDir(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	assert.Equal(t, "calculation_errors", scenarios[0].Name)
}

func TestLoadDir_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"a.yaml", "b.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte(minimalScenario), 0o644))
	}
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario name "minimal" already used by a.yaml`)
}
