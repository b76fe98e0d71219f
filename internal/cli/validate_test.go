package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	a := writeFile(t, "a.yaml", diodeYAML)
	b := writeFile(t, "b.yaml", mixedYAML)

	out, err := execute(t, "validate", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "3 component(s) valid in 2 file(s)")
}

func TestValidate_JSON(t *testing.T) {
	a := writeFile(t, "a.json", `{"components": [{"category_id": 3, "subcategory_id": 1, "environment_active_id": 1, "quality_id": 1}]}`)

	out, err := execute(t, "validate", a, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 1, resp.Data.Components)
	assert.Equal(t, 1, resp.Data.Files[a])
}

func TestValidate_SchemaErrors(t *testing.T) {
	bad := writeFile(t, "bad.cue", `components: [{
	category_id:           2
	subcategory_id:        1
	environment_active_id: 15
	quality_id:            1
}]
`)

	out, err := execute(t, "validate", bad, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeSchema, resp.Error.Code)

	out, err = execute(t, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, bad)
	assert.Contains(t, out, "[E010]")
}

func TestValidate_Unsupported(t *testing.T) {
	path := writeFile(t, "board.toml", "x = 1\n")

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E011]")
}
