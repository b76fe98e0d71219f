package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_ResistorGolden(t *testing.T) {
	out, err := execute(t, "tables", "resistor")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tables_resistor", []byte(out))
}

func TestTables_ByCategoryID(t *testing.T) {
	byName, err := execute(t, "tables", "semiconductor")
	require.NoError(t, err)
	byID, err := execute(t, "tables", "2")
	require.NoError(t, err)
	assert.Equal(t, byName, byID)
	assert.Contains(t, byName, "low-frequency diode, type 1")
}

func TestTables_JSON(t *testing.T) {
	out, err := execute(t, "tables", "resistor", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   TablesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "resistor", resp.Data.Family)
	require.Len(t, resp.Data.Environments, 14)
	assert.Equal(t, "GB", resp.Data.Environments[0])
	assert.Equal(t, "CL", resp.Data.Environments[13])
	require.Len(t, resp.Data.Rows, 19)
	assert.Equal(t, 0.0005, resp.Data.Rows[0].Rates[0])
}

func TestTables_UnknownFamily(t *testing.T) {
	out, err := execute(t, "tables", "capacitor")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E202]: unknown family \"capacitor\": must be one of semiconductor, resistor")
}
