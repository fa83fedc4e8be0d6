package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdgonzal/myveevee/internal/sim"
)

func TestLoad_FullScenario(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "fatigue-coverage-gap.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "fatigue-coverage-gap", sc.Name)
	assert.Equal(t, sim.DefaultSimulatorInput(), sc.Input, "yaml fixture mirrors the default snapshot")

	require.NotNil(t, sc.Expect)
	require.NotNil(t, sc.Expect.RiskScore)
	assert.Equal(t, 87, *sc.Expect.RiskScore)
	assert.Equal(t, sim.RiskUrgent, sc.Expect.RiskLevel)
	assert.Equal(t, []string{"care-next-step", "pcp-navigation", "adherence-plan", "sleep-intervention"}, sc.Expect.RecommendationIDs)
	assert.Equal(t, []string{"No assigned PCP on file"}, sc.Expect.Signals)
}

func TestLoad_EmptyLabsMeansUnknown(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "quiet-baseline.yaml"))
	require.NoError(t, err)

	assert.Nil(t, sc.Input.Labs.A1C)
	assert.Nil(t, sc.Input.Labs.SystolicBP)
	assert.Nil(t, sc.Input.Labs.LDL)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad-adherence.yaml"))
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoad_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("description: nameless\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field: name")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromStarter(t *testing.T) {
	for _, st := range sim.StarterScenarios() {
		sc, err := FromStarter(st.ID)
		require.NoError(t, err)
		assert.Equal(t, st.ID, sc.Name)
		assert.Equal(t, st.Input, sc.Input)
		assert.Nil(t, sc.Expect)
	}
}

func TestFromStarter_Unknown(t *testing.T) {
	_, err := FromStarter("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown starter scenario")
}
