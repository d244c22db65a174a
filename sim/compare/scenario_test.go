package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultScenario(t *testing.T) {
	sc := DefaultScenario()
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, 168, sc.HorizonHours)
	assert.Equal(t, 33, sc.CapacityBeds)
	assert.Equal(t, 30.0, sc.MeanServiceHours)
	assert.Equal(t, 35, sc.WarmStartPatients)
	assert.Equal(t, []string{"FCFS", "BASELINE", "GUILLOTINE"}, sc.Policies)
}

func TestLoadScenario_PartialFileOverridesOnlyNamedFields(t *testing.T) {
	path := writeScenario(t, "seed: 7\ncapacity_beds: 10\npolicies: [FCFS]\n")

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), sc.Seed)
	assert.Equal(t, 10, sc.CapacityBeds)
	assert.Equal(t, []string{"FCFS"}, sc.Policies)

	// Untouched fields keep the defaults.
	assert.Equal(t, 168, sc.HorizonHours)
	assert.Equal(t, 30.0, sc.MeanServiceHours)
	assert.Equal(t, 0.1, sc.CongestionPenaltyHours)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "seed: [not a number\n")
	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestScenarioPolicies_UnknownNameRejected(t *testing.T) {
	sc := DefaultScenario()
	sc.Policies = []string{"FCFS", "SHORTEST_JOB_FIRST"}
	_, err := sc.policies()
	assert.Error(t, err)
}

func TestScenarioPolicies_EmptyListRejected(t *testing.T) {
	sc := DefaultScenario()
	sc.Policies = nil
	_, err := sc.policies()
	assert.Error(t, err)
}
