package station

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetStations_Lines(t *testing.T) {
	path := writeFile(t, "stations.txt", "\"2200001\"\n  2204001 \n\nLviv\n")

	stations, err := GetStations(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"2200001", "2204001", "2218000"}, stations)
}

func TestGetStations_YAML(t *testing.T) {
	path := writeFile(t, "stations.yml", `
stations:
  - name: Kyiv
  - name: Odesa
    id: "2208001"
  - id: 2204001
`)

	stations, err := GetStations(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"2200001", "2208001", "2204001"}, stations)
}

func TestGetStations_Errors(t *testing.T) {
	_, err := GetStations(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = GetStations(writeFile(t, "bad.yaml", "stations: [[["))
	assert.Error(t, err)

	_, err = GetStations(writeFile(t, "empty.yaml", "stations:\n  - name: \"\"\n"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "2200001", Resolve("Kyiv"))
	assert.Equal(t, "2218000", Resolve("Lviv"))
	assert.Equal(t, "2208001", Resolve("2208001"))
	assert.Equal(t, []string{"2200001", "9"}, ResolveAll([]string{"Kyiv", "9"}))
}
