package station

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

// overrides maps display names to UZ station ids, so a station list can say
// "Kyiv" instead of "2200001".
var overrides = map[string]string{
	"Kyiv": "2200001",
	"Lviv": "2218000",
}

type stationFile struct {
	Stations []struct {
		Name string `yaml:"name"`
		ID   string `yaml:"id"`
	} `yaml:"stations"`
}

// GetStations reads station ids from filename. A .yml/.yaml file holds a
// `stations` list of {name, id}; anything else is one id or name per line.
func GetStations(filename string) ([]string, error) {

	data, err := os.ReadFile(filename)

	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yml", ".yaml":
		return parseYAML(data)
	}

	lines := strings.Split(string(data), "\n")

	var stations []string

	for _, line := range lines {
		code := strings.Trim(strings.TrimSpace(line), "\"")

		if code != "" {
			stations = append(stations, Resolve(code))
		}
	}

	return stations, nil
}

func parseYAML(data []byte) ([]string, error) {
	var f stationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse station file: %w", err)
	}

	var stations []string
	for i, s := range f.Stations {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			id = Resolve(strings.TrimSpace(s.Name))
		}
		if id == "" {
			return nil, fmt.Errorf("station %d has neither id nor name", i)
		}
		stations = append(stations, id)
	}

	return stations, nil
}

// Resolve returns the UZ id for a known station name and the token unchanged otherwise.
func Resolve(token string) string {
	if id, ok := overrides[token]; ok {
		return id
	}
	return token
}

// ResolveAll resolves every token in tokens.
func ResolveAll(tokens []string) []string {
	ids := make([]string, 0, len(tokens))
	for _, t := range tokens {
		ids = append(ids, Resolve(t))
	}
	return ids
}
