package schema

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed mappings.yaml
var mappingsYAML []byte

// Mappings translates Asphyxia plugin codes into Kamaitachi enumerations.
// Loaded once at startup and treated as read-only afterwards.
type Mappings struct {
	ClearLamps   map[int]string `yaml:"clear_lamps"`
	Difficulties map[int]string `yaml:"difficulties"`
}

// LoadMappings parses the embedded lookup tables.
// Returns an error if either table is missing or empty, so a bad edit to
// the data file fails at startup rather than silently dropping every row.
func LoadMappings() (*Mappings, error) {
	var m Mappings
	if err := yaml.Unmarshal(mappingsYAML, &m); err != nil {
		return nil, fmt.Errorf("parse embedded mappings: %w", err)
	}
	if len(m.ClearLamps) == 0 {
		return nil, fmt.Errorf("embedded mappings: clear_lamps table is empty")
	}
	if len(m.Difficulties) == 0 {
		return nil, fmt.Errorf("embedded mappings: difficulties table is empty")
	}
	return &m, nil
}

// Lamp returns the Kamaitachi lamp for a plugin clear code.
func (m *Mappings) Lamp(code int) (string, bool) {
	lamp, ok := m.ClearLamps[code]
	return lamp, ok
}

// Difficulty returns the Kamaitachi difficulty label for a plugin
// difficulty code.
func (m *Mappings) Difficulty(code int) (string, bool) {
	d, ok := m.Difficulties[code]
	return d, ok
}
