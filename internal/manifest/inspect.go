package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Summary is a structured view of an installer manifest, used for reporting only
type Summary struct {
	PackageIdentifier string      `yaml:"PackageIdentifier"`
	PackageVersion    string      `yaml:"PackageVersion"`
	ManifestType      string      `yaml:"ManifestType"`
	ManifestVersion   string      `yaml:"ManifestVersion"`
	MinimumOSVersion  string      `yaml:"MinimumOSVersion,omitempty"`
	Platform          []string    `yaml:"Platform,omitempty"`
	Commands          []string    `yaml:"Commands,omitempty"`
	Installers        []Installer `yaml:"Installers"`
}

// Installer is one entry of the Installers list
type Installer struct {
	Architecture  string `yaml:"Architecture"`
	InstallerType string `yaml:"InstallerType,omitempty"`
	InstallerURL  string `yaml:"InstallerUrl"`
}

// Inspect decodes manifest content into a Summary
func Inspect(data []byte) (*Summary, error) {
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &s, nil
}

// InspectFile reads and decodes the manifest at path
func InspectFile(path string) (*Summary, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return m.Inspect()
}

// Inspect decodes the loaded lines into a Summary
func (m *Manifest) Inspect() (*Summary, error) {
	var data []byte
	for _, line := range m.Lines {
		data = append(data, line...)
	}
	return Inspect(data)
}
