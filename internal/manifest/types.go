package manifest

import "os"

// Line prefixes recognized in an installer manifest
const (
	ManifestTypeInstaller = "ManifestType: installer"
	PackageVersionAnchor  = "PackageVersion:"
	InstallersAnchor      = "Installers:"

	MinimumOSVersionKey = "MinimumOSVersion:"
	PlatformKey         = "Platform:"
	CommandsKey         = "Commands:"
)

// Default values injected when a field is absent
const (
	DefaultMinimumOSVersion = "10.0.17763.0"
	DefaultPlatform         = "Windows.Desktop"
	DefaultCommand          = "invowk"
)

// Manifest is a manifest file held as raw lines.
// Each line keeps its own terminator; the final line may have none.
type Manifest struct {
	Path  string
	Lines []string
	Mode  os.FileMode
}

// Presence records which target fields the original manifest already has
type Presence struct {
	MinimumOSVersion bool
	Platform         bool
	Commands         bool
}

// Complete reports whether no field needs inserting
func (p Presence) Complete() bool {
	return p.MinimumOSVersion && p.Platform && p.Commands
}

// Missing returns the keys of the absent fields in insertion order
func (p Presence) Missing() []string {
	var missing []string
	if !p.MinimumOSVersion {
		missing = append(missing, MinimumOSVersionKey)
	}
	if !p.Platform {
		missing = append(missing, PlatformKey)
	}
	if !p.Commands {
		missing = append(missing, CommandsKey)
	}
	return missing
}

// Fields holds the values written for absent fields
type Fields struct {
	MinimumOSVersion string
	Platform         []string
	Commands         []string
}

// DefaultFields returns the values the generator is expected to omit
func DefaultFields() Fields {
	return Fields{
		MinimumOSVersion: DefaultMinimumOSVersion,
		Platform:         []string{DefaultPlatform},
		Commands:         []string{DefaultCommand},
	}
}

// Result is the output of a single enhancement pass
type Result struct {
	Lines    []string
	Inserted []int // indexes into Lines of every inserted line
	Presence Presence
}

// Changed reports whether the pass inserted anything
func (r Result) Changed() bool {
	return len(r.Inserted) > 0
}

// IsInserted reports whether the line at index i was inserted by the pass
func (r Result) IsInserted(i int) bool {
	for _, idx := range r.Inserted {
		if idx == i {
			return true
		}
	}
	return false
}
