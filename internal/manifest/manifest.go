package manifest

import (
	"io"
	"os"
	"strings"
)

// Load reads the manifest at path into memory
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return &Manifest{
		Path:  path,
		Lines: SplitLines(string(data)),
		Mode:  info.Mode().Perm(),
	}, nil
}

// Save overwrites the manifest file with lines, keeping its permissions
func (m *Manifest) Save(lines []string) error {
	mode := m.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := os.WriteFile(m.Path, []byte(strings.Join(lines, "")), mode); err != nil {
		return &WriteError{Path: m.Path, Err: err}
	}
	return nil
}

// IsInstaller reports whether the manifest declares the installer type
func (m *Manifest) IsInstaller() bool {
	for _, line := range m.Lines {
		if strings.HasPrefix(line, ManifestTypeInstaller) {
			return true
		}
	}
	return false
}

// Detect checks the lines for each target field by literal prefix
func Detect(lines []string) Presence {
	var p Presence
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, MinimumOSVersionKey):
			p.MinimumOSVersion = true
		case strings.HasPrefix(line, PlatformKey):
			p.Platform = true
		case strings.HasPrefix(line, CommandsKey):
			p.Commands = true
		}
	}
	return p
}

// Enhance makes one forward pass over lines and inserts the absent fields
// after the PackageVersion line and before the Installers line.
// Presence is taken from the input only, so inserted lines never trigger
// another insertion and a second pass is a no-op.
func Enhance(lines []string, fields Fields) Result {
	presence := Detect(lines)
	out := make([]string, 0, len(lines)+2+len(fields.Platform)+len(fields.Commands))
	var inserted []int

	insert := func(s string) {
		inserted = append(inserted, len(out))
		out = append(out, s)
	}
	insertList := func(key string, items []string, eol string) {
		insert(key + eol)
		for _, item := range items {
			insert("  - " + item + eol)
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, PackageVersionAnchor) && (!presence.MinimumOSVersion || !presence.Platform):
			eol := lineEnding(line)
			if eol == "" {
				// unterminated last line; inserted content must start on its own line
				eol = "\n"
				line += eol
			}
			out = append(out, line)
			if !presence.MinimumOSVersion {
				insert(MinimumOSVersionKey + " " + fields.MinimumOSVersion + eol)
			}
			if !presence.Platform {
				insertList(PlatformKey, fields.Platform, eol)
			}
		case strings.HasPrefix(line, InstallersAnchor) && !presence.Commands:
			eol := lineEnding(line)
			if eol == "" {
				eol = "\n"
			}
			insertList(CommandsKey, fields.Commands, eol)
			out = append(out, line)
		default:
			out = append(out, line)
		}
	}

	return Result{
		Lines:    out,
		Inserted: inserted,
		Presence: presence,
	}
}

// Validate checks that every target field is present in lines
func Validate(lines []string) error {
	content := strings.Join(lines, "")
	for _, key := range []string{MinimumOSVersionKey, PlatformKey, CommandsKey} {
		if !strings.Contains(content, key) {
			return &AnchorNotFoundError{Field: strings.TrimSuffix(key, ":")}
		}
	}
	return nil
}

// SplitLines splits s after each newline, keeping the terminators
func SplitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}
