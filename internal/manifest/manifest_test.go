package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioInput = `ManifestType: installer
PackageVersion: 1.2.3
Installers:
- Arch: x64
`

const scenarioOutput = `ManifestType: installer
PackageVersion: 1.2.3
MinimumOSVersion: 10.0.17763.0
Platform:
  - Windows.Desktop
Commands:
  - invowk
Installers:
- Arch: x64
`

// writeManifest creates a manifest file in a temp dir and returns its path
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invowk.installer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func enhanceString(s string) string {
	return strings.Join(Enhance(SplitLines(s), DefaultFields()).Lines, "")
}

func TestEnhance_Scenario(t *testing.T) {
	assert.Equal(t, scenarioOutput, enhanceString(scenarioInput))
}

func TestEnhance_Idempotent(t *testing.T) {
	inputs := []string{
		scenarioInput,
		"ManifestType: installer\nPackageVersion: 2.0.0\nMinimumOSVersion: 10.0.19041.0\nInstallers:\n- Arch: arm64\n",
		"ManifestType: installer\nPackageVersion: 2.0.0\nCommands:\n  - other\nInstallers: []\n",
	}
	for _, in := range inputs {
		once := enhanceString(in)
		twice := Enhance(SplitLines(once), DefaultFields())
		assert.Equal(t, once, strings.Join(twice.Lines, ""))
		assert.False(t, twice.Changed(), "second pass must not insert")
	}
}

func TestEnhance_Positions(t *testing.T) {
	in := "PackageIdentifier: invowk.invowk\nPackageVersion: 1.0.0\nManifestType: installer\nReleaseDate: 2024-01-01\nInstallers:\n- Architecture: x64\nManifestVersion: 1.6.0\n"
	result := Enhance(SplitLines(in), DefaultFields())
	lines := result.Lines

	pv := indexOfPrefix(lines, PackageVersionAnchor)
	require.GreaterOrEqual(t, pv, 0)
	assert.Equal(t, "MinimumOSVersion: 10.0.17763.0\n", lines[pv+1])
	assert.Equal(t, "Platform:\n", lines[pv+2])
	assert.Equal(t, "  - Windows.Desktop\n", lines[pv+3])

	inst := indexOfPrefix(lines, InstallersAnchor)
	require.GreaterOrEqual(t, inst, 2)
	assert.Equal(t, "Commands:\n", lines[inst-2])
	assert.Equal(t, "  - invowk\n", lines[inst-1])

	assert.Equal(t, []int{pv + 1, pv + 2, pv + 3, inst - 2, inst - 1}, result.Inserted)
}

func TestEnhance_Completeness(t *testing.T) {
	out := enhanceString(scenarioInput)
	for _, key := range []string{MinimumOSVersionKey, PlatformKey, CommandsKey} {
		assert.Equal(t, 1, strings.Count(out, key), key)
	}
}

func TestEnhance_SelectiveInsertion(t *testing.T) {
	in := "ManifestType: installer\nPackageVersion: 1.2.3\nMinimumOSVersion: 10.0.22000.0\nInstallers:\n- Arch: x64\n"
	out := enhanceString(in)

	assert.Equal(t, 1, strings.Count(out, MinimumOSVersionKey))
	assert.Contains(t, out, "MinimumOSVersion: 10.0.22000.0\n")
	assert.Contains(t, out, "PackageVersion: 1.2.3\nPlatform:\n  - Windows.Desktop\nMinimumOSVersion: 10.0.22000.0\n")
	assert.Contains(t, out, "Commands:\n  - invowk\nInstallers:\n")
}

func TestEnhance_AllPresentIsNoop(t *testing.T) {
	result := Enhance(SplitLines(scenarioOutput), DefaultFields())
	assert.False(t, result.Changed())
	assert.True(t, result.Presence.Complete())
	assert.Equal(t, scenarioOutput, strings.Join(result.Lines, ""))
}

func TestEnhance_CRLF(t *testing.T) {
	in := "ManifestType: installer\r\nPackageVersion: 1.2.3\r\nInstallers:\r\n- Arch: x64\r\n"
	out := enhanceString(in)
	assert.Equal(t, strings.ReplaceAll(scenarioOutput, "\n", "\r\n"), out)
}

func TestEnhance_UnterminatedAnchor(t *testing.T) {
	in := "ManifestType: installer\nInstallers: []\nPackageVersion: 1.2.3"
	out := enhanceString(in)
	assert.Equal(t, "ManifestType: installer\nCommands:\n  - invowk\nInstallers: []\nPackageVersion: 1.2.3\nMinimumOSVersion: 10.0.17763.0\nPlatform:\n  - Windows.Desktop\n", out)
}

func TestEnhance_CustomFields(t *testing.T) {
	fields := Fields{
		MinimumOSVersion: "10.0.19041.0",
		Platform:         []string{"Windows.Desktop", "Windows.Universal"},
		Commands:         []string{"invowk", "ivk"},
	}
	out := strings.Join(Enhance(SplitLines(scenarioInput), fields).Lines, "")
	assert.Contains(t, out, "MinimumOSVersion: 10.0.19041.0\nPlatform:\n  - Windows.Desktop\n  - Windows.Universal\n")
	assert.Contains(t, out, "Commands:\n  - invowk\n  - ivk\nInstallers:\n")
}

func TestEnhance_IndentedKeysAreNotAnchors(t *testing.T) {
	in := "ManifestType: installer\n  PackageVersion: nested\nPackageVersion: 1.0.0\nInstallers:\n"
	result := Enhance(SplitLines(in), DefaultFields())
	assert.Equal(t, "  PackageVersion: nested\n", result.Lines[1])
	assert.Equal(t, "PackageVersion: 1.0.0\n", result.Lines[2])
	assert.Equal(t, "MinimumOSVersion: 10.0.17763.0\n", result.Lines[3])
}

func TestDetect(t *testing.T) {
	p := Detect(SplitLines("Platform:\n  - Windows.Desktop\nCommands:\n"))
	assert.False(t, p.MinimumOSVersion)
	assert.True(t, p.Platform)
	assert.True(t, p.Commands)
	assert.False(t, p.Complete())
	assert.Equal(t, []string{MinimumOSVersionKey}, p.Missing())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(SplitLines(scenarioOutput)))

	err := Validate(SplitLines("MinimumOSVersion: 1\nCommands:\n"))
	var anchorErr *AnchorNotFoundError
	require.ErrorAs(t, err, &anchorErr)
	assert.Equal(t, "Platform", anchorErr.Field)
	assert.ErrorIs(t, err, ErrAnchorNotFound)
	assert.Contains(t, err.Error(), "generator format may have changed")
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a\n", "b\n"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, SplitLines("a\nb"))
	assert.Empty(t, SplitLines(""))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_KeepsMode(t *testing.T) {
	path := writeManifest(t, scenarioInput)
	require.NoError(t, os.Chmod(path, 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), m.Mode)
	assert.True(t, m.IsInstaller())
	assert.Len(t, m.Lines, 4)
}

func TestSave_WriteError(t *testing.T) {
	m := &Manifest{Path: filepath.Join(t.TempDir(), "no-such-dir", "m.yaml")}
	err := m.Save([]string{"x\n"})

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, ErrWrite)
}

func indexOfPrefix(lines []string, prefix string) int {
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}
	return -1
}
