package manifest

import (
	"strings"

	"wingetenhance/internal/logging"
)

// Enhancer runs the read, guard, edit, validate and write steps on one file
type Enhancer struct {
	fields Fields
	logger *logging.Logger
}

// Plan is a validated enhancement that has not been written yet
type Plan struct {
	Manifest *Manifest
	Result   Result
}

// Changed reports whether writing the plan would modify the file
func (p *Plan) Changed() bool {
	return p.Result.Changed()
}

// Content returns the enhanced manifest text
func (p *Plan) Content() string {
	return strings.Join(p.Result.Lines, "")
}

// NewEnhancer creates an enhancer injecting fields. A nil logger discards output.
func NewEnhancer(fields Fields, logger *logging.Logger) *Enhancer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Enhancer{
		fields: fields,
		logger: logger,
	}
}

// Plan loads the manifest at path and computes its enhanced form.
// Nothing is written.
func (e *Enhancer) Plan(path string) (*Plan, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug().Str("path", path).Int("lines", len(m.Lines)).Msg("manifest loaded")

	if !m.IsInstaller() {
		return nil, &TypeMismatchError{Path: path}
	}

	result := Enhance(m.Lines, e.fields)
	e.logger.Debug().
		Bool("has_min_os", result.Presence.MinimumOSVersion).
		Bool("has_platform", result.Presence.Platform).
		Bool("has_commands", result.Presence.Commands).
		Int("inserted", len(result.Inserted)).
		Msg("enhancement pass complete")

	if err := Validate(result.Lines); err != nil {
		return nil, err
	}

	return &Plan{Manifest: m, Result: result}, nil
}

// Apply writes a changed plan back to its file. Unchanged plans are skipped.
func (e *Enhancer) Apply(plan *Plan) error {
	if !plan.Changed() {
		e.logger.Debug().Str("path", plan.Manifest.Path).Msg("manifest already complete, nothing to write")
		return nil
	}
	if err := plan.Manifest.Save(plan.Result.Lines); err != nil {
		return err
	}
	e.logger.Info().
		Str("path", plan.Manifest.Path).
		Strs("inserted", plan.Result.Presence.Missing()).
		Msg("manifest enhanced")
	return nil
}

// EnhanceFile plans and applies the enhancement of the manifest at path
func (e *Enhancer) EnhanceFile(path string) (*Plan, error) {
	plan, err := e.Plan(path)
	if err != nil {
		return nil, err
	}
	if err := e.Apply(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
