package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is
var (
	ErrRead           = errors.New("failed to read manifest")
	ErrWrite          = errors.New("failed to write manifest")
	ErrTypeMismatch   = errors.New("wrong manifest type")
	ErrAnchorNotFound = errors.New("injection anchor not found")
	ErrInvalidYAML    = errors.New("manifest is not valid YAML")
)

// ReadError reports a manifest that could not be opened or read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrRead, e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error { return []error{ErrRead, e.Err} }

// WriteError reports a manifest that could not be written back
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrWrite, e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }

// TypeMismatchError reports a file without the installer manifest marker
type TypeMismatchError struct {
	Path string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s does not contain %q", ErrTypeMismatch, e.Path, ManifestTypeInstaller)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// AnchorNotFoundError reports a field still missing after enhancement,
// which happens when the anchor it is inserted at is not in the file.
type AnchorNotFoundError struct {
	Field string
}

func (e *AnchorNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s is still missing after enhancement; the upstream manifest generator format may have changed", ErrAnchorNotFound, e.Field)
}

func (e *AnchorNotFoundError) Unwrap() error { return ErrAnchorNotFound }
