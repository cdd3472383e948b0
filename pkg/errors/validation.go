package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Rank directions accepted by the DOT renderer.
var validRankdirs = []string{"TB", "BT", "LR", "RL"}

// moduleNameRegex matches dotted module names such as "pkg.sub._private".
var moduleNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\.[A-Za-z_0-9][A-Za-z0-9_-]*)*$`)

// ValidateModuleName checks that name is a dotted module identifier.
//
// The rules are conservative:
//   - No empty names
//   - Maximum length of 256 characters
//   - No control characters
//   - Segments separated by single dots
func ValidateModuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "module name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "module name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "module name contains invalid control characters")
		}
	}
	if !moduleNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid module name: %q", name)
	}
	return nil
}

// ValidateRankdir checks that dir is one of TB, BT, LR or RL.
func ValidateRankdir(dir string) error {
	if !slices.Contains(validRankdirs, dir) {
		return New(ErrCodeInvalidConfig, "invalid rankdir %q (want one of %s)", dir, strings.Join(validRankdirs, ", "))
	}
	return nil
}

// ValidateStartColor checks that hue is a degree on the color wheel.
func ValidateStartColor(hue int) error {
	if hue < 0 || hue > 360 {
		return New(ErrCodeInvalidConfig, "start color must be between 0 and 360, got %d", hue)
	}
	return nil
}

// ValidateClusterPolicy rejects enabling both target-cluster policies.
func ValidateClusterPolicy(keep, collapse bool) error {
	if keep && collapse {
		return New(ErrCodeInvalidConfig, "keep-target-cluster and collapse-target-cluster are mutually exclusive")
	}
	return nil
}

// ValidateFormat checks format against the supported output formats.
func ValidateFormat(format string, valid []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !slices.Contains(valid, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidatePath validates an output or input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
