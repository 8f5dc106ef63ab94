package categorical

import (
	"strings"

	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// Mode selects how target columns are encoded.
type Mode string

const (
	// ModeLabel replaces a column with integer codes.
	ModeLabel Mode = "label"
	// ModeBinary replaces a column with one indicator column per category.
	ModeBinary Mode = "binary"
)

// MissingSentinel replaces missing values when missing-value handling is enabled.
const MissingSentinel = "-999999"

// SupportedModes lists the recognized modes.
func SupportedModes() []string {
	return []string{string(ModeLabel), string(ModeBinary)}
}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m == ModeLabel || m == ModeBinary
}

// ParseMode converts s to a Mode, failing with UnsupportedModeError.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return Mode(s), errors.NewUnsupportedModeError(s, SupportedModes()...)
	}
	return m, nil
}
