/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package indent provides the indentation unit used when formatting
// embedded stylesheets, and detection of the unit a document already uses.
package indent

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUnit indicates an indentation name that is not one of the supported units.
var ErrInvalidUnit = errors.New("invalid indentation unit")

// Unit is the string repeated once per nesting level.
type Unit string

const (
	Tab        Unit = "\t"
	TwoSpaces  Unit = "  "
	FourSpaces Unit = "    "
)

// Auto is the configuration value that asks for detection.
const Auto = "auto"

// Repeat returns the unit repeated n times.
func (u Unit) Repeat(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(u), n)
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	switch u {
	case Tab, TwoSpaces, FourSpaces:
		return true
	default:
		return false
	}
}

// String returns the configuration name of the unit.
func (u Unit) String() string {
	switch u {
	case Tab:
		return "tab"
	case TwoSpaces:
		return "2"
	case FourSpaces:
		return "4"
	default:
		return fmt.Sprintf("Unit(%q)", string(u))
	}
}

// Parse converts a configuration name into a Unit.
// Accepted names: "tab", "2", "4" and "spaces" (two spaces).
func Parse(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tab", "tabs":
		return Tab, nil
	case "2", "spaces":
		return TwoSpaces, nil
	case "4":
		return FourSpaces, nil
	default:
		return "", fmt.Errorf("%w: %q (expected tab, 2 or 4)", ErrInvalidUnit, name)
	}
}

// Resolve parses name, detecting the unit from source when name is empty or "auto".
func Resolve(name, source string) (Unit, error) {
	if name == "" || strings.EqualFold(name, Auto) {
		return Detect(source), nil
	}
	return Parse(name)
}
