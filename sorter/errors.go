/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import (
	"errors"
	"fmt"
)

// Sentinel errors for rule-body parsing.
var (
	// ErrUnbalancedBlock indicates a `{` without its `}` or a stray `}`.
	ErrUnbalancedBlock = errors.New("unbalanced block")

	// ErrUnterminatedExpression indicates a `${` interpolation that never closes.
	ErrUnterminatedExpression = errors.New("unterminated expression")

	// ErrUnterminatedStatement indicates trailing text without a closing `;` in strict mode.
	ErrUnterminatedStatement = errors.New("unterminated statement")

	// ErrUnterminatedComment indicates a `/*` comment without `*/`.
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrUnterminatedString indicates a quoted string or template literal that never closes.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrMaxDepth indicates nested blocks deeper than Options.MaxDepth.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// ParseError reports where in a rule body parsing failed.
type ParseError struct {
	// Err is one of the sentinel errors above.
	Err error

	// Offset is the byte offset into the body passed to SortCSS.
	Offset int

	// Level is the nesting level of the block being tokenized.
	Level int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d (nesting level %d)", e.Err, e.Offset, e.Level)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// shift moves a nested ParseError's offset into the coordinates of the enclosing body.
func shift(err error, by int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Err: pe.Err, Offset: pe.Offset + by, Level: pe.Level}
	}
	return err
}
