package model

import (
	"errors"
	"fmt"
)

// ErrFatalParse matches every ParseError via errors.Is.
var ErrFatalParse = errors.New("fatal parse error")

// ParseError reports a required directive, account reference or numeric
// field that is missing or malformed. It always aborts the conversion.
type ParseError struct {
	Directive string // SIE directive without '#', e.g. "ORGNR"
	Line      int    // 1-based source line, 0 when not tied to a line
	Reason    string
	Err       error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Directive != "" {
		msg = fmt.Sprintf("#%s: %s", e.Directive, msg)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFatalParse) hold for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrFatalParse
}
