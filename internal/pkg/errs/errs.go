package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Wrap returns nil for a nil err so it can wrap a call's result directly.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes errs.Is(err, sentinel) hold while err's own message and stack stay
// intact. A nil err yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// StackLines renders err with its recorded stack, truncated to maxLines when
// maxLines is positive.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
