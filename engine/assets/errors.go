package assets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrParse        = errors.New("parse error")
	ErrRecursion    = errors.New("recursion error")
	ErrCycle        = errors.New("cyclic file reference")
	// ErrRefUsed is returned when Read is called on a Ref that already left the unloaded state.
	ErrRefUsed = errors.New("ref already read")
)

// FileNotFoundError reports a top-level or referenced file that cannot be opened.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("open %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("open %q: %v", e.Path, ErrFileNotFound)
}

func (e *FileNotFoundError) Is(target error) bool { return target == ErrFileNotFound }
func (e *FileNotFoundError) Unwrap() error        { return e.Err }

// ParseError is returned when a record's Fill rejects a line.
// Line is 1-based and counts skipped lines; Column is 0-based.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("read %q line %d column %d: error parsing %q", e.Path, e.Line, e.Column, e.Raw)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// RecursionError is returned when a record's Recurse fails while loading nested files.
type RecursionError struct {
	Path string
	Line int
	Err  error
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("follow-up files for %q line %d: %v", e.Path, e.Line, e.Err)
}

func (e *RecursionError) Is(target error) bool { return target == ErrRecursion }
func (e *RecursionError) Unwrap() error        { return e.Err }

// CycleError is returned when a file is referenced while it is still being resolved.
type CycleError struct {
	Path  string
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrCycle, strings.Join(e.Chain, " -> "), e.Path)
}

func (e *CycleError) Is(target error) bool { return target == ErrCycle }
