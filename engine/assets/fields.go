package assets

import (
	"strconv"
	"strings"
)

// Fields splits a data line on a separator and converts individual fields,
// remembering the column of the first failure. It is meant to be used from
// Fill implementations:
//
//	f := assets.SplitFields(line, ',', 3)
//	f.Require(3)
//	u.ID = f.Int(0)
//	u.Name = f.String(1)
//	u.Texture = f.String(2)
//	return f.Err()
//
// The last field keeps any further separators.
type Fields struct {
	line   string
	parts  []string
	starts []int
	col    int
	failed bool
}

func SplitFields(line string, sep byte, max int) *Fields {
	f := &Fields{line: line}
	pos := 0
	for len(f.parts) < max-1 {
		i := strings.IndexByte(line[pos:], sep)
		if i < 0 {
			break
		}
		f.parts = append(f.parts, line[pos:pos+i])
		f.starts = append(f.starts, pos)
		pos += i + 1
	}
	f.parts = append(f.parts, line[pos:])
	f.starts = append(f.starts, pos)
	return f
}

func (f *Fields) Len() int { return len(f.parts) }

// Require fails at the end of the line when fewer than n fields are present.
func (f *Fields) Require(n int) {
	if len(f.parts) < n {
		f.fail(len(f.line))
	}
}

func (f *Fields) String(i int) string {
	if i >= len(f.parts) {
		f.fail(len(f.line))
		return ""
	}
	return f.parts[i]
}

func (f *Fields) Int(i int) int {
	s := f.String(i)
	if f.failed {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f.fail(f.starts[i])
		return 0
	}
	return v
}

func (f *Fields) Float(i int) float64 {
	s := f.String(i)
	if f.failed {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.fail(f.starts[i])
		return 0
	}
	return v
}

func (f *Fields) Bool(i int) bool {
	s := f.String(i)
	if f.failed {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		f.fail(f.starts[i])
		return false
	}
	return v
}

// NonEmpty fails at the field's column when field i is empty.
func (f *Fields) NonEmpty(i int) string {
	s := f.String(i)
	if !f.failed && s == "" {
		f.fail(f.starts[i])
	}
	return s
}

// Check fails at the column of field i unless ok holds.
func (f *Fields) Check(i int, ok bool) {
	if ok {
		return
	}
	if i >= len(f.parts) {
		f.fail(len(f.line))
		return
	}
	f.fail(f.starts[i])
}

// Err returns the first failing column in the form Fill expects.
func (f *Fields) Err() (column int, ok bool) {
	if f.failed {
		return f.col, false
	}
	return 0, true
}

func (f *Fields) fail(col int) {
	if !f.failed {
		f.col, f.failed = col, true
	}
}
