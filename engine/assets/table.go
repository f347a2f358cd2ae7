package assets

import (
	"log/slog"
)

// Filler populates a record from one raw data line. On failure it returns
// the 0-based column where parsing stopped and ok == false.
type Filler interface {
	Fill(line string) (column int, ok bool)
}

// Record is a data line that may load further files relative to the
// directory of the file it was declared in.
type Record interface {
	Filler
	Recurse(dir Dir) error
}

// Table holds the records of one data file in line order.
type Table[T any] []T

// LoadTable reads path and fills one fresh T per data line. Empty lines and
// lines starting with '#' are skipped. The first line rejected by Fill fails
// the whole file with a *ParseError; no partial table is returned.
func LoadTable[T any, P interface {
	*T
	Filler
}](path string) (Table[T], error) {
	t, _, err := loadTable[T, P](path)
	return t, err
}

// loadTable additionally returns the physical line number of every record.
func loadTable[T any, P interface {
	*T
	Filler
}](path string) (Table[T], []int, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, nil, err
	}

	result := Table[T]{}
	var lineNos []int
	for i, line := range lines {
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		var rec T
		if col, ok := P(&rec).Fill(line); !ok {
			return nil, nil, &ParseError{Path: path, Line: i + 1, Column: col, Raw: line}
		}
		result = append(result, rec)
		lineNos = append(lineNos, i+1)
	}

	slog.Debug("Loaded data table.", "path", path, "records", len(result), "skipped", len(lines)-len(result))
	return result, lineNos, nil
}
