package assets

import (
	"log/slog"
)

// LoadRecursive loads filename relative to dir and then lets every record
// load its own follow-up files. Nested loads are rooted at dir plus the
// directory part of filename.
//
// A missing file is a hard failure, never an empty table. A file that is
// referenced again while it is still being resolved fails with a *CycleError.
func LoadRecursive[T any, P interface {
	*T
	Record
}](dir Dir, filename string) (Table[T], error) {
	full := dir.Join(filename)
	if !Exists(full) {
		return nil, &FileNotFoundError{Path: full}
	}
	if dir.resolving(full) {
		return nil, &CycleError{Path: full, Chain: dir.Chain()}
	}

	table, lineNos, err := loadTable[T, P](full)
	if err != nil {
		return nil, err
	}

	next := dir.Append(Dirname(filename)).enter(full)
	for i := range table {
		if err := P(&table[i]).Recurse(next); err != nil {
			return nil, &RecursionError{Path: full, Line: lineNos[i], Err: err}
		}
	}

	slog.Debug("Resolved data file.", "path", full, "base", next.Path(), "depth", len(next.chain))
	return table, nil
}
