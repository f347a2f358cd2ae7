// Package assets loads line-oriented data files into typed tables and follows
// references from one data file to the next.
//
// A data file is plain text. Empty lines and lines whose first byte is '#'
// are ignored; every other line is handed verbatim to the record type's Fill
// method, which alone decides how fields are separated. Diagnostics count
// physical lines, so reported line numbers match the file on disk.
//
// Records may reference further files from their Recurse method. Those files
// are resolved relative to the directory of the file that declared the
// record:
//
//	data/
//	  gamedata.txt        units/list.txt
//	  units/list.txt      defs/archer.txt  -> data/units/defs/archer.txt
//
// Any failure aborts the whole load; callers never see partial tables.
package assets
