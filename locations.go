package starlex

import "sort"

// Location identifies a single point in a source file by 1-based line and
// column, alongside the file name it came from.
type Location struct {
	File string
	Line int
	Col  int
}

// FileLocations maps byte offsets in a buffer to Locations. It is built
// once per buffer and is a total function over [0, len(buffer)].
type FileLocations struct {
	file       string
	lineStarts []int // byte offset of the first byte of each line; lineStarts[0] == 0
	bufferLen  int
}

// NewFileLocations scans buffer once for newline positions.
func NewFileLocations(file string, buffer []byte) *FileLocations {
	fl := &FileLocations{file: file, lineStarts: []int{0}, bufferLen: len(buffer)}
	for i, b := range buffer {
		if b == '\n' {
			fl.lineStarts = append(fl.lineStarts, i+1)
		}
	}
	return fl
}

// LocationOf returns the (file, line, column) for a byte offset. offset is
// clamped into [0, bufferLen] rather than panicking, so callers reporting
// an error at pos-1 for pos==0 never crash.
func (fl *FileLocations) LocationOf(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > fl.bufferLen {
		offset = fl.bufferLen
	}
	// last lineStart <= offset
	i := sort.Search(len(fl.lineStarts), func(i int) bool { return fl.lineStarts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Location{
		File: fl.file,
		Line: i + 1,
		Col:  offset - fl.lineStarts[i] + 1,
	}
}
