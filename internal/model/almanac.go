package model

// Almanac is a parsed almanac file: the numbers from the seeds line and the
// stages in the order they appear in the file.
type Almanac struct {
	Seeds  []uint64
	Stages []Stage
}

// Path represents a file system path.
type Path string
