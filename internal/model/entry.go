package model

import "time"

// LevelUnknown is assigned when no level rule matches a line.
const LevelUnknown = "UNKNOWN"

// Entry is one keyword-matching log line with inferred metadata.
// For archive entries Path is the archive path joined with the inner
// entry name, so provenance survives the archive boundary.
type Entry struct {
	Level     string
	Path      string
	Content   string     // raw line, trailing whitespace preserved, terminator stripped
	Timestamp *time.Time // nil when no timestamp pattern matched
}
