package models

// OutcomeKind tags a FileOutcome
type OutcomeKind string

const (
	// KindOnlyInLeft marks a file that exists only in the left tree
	KindOnlyInLeft OutcomeKind = "only_in_left"
	// KindDifferent marks a file present in both trees with differing lines
	KindDifferent OutcomeKind = "different"
	// KindUnreadable marks a file whose content could not be read
	KindUnreadable OutcomeKind = "unreadable"
	// KindOnlyInRight marks a file that exists only in the right tree.
	// Only produced when right-only reporting is enabled.
	KindOnlyInRight OutcomeKind = "only_in_right"
)

// Outcome is the per-file result of a comparison. Identical files never
// produce an outcome.
type Outcome struct {
	// Path is the forward-slash path relative to both roots
	Path string

	// Kind tags the variant
	Kind OutcomeKind

	// Lines is the file line count for the only-in kinds and the diff
	// metric for KindDifferent
	Lines int

	// Side and Err are set for KindUnreadable
	Side Side
	Err  error
}

// Counted reports whether the outcome contributes to the report totals
func (o Outcome) Counted() bool {
	return o.Kind != KindUnreadable
}

// OnlyInLeft builds a left-only outcome
func OnlyInLeft(path string, lineCount int) Outcome {
	return Outcome{Path: path, Kind: KindOnlyInLeft, Lines: lineCount}
}

// OnlyInRight builds a right-only outcome
func OnlyInRight(path string, lineCount int) Outcome {
	return Outcome{Path: path, Kind: KindOnlyInRight, Lines: lineCount}
}

// Differs builds a differing-file outcome
func Differs(path string, diffLineCount int) Outcome {
	return Outcome{Path: path, Kind: KindDifferent, Lines: diffLineCount}
}

// Unreadable builds an outcome for a file that failed to read
func Unreadable(path string, side Side, err error) Outcome {
	return Outcome{Path: path, Kind: KindUnreadable, Side: side, Err: err}
}
