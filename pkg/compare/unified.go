package compare

import (
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of context lines around each hunk
const DefaultContext = 3

// UnifiedComparator counts the lines a unified diff of the two sequences
// would contain: the "---" and "+++" file headers, one "@@" header per
// hunk, and every context, removed and added line.
type UnifiedComparator struct {
	context int
}

// NewUnifiedComparator creates a unified-diff comparator with 3 context lines
func NewUnifiedComparator() *UnifiedComparator {
	return &UnifiedComparator{context: DefaultContext}
}

// Compare returns the unified diff line count, or 0 for identical input
func (c *UnifiedComparator) Compare(a, b []string) int {
	if EqualLines(a, b) {
		return 0
	}

	matcher := difflib.NewMatcher(a, b)
	count := 2 // file headers
	for _, group := range matcher.GetGroupedOpCodes(c.context) {
		count++ // hunk header
		for _, op := range group {
			removed, added := op.I2-op.I1, op.J2-op.J1
			switch op.Tag {
			case 'e', 'd':
				count += removed
			case 'i':
				count += added
			case 'r':
				count += removed + added
			}
		}
	}
	return count
}

// Name returns the comparator name
func (c *UnifiedComparator) Name() string {
	return "unified"
}
