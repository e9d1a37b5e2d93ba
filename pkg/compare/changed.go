package compare

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangedComparator counts only inserted and deleted lines
type ChangedComparator struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewChangedComparator creates a changed-lines comparator
func NewChangedComparator() *ChangedComparator {
	return &ChangedComparator{dmp: diffmatchpatch.New()}
}

// Compare returns the number of lines present on only one side of the
// line-level diff, or 0 for identical input
func (c *ChangedComparator) Compare(a, b []string) int {
	if EqualLines(a, b) {
		return 0
	}

	// each rune stands for one distinct line
	src, dst, _ := c.dmp.DiffLinesToRunes(strings.Join(a, ""), strings.Join(b, ""))
	diffs := c.dmp.DiffMainRunes(src, dst, false)

	count := 0
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			count += utf8.RuneCountInString(d.Text)
		}
	}
	return count
}

// Name returns the comparator name
func (c *ChangedComparator) Name() string {
	return "changed"
}
