package compare

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/41008896/treediff/pkg/models"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d\n", i)
	}
	return lines
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"SingleTerminated", "a\n", []string{"a\n"}},
		{"NoFinalNewline", "a\nb", []string{"a\n", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a\n", "b\n"}},
		{"LoneCR", "a\rb", []string{"a\n", "b"}},
		{"BlankLines", "\n\n", []string{"\n", "\n"}},
		{"InvalidUTF8Dropped", "ok\xff\xfe\nnext\n", []string{"ok\n", "next\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.in)))
		})
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("one\ntwo\nthree\n"))
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestEqualLines(t *testing.T) {
	assert.True(t, EqualLines(nil, []string{}))
	assert.True(t, EqualLines([]string{"a\n"}, []string{"a\n"}))
	assert.False(t, EqualLines([]string{"a\n"}, []string{"a"}))
	assert.False(t, EqualLines([]string{"a\n"}, []string{"a\n", "b\n"}))
}

func TestUnifiedComparator(t *testing.T) {
	base := numbered(20)
	farApart := append([]string(nil), base...)
	farApart[1], farApart[17] = "X\n", "Y\n"
	nearby := append([]string(nil), base...)
	nearby[5], nearby[7] = "X\n", "Y\n"

	tests := []struct {
		name string
		a, b []string
		want int
	}{
		{"Identical", []string{"a\n", "b\n"}, []string{"a\n", "b\n"}, 0},
		{"BothEmpty", nil, nil, 0},
		{"SingleReplace", []string{"x\n", "y\n"}, []string{"x\n", "z\n"}, 6},
		{"AllDeleted", []string{"a\n", "b\n", "c\n"}, nil, 6},
		{"AllInserted", nil, []string{"a\n"}, 4},
		{"TwoHunks", base, farApart, 17},
		{"MergedHunk", base, nearby, 14},
		{"MissingFinalNewline", []string{"a\n", "b"}, []string{"a\n", "b\n"}, 6},
	}

	c := NewUnifiedComparator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compare(tt.a, tt.b))
		})
	}
}

func TestUnifiedComparatorMatchesRenderedDiff(t *testing.T) {
	a := numbered(40)
	b := append([]string(nil), a...)
	b[3] = "changed\n"
	b = append(b[:20], b[22:]...)
	b = append(b, "tail\n")

	rendered, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: "left",
		ToFile:   "right",
		Context:  DefaultContext,
	})
	require.NoError(t, err)

	assert.Equal(t, strings.Count(rendered, "\n"), NewUnifiedComparator().Compare(a, b))
}

func TestChangedComparator(t *testing.T) {
	c := NewChangedComparator()

	assert.Equal(t, 0, c.Compare([]string{"a\n"}, []string{"a\n"}))
	assert.Equal(t, 2, c.Compare([]string{"x\n", "y\n"}, []string{"x\n", "z\n"}))
	assert.Equal(t, 3, c.Compare([]string{"a\n", "b\n", "c\n"}, nil))
	assert.Equal(t, 1, c.Compare([]string{"a\n"}, []string{"a\n", "b\n"}))
}

func TestNew(t *testing.T) {
	c, err := New(models.MetricUnified)
	require.NoError(t, err)
	assert.Equal(t, "unified", c.Name())

	c, err = New(models.MetricChanged)
	require.NoError(t, err)
	assert.Equal(t, "changed", c.Name())

	_, err = New("bytes")
	assert.Error(t, err)
}
