package compare

import (
	"io"
	"strings"
)

// ReadLines reads r fully and splits it with SplitLines
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// SplitLines decodes data as UTF-8 on a best-effort basis and splits it
// into lines. Invalid byte sequences are dropped, "\r\n" and lone "\r"
// become "\n", and every line keeps its terminator. A trailing line with
// no terminator is still a line.
func SplitLines(data []byte) []string {
	text := strings.ToValidUTF8(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// EqualLines reports whether a and b are element-wise identical
func EqualLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
