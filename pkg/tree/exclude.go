package tree

import (
	"path"
	"strings"
)

// Excluder matches relative paths against glob patterns.
//
// Supported pattern forms:
//   - basename globs: *.tmp, *.log
//   - directory patterns with a trailing slash: .git/, node_modules/
//   - path globs containing '/': build/*, docs/*.md
//   - any-depth globs: **/testdata/*
type Excluder struct {
	patterns []string
}

// NewExcluder normalizes the patterns and drops empty ones
func NewExcluder(patterns []string) *Excluder {
	e := &Excluder{}
	for _, p := range patterns {
		p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
		if p != "" {
			e.patterns = append(e.patterns, p)
		}
	}
	return e
}

// Match reports whether a forward-slash relative path is excluded
func (e *Excluder) Match(relPath string) bool {
	if e == nil || len(e.patterns) == 0 {
		return false
	}

	base := path.Base(relPath)
	for _, pattern := range e.patterns {
		if matchPattern(pattern, relPath, base) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, relPath, base string) bool {
	if dir, ok := strings.CutSuffix(pattern, "/"); ok {
		return relPath == dir ||
			strings.HasPrefix(relPath, dir+"/") ||
			strings.Contains(relPath, "/"+dir+"/")
	}

	if suffix, ok := strings.CutPrefix(pattern, "**/"); ok {
		if globMatch(suffix, base) || relPath == suffix || strings.HasSuffix(relPath, "/"+suffix) {
			return true
		}
		// try the suffix against every trailing run of path components
		parts := strings.Split(relPath, "/")
		for i := range parts {
			if globMatch(suffix, strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	if strings.Contains(pattern, "/") {
		if globMatch(pattern, relPath) {
			return true
		}
		// also anchor the pattern at any depth, e.g. build/* on sub/build/x
		n := strings.Count(pattern, "/") + 1
		parts := strings.Split(relPath, "/")
		return len(parts) > n && globMatch(pattern, strings.Join(parts[len(parts)-n:], "/"))
	}

	return globMatch(pattern, base)
}

func globMatch(pattern, name string) bool {
	matched, _ := path.Match(pattern, name)
	return matched
}
