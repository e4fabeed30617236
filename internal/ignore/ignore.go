// Package ignore decides which files in the configuration directory are
// noise: editor swap files, backups and lock files written while the
// config is being saved.
//
// Patterns use gitignore syntax via go-git. The built-in set can be
// extended with a .zjhintsignore file in the watched directory.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// FileName is the optional per-directory pattern file.
const FileName = ".zjhintsignore"

// DefaultPatterns cover the scratch files common editors leave behind.
var DefaultPatterns = []string{
	"*.swp",
	"*.swx",
	"*.swo",
	"*~",
	".#*",
	`\#*#`,
	"4913",
	"*.tmp",
	"*.lock",
	".DS_Store",
}

// Matcher checks paths inside one directory against ignore patterns.
type Matcher struct {
	root     string
	fastDirs map[string]bool
	matcher  gitignore.Matcher
}

// NewMatcher returns a matcher rooted at dir. It combines DefaultPatterns,
// the lines of dir/.zjhintsignore if present, and extra.
func NewMatcher(dir string, extra ...string) *Matcher {
	lines := append([]string{}, DefaultPatterns...)
	if content, err := os.ReadFile(filepath.Join(dir, FileName)); err == nil {
		lines = append(lines, strings.Split(string(content), "\n")...)
	}
	lines = append(lines, extra...)

	return &Matcher{
		root: dir,
		fastDirs: map[string]bool{
			".git":  true,
			".jj":   true,
			".svn":  true,
			".hg":   true,
			".idea": true,
		},
		matcher: gitignore.NewMatcher(parsePatterns(lines)),
	}
}

// Match reports whether path should be ignored. isDir must be true for
// directories so that directory-only patterns apply.
func (m *Matcher) Match(path string, isDir bool) bool {
	if isDir && m.fastDirs[filepath.Base(path)] {
		return true
	}
	if path == m.root {
		return false
	}

	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		rel = path
	}
	components := pathToComponents(rel)
	if len(components) == 0 {
		return false
	}
	return m.matcher.Match(components, isDir)
}

func pathToComponents(path string) []string {
	path = filepath.ToSlash(path)
	if path == "" || path == "." {
		return nil
	}
	return strings.Split(path, "/")
}

// parsePatterns converts gitignore lines into root-level patterns,
// skipping blanks and comments.
func parsePatterns(lines []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}
