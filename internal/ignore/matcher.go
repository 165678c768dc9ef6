package ignore

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultRules exclude VCS metadata, IDE state and Maven/Gradle build output.
var DefaultRules = []string{
	".git/",
	".idea/",
	".gradle/",
	".mvn/",
	"node_modules/",
	"target/",
	"build/",
	"out/",
	"bin/",
}

type rule struct {
	glob    string
	negated bool
	dirOnly bool
}

// Matcher applies gitignore-like rules with "last rule wins" behavior.
type Matcher struct {
	rules []rule
}

// NewMatcher builds a matcher from user-provided .javadoclinkignore lines.
// Default excludes are prepended and can be overridden by user negation rules.
func NewMatcher(userRules []string) *Matcher {
	all := make([]string, 0, len(DefaultRules)+len(userRules))
	all = append(all, DefaultRules...)
	all = append(all, userRules...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}

	return &Matcher{rules: rules}
}

// ShouldIgnore returns true when relPath should be excluded.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)
	if relPath == "" || relPath == "." {
		return false
	}
	dirs := parentDirs(relPath)
	if isDir {
		dirs = append(dirs, relPath)
	}

	ignored := false
	for _, r := range m.rules {
		if r.matches(relPath, dirs) {
			ignored = !r.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimPrefix(line, "!")
	}
	anchored := strings.HasPrefix(line, "/")
	line = strings.TrimPrefix(line, "/")
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" {
		return rule{}, false
	}
	if !anchored && !strings.HasPrefix(line, "**/") {
		line = "**/" + line
	}
	if !doublestar.ValidatePattern(line) {
		return rule{}, false
	}
	parsed.glob = line
	return parsed, true
}

func (r rule) matches(relPath string, dirs []string) bool {
	if !r.dirOnly && match(r.glob, relPath) {
		return true
	}
	for _, dir := range dirs {
		if match(r.glob, dir) {
			return true
		}
	}
	return false
}

func match(glob, value string) bool {
	ok, err := doublestar.Match(glob, value)
	return err == nil && ok
}

// parentDirs lists every ancestor directory of relPath, outermost first.
func parentDirs(relPath string) []string {
	var dirs []string
	for dir := path.Dir(relPath); dir != "." && dir != "/"; dir = path.Dir(dir) {
		dirs = append([]string{dir}, dirs...)
	}
	return dirs
}

func normalizePath(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	return p
}
