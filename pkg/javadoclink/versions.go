package javadoclink

import "strings"

type versionEntry struct {
	version string
	rules   *Rules
}

// versions is ordered from the oldest to the newest javadoc layout.
var versions = []versionEntry{
	{"1.1", earliestRules},
	{"1.2", earlyMidRules},
	{"1.3", earlyMidRules},
	{"1.4", earlyMidRules},
	{"5", earlyMidRules},
	{"6", earlyMidRules},
	{"7", earlyMidRules},
	{"8", flatAnchorRules},
	{"9", flatAnchorModuleRules},
	{"10", restoredParensRules},
	{"11", moduleQualifiedRules},
	{"12", moduleQualifiedRules},
	{"13", moduleQualifiedRules},
	{"14", moduleQualifiedRules},
	{"15", moduleQualifiedRules},
	{"16", moduleQualifiedRules},
	{"17", moduleQualifiedRules},
	{"18", moduleQualifiedRules},
}

var versionIndex = buildVersionIndex()

func buildVersionIndex() map[string]*Rules {
	index := make(map[string]*Rules, len(versions))
	for _, entry := range versions {
		index[entry.version] = entry.rules
	}
	return index
}

// SupportedVersions returns the known version identifiers, oldest first.
func SupportedVersions() []string {
	out := make([]string, 0, len(versions))
	for _, entry := range versions {
		out = append(out, entry.version)
	}
	return out
}

// ForVersion returns the link generator for a JDK major version such as "1.4",
// "8" or "17". The second result is false for unknown versions.
func ForVersion(version string) (Link, bool) {
	rules, ok := versionIndex[strings.TrimSpace(version)]
	if !ok {
		return Link{}, false
	}
	return Link{rules: rules}, true
}

// MustForVersion is like ForVersion but panics on unknown versions.
func MustForVersion(version string) Link {
	link, ok := ForVersion(version)
	if !ok {
		panic("javadoclink: unsupported version " + version)
	}
	return link
}
