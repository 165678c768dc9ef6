package parser

import (
	"fmt"
	"strings"

	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

// MemberKind represents the kind of documented element
type MemberKind int

const (
	MemberModule MemberKind = iota
	MemberPackage
	MemberClass
	MemberConstructor
	MemberMethod
	MemberField
)

var memberKindNames = []string{"module", "package", "class", "constructor", "method", "field"}

func (k MemberKind) String() string {
	if int(k) < 0 || int(k) >= len(memberKindNames) {
		return "unknown"
	}
	return memberKindNames[k]
}

// ParseMemberKind accepts the names returned by String, case-insensitively.
func ParseMemberKind(s string) (MemberKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range memberKindNames {
		if name == s {
			return MemberKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown member kind %q", s)
}

func (k MemberKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MemberKind) UnmarshalText(text []byte) error {
	parsed, err := ParseMemberKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Member is one linkable element found in source.
type Member struct {
	ID      string              `json:"id"`
	Kind    MemberKind          `json:"kind"`
	Module  string              `json:"module,omitempty"`
	Package string              `json:"package,omitempty"` // slash notation, e.g. java/util
	Class   string              `json:"class,omitempty"`   // internal name, e.g. java/util/Map$Entry
	Name    string              `json:"name,omitempty"`
	Params  []javadoclink.Param `json:"params,omitempty"`
	Varargs bool                `json:"varargs,omitempty"`
	File    string              `json:"file"`
	Line    int                 `json:"line"`
}

// FileMembers holds all members extracted from a single file
type FileMembers struct {
	Path     string
	Language string
	Module   string // module declared by module-info.java, or inherited from the nearest one
	Package  string
	Members  []Member
	Hash     string // file content hash
}

// ParseIssue captures non-fatal parser warnings/errors encountered while scanning files.
type ParseIssue struct {
	File     string `json:"file"`
	Language string `json:"language,omitempty"`
	Severity string `json:"severity"` // warning | error
	Message  string `json:"message"`
}

// ParseResult holds the complete parse result for a source tree
type ParseResult struct {
	Files    []FileMembers
	RootPath string
	Issues   []ParseIssue
}

// Members flattens the members of every file in path order.
func (r *ParseResult) Members() []Member {
	var out []Member
	for _, file := range r.Files {
		out = append(out, file.Members...)
	}
	return out
}
