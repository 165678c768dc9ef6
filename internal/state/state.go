// Package state persists parse results between scans so unchanged source
// files are not parsed again.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/skelly-dev/javadoclink/internal/fileutil"
	"github.com/skelly-dev/javadoclink/internal/parser"
)

const (
	DefaultStateFile     = ".javadoclink-state.json"
	CurrentStateVersion  = "1"
	CurrentParserVersion = "tree-sitter-java-v1"
)

// FileState is the cached parse of one source file.
type FileState struct {
	Hash     string          `json:"hash"`
	Language string          `json:"language,omitempty"`
	Module   string          `json:"module,omitempty"`
	Package  string          `json:"package,omitempty"`
	Members  []parser.Member `json:"members,omitempty"`
}

// State tracks parsed files for incremental scans. It implements parser.Cache.
type State struct {
	Version       string               `json:"version"`
	ParserVersion string               `json:"parser_version"`
	Options       string               `json:"options,omitempty"`
	Files         map[string]FileState `json:"files"`

	seen   map[string]bool
	hits   int
	misses int
}

// NewState creates an empty state for parser options.
func NewState(options string) *State {
	return &State{
		Version:       CurrentStateVersion,
		ParserVersion: CurrentParserVersion,
		Options:       options,
		Files:         make(map[string]FileState),
		seen:          make(map[string]bool),
	}
}

// Load reads the state file at path. A missing file, or one written by another
// parser version or with other parser options, yields an empty state.
func Load(path, options string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(options), nil
		}
		return nil, err
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid state file %s: %w", path, err)
	}
	if s.Version != CurrentStateVersion || s.ParserVersion != CurrentParserVersion || s.Options != options {
		return NewState(options), nil
	}
	if s.Files == nil {
		s.Files = make(map[string]FileState)
	}
	s.seen = make(map[string]bool)
	return &s, nil
}

// Save writes files seen since Load, dropping entries for deleted files.
// It reports whether the file content changed.
func (s *State) Save(path string) (bool, error) {
	s.Prune()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return false, err
	}
	return fileutil.WriteIfChangedTracked(path, append(data, '\n'))
}

// Lookup returns the cached parse of path when its hash matches.
func (s *State) Lookup(path, hash string) (parser.FileMembers, bool) {
	s.seen[path] = true
	fs, ok := s.Files[path]
	if !ok || fs.Hash != hash {
		s.misses++
		return parser.FileMembers{}, false
	}
	s.hits++
	return parser.FileMembers{
		Path:     path,
		Language: fs.Language,
		Module:   fs.Module,
		Package:  fs.Package,
		Members:  append([]parser.Member(nil), fs.Members...),
		Hash:     fs.Hash,
	}, true
}

// Store records a fresh parse of path.
func (s *State) Store(path string, file parser.FileMembers) {
	s.seen[path] = true
	s.Files[path] = FileState{
		Hash:     file.Hash,
		Language: file.Language,
		Module:   file.Module,
		Package:  file.Package,
		Members:  file.Members,
	}
}

// DeletedFiles returns cached files that were not visited since Load.
func (s *State) DeletedFiles() []string {
	deleted := make([]string, 0)
	for file := range s.Files {
		if !s.seen[file] {
			deleted = append(deleted, file)
		}
	}
	sort.Strings(deleted)
	return deleted
}

// Prune removes cached files that were not visited since Load.
func (s *State) Prune() {
	for _, file := range s.DeletedFiles() {
		delete(s.Files, file)
	}
}

// Stats returns cache hits and misses since Load.
func (s *State) Stats() (hits, misses int) {
	return s.hits, s.misses
}
