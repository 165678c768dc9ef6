package parser

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skelly-dev/javadoclink/internal/fileutil"
	"github.com/skelly-dev/javadoclink/internal/ignore"
)

// ModuleInfoFile is the compilation unit that declares a Java module.
const ModuleInfoFile = "module-info.java"

// LanguageParser defines the interface each language must implement
type LanguageParser interface {
	// Language returns the language name (e.g., "java")
	Language() string

	// Extensions returns file extensions this parser handles
	Extensions() []string

	// Parse extracts members from source code
	Parse(ctx context.Context, filename string, content []byte) (*FileMembers, error)
}

// Cache holds parse results of unchanged files between scans. Paths are
// slash-separated and relative to the scanned root.
type Cache interface {
	Lookup(path, hash string) (FileMembers, bool)
	Store(path string, file FileMembers)
}

// Registry holds all registered language parsers
type Registry struct {
	parsers   map[string]LanguageParser // language name -> parser
	extToLang map[string]string         // extension -> language name
	cache     Cache
}

// NewRegistry creates a new parser registry
func NewRegistry() *Registry {
	return &Registry{
		parsers:   make(map[string]LanguageParser),
		extToLang: make(map[string]string),
	}
}

// Register adds a language parser to the registry
func (r *Registry) Register(p LanguageParser) {
	lang := p.Language()
	r.parsers[lang] = p
	for _, ext := range p.Extensions() {
		r.extToLang[ext] = lang
	}
}

// SetCache makes ParseDirectory reuse cached results for files whose content
// hash is unchanged.
func (r *Registry) SetCache(cache Cache) {
	r.cache = cache
}

// GetParserForFile returns the appropriate parser for a file
func (r *Registry) GetParserForFile(filename string) (LanguageParser, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	lang, ok := r.extToLang[ext]
	if !ok {
		return nil, false
	}
	parser, ok := r.parsers[lang]
	return parser, ok
}

// SupportedExtensions returns all supported file extensions, sorted
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.extToLang))
	for ext := range r.extToLang {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ParseFile parses a single file and returns its members
func (r *Registry) ParseFile(ctx context.Context, path string) (*FileMembers, error) {
	parser, ok := r.GetParserForFile(path)
	if !ok {
		return nil, nil // unsupported file type, skip silently
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseContent(ctx, parser, path, content)
}

func parseContent(ctx context.Context, parser LanguageParser, path string, content []byte) (*FileMembers, error) {
	members, err := parser.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}
	if members.Language == "" {
		members.Language = parser.Language()
	}
	members.Members = normalizeMembers(members.Members)
	members.Hash = fileutil.HashBytes(content)

	return members, nil
}

// ParseDirectory recursively parses all supported files in a directory.
// Files below a module-info.java inherit the module it declares; the nearest
// declaration wins.
func (r *Registry) ParseDirectory(ctx context.Context, root string, ignorePaths []string) (*ParseResult, error) {
	ignoreMatcher := ignore.NewMatcher(ignorePaths)

	result := &ParseResult{
		RootPath: root,
		Files:    make([]FileMembers, 0),
		Issues:   make([]ParseIssue, 0),
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			relPath := path
			if rel, relErr := filepath.Rel(root, path); relErr == nil {
				relPath = rel
			}
			result.Issues = append(result.Issues, ParseIssue{
				File:     filepath.ToSlash(relPath),
				Severity: "warning",
				Message:  fmt.Sprintf("walk error: %v", err),
			})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		relPath = filepath.ToSlash(relPath)
		if ignoreMatcher.ShouldIgnore(relPath, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		members, err := r.parseCached(ctx, path, relPath)
		if err != nil {
			lang := ""
			if langParser, ok := r.GetParserForFile(path); ok {
				lang = langParser.Language()
			}
			result.Issues = append(result.Issues, ParseIssue{
				File:     relPath,
				Language: lang,
				Severity: "error",
				Message:  err.Error(),
			})
			return nil
		}
		if members != nil {
			members.Path = relPath
			result.Files = append(result.Files, *members)
		}

		return nil
	})

	propagateModules(result.Files)
	for i := range result.Files {
		file := &result.Files[i]
		for j := range file.Members {
			file.Members[j].File = file.Path
			if file.Members[j].Module == "" {
				file.Members[j].Module = file.Module
			}
			file.Members[j].ID = StableMemberID(file.Members[j])
		}
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	sort.Slice(result.Issues, func(i, j int) bool {
		if result.Issues[i].File == result.Issues[j].File {
			return result.Issues[i].Message < result.Issues[j].Message
		}
		return result.Issues[i].File < result.Issues[j].File
	})

	return result, err
}

// parseCached parses path unless the cache holds a result for the same content.
func (r *Registry) parseCached(ctx context.Context, path, relPath string) (*FileMembers, error) {
	if r.cache == nil {
		return r.ParseFile(ctx, path)
	}
	parser, ok := r.GetParserForFile(path)
	if !ok {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if cached, ok := r.cache.Lookup(relPath, fileutil.HashBytes(content)); ok {
		return &cached, nil
	}

	members, err := parseContent(ctx, parser, path, content)
	if err != nil {
		return nil, err
	}
	r.cache.Store(relPath, cloneFile(*members))
	return members, nil
}

// cloneFile copies the member slice so later ID and module assignment does
// not leak into cached entries.
func cloneFile(file FileMembers) FileMembers {
	if file.Members != nil {
		file.Members = append([]Member(nil), file.Members...)
	}
	return file
}

func propagateModules(files []FileMembers) {
	declared := make(map[string]string)
	for _, file := range files {
		if path.Base(file.Path) == ModuleInfoFile && file.Module != "" {
			declared[path.Dir(file.Path)] = file.Module
		}
	}
	if len(declared) == 0 {
		return
	}

	for i := range files {
		if files[i].Module != "" {
			continue
		}
		for dir := path.Dir(files[i].Path); ; dir = path.Dir(dir) {
			if module, ok := declared[dir]; ok {
				files[i].Module = module
				break
			}
			if dir == "." || dir == "/" {
				break
			}
		}
	}
}

func normalizeMembers(values []Member) []Member {
	if len(values) == 0 {
		return nil
	}

	out := make([]Member, 0, len(values))
	for _, value := range values {
		value.Name = strings.TrimSpace(value.Name)
		if value.Kind >= MemberConstructor && value.Name == "" {
			continue
		}
		out = append(out, value)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Line < out[j].Line
	})
	return out
}
