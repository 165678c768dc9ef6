// Package batch evaluates link requests read from YAML or JSON documents. The
// single-link CLI commands go through the same Evaluator.
package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/skelly-dev/javadoclink/internal/errors"
	"github.com/skelly-dev/javadoclink/internal/logging"
	"github.com/skelly-dev/javadoclink/internal/output"
	"github.com/skelly-dev/javadoclink/internal/parser"
	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

// Request describes one link. Package and Class accept dotted or internal
// notation. Params are source type names such as "java.lang.String[]" or
// "Object..."; Descriptor takes precedence when both are set.
type Request struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Module     string   `json:"module,omitempty" yaml:"module,omitempty"`
	Package    string   `json:"package,omitempty" yaml:"package,omitempty"`
	Class      string   `json:"class,omitempty" yaml:"class,omitempty"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Descriptor string   `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Params     []string `json:"params,omitempty" yaml:"params,omitempty"`
	Varargs    bool     `json:"varargs,omitempty" yaml:"varargs,omitempty"`
	Version    string   `json:"version,omitempty" yaml:"version,omitempty"`
}

// Result is the outcome of one request.
type Result struct {
	Request Request `json:"request" yaml:"request"`
	URL     string  `json:"url,omitempty" yaml:"url,omitempty"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
	Err     error   `json:"-" yaml:"-"`
}

// Decode reads a list of requests, either bare or under a "requests" key.
// JSON input is accepted as YAML.
func Decode(data []byte) ([]Request, error) {
	var list []Request
	listErr := yaml.Unmarshal(data, &list)
	if listErr == nil {
		return list, nil
	}

	var doc struct {
		Requests []Request `yaml:"requests"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(listErr, errors.CategoryParse, "invalid batch document")
	}
	return doc.Requests, nil
}

// Evaluator resolves requests with shared defaults.
type Evaluator struct {
	// Version applies to requests without their own version.
	Version string

	// Module applies to requests without their own module.
	Module string

	// BaseURL returns the documentation root for a version. Nil means relative links.
	BaseURL func(version string) string
}

// Link returns the formatter for version, falling back to the default version.
func (e Evaluator) Link(version string) (javadoclink.Link, error) {
	if version == "" {
		version = e.Version
	}
	link, ok := javadoclink.ForVersion(version)
	if !ok {
		return javadoclink.Link{}, errors.UnknownVersion(version)
	}
	if e.BaseURL != nil {
		link = link.WithBaseURL(e.BaseURL(strings.TrimSpace(version)))
	}
	return link, nil
}

// Evaluate returns the link for one request.
func (e Evaluator) Evaluate(req Request) (string, error) {
	kind, err := parser.ParseMemberKind(req.Kind)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryValidation, "invalid request")
	}
	link, err := e.Link(req.Version)
	if err != nil {
		return "", err
	}

	module := req.Module
	if module == "" {
		module = e.Module
	}
	class := ToInternal(req.Class)

	if kind >= parser.MemberClass && class == "" {
		return "", errors.New(errors.CategoryValidation, kind.String()+" request requires a class")
	}
	if (kind == parser.MemberMethod || kind == parser.MemberField) && req.Name == "" {
		return "", errors.New(errors.CategoryValidation, kind.String()+" request requires a name")
	}

	switch kind {
	case parser.MemberModule:
		if module == "" {
			return "", errors.New(errors.CategoryValidation, "module request requires a module")
		}
		return link.ModuleLink(module)
	case parser.MemberPackage:
		if req.Package == "" {
			return "", errors.New(errors.CategoryValidation, "package request requires a package")
		}
		return link.PackageLink(module, ToInternal(req.Package)), nil
	case parser.MemberClass:
		return link.ClassLink(module, class), nil
	case parser.MemberField:
		return link.FieldLink(module, class, req.Name), nil
	}

	name := req.Name
	if kind == parser.MemberConstructor {
		name = javadoclink.ConstructorName
	}
	if req.Descriptor != "" {
		return link.MethodLink(module, class, name, req.Descriptor, req.Varargs)
	}
	params, varargs := TypeParams(req.Params)
	return link.MethodLinkFromTypes(module, class, name, params, varargs || req.Varargs), nil
}

// Run evaluates every request. Failures are kept per result; only context
// cancellation stops the run.
func (e Evaluator) Run(ctx context.Context, reqs []Request) (Results, error) {
	logger := logging.FromContext(ctx)
	results := make(Results, 0, len(reqs))
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		url, err := e.Evaluate(req)
		result := Result{Request: req, URL: url, Err: err}
		if err != nil {
			result.Error = err.Error()
			logger.Debug().Int("index", i).Str("kind", req.Kind).Err(err).Msg("request failed")
		}
		results = append(results, result)
	}
	return results, nil
}

// ToInternal converts dotted package or class names to internal notation.
// Nested classes must already use '$'.
func ToInternal(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), ".", "/")
}

// TypeParams parses source type names. A trailing "..." on the last name
// marks the list as variable arity.
func TypeParams(names []string) ([]javadoclink.Param, bool) {
	params := make([]javadoclink.Param, 0, len(names))
	varargs := false
	for i, name := range names {
		if i == len(names)-1 && strings.HasSuffix(strings.TrimSpace(name), "...") {
			varargs = true
		}
		params = append(params, javadoclink.ParseTypeName(name))
	}
	return params, varargs
}

// Results is a list of batch results.
type Results []Result

// Failed counts results with an error.
func (r Results) Failed() int {
	n := 0
	for _, result := range r {
		if result.Err != nil || result.Error != "" {
			n++
		}
	}
	return n
}

// FirstError returns the first failure, if any.
func (r Results) FirstError() error {
	for _, result := range r {
		if result.Err != nil {
			return result.Err
		}
	}
	return nil
}

func (r Results) TextLines() []string {
	lines := make([]string, 0, len(r))
	for _, result := range r {
		if result.Error != "" {
			lines = append(lines, "error: "+result.Error)
			continue
		}
		lines = append(lines, result.URL)
	}
	return lines
}

func (r Results) TableData() output.Data {
	data := output.Data{Headers: []string{"kind", "target", "result"}}
	for _, result := range r {
		value := result.URL
		if result.Error != "" {
			value = "error: " + result.Error
		}
		data.Rows = append(data.Rows, []string{result.Request.Kind, target(result.Request), value})
	}
	return data
}

func target(req Request) string {
	switch {
	case req.Class != "" && req.Name != "":
		return fmt.Sprintf("%s#%s", req.Class, req.Name)
	case req.Class != "":
		return req.Class
	case req.Package != "":
		return req.Package
	default:
		return req.Module
	}
}
