// Package resolve turns parsed source members into javadoc deep links.
package resolve

import (
	"fmt"

	"github.com/skelly-dev/javadoclink/internal/parser"
	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

// Resolver links members against one javadoc version.
type Resolver struct {
	Link javadoclink.Link

	// Module is used for members whose source tree declares no module.
	Module string
}

// Resolved pairs a member with its link or the reason it has none.
type Resolved struct {
	Member parser.Member `json:"member"`
	URL    string        `json:"url,omitempty"`
	Err    error         `json:"-"`
}

// Resolve returns the deep link for m.
func (r Resolver) Resolve(m parser.Member) (string, error) {
	module := m.Module
	if module == "" {
		module = r.Module
	}

	switch m.Kind {
	case parser.MemberModule:
		return r.Link.ModuleLink(module)
	case parser.MemberPackage:
		return r.Link.PackageLink(module, m.Package), nil
	case parser.MemberClass:
		return r.Link.ClassLink(module, m.Class), nil
	case parser.MemberConstructor:
		return r.Link.MethodLinkFromTypes(module, m.Class, javadoclink.ConstructorName, m.Params, m.Varargs), nil
	case parser.MemberMethod:
		return r.Link.MethodLinkFromTypes(module, m.Class, m.Name, m.Params, m.Varargs), nil
	case parser.MemberField:
		return r.Link.FieldLink(module, m.Class, m.Name), nil
	default:
		return "", fmt.Errorf("unsupported member kind %s", m.Kind)
	}
}

// ResolveAll resolves every member. Failures are recorded per member.
func (r Resolver) ResolveAll(members []parser.Member) []Resolved {
	out := make([]Resolved, 0, len(members))
	for _, m := range members {
		url, err := r.Resolve(m)
		out = append(out, Resolved{Member: m, URL: url, Err: err})
	}
	return out
}
