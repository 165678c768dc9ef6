package javadoclink

import "strings"

// Link creates deep links into one javadoc tree. It is a small immutable value;
// use ForVersion to obtain one. The zero Link is not usable.
type Link struct {
	base  string
	rules *Rules
}

// WithBaseURL returns a copy of l that prefixes every link with baseURL. An
// empty baseURL produces relative links.
func (l Link) WithBaseURL(baseURL string) Link {
	l.base = normalizeBase(baseURL)
	return l
}

func normalizeBase(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/"
}

// BaseURL returns the normalized prefix, empty for relative links.
func (l Link) BaseURL() string {
	return l.base
}

// Lineage names the URL layout family of the selected version.
func (l Link) Lineage() string {
	return l.rules.Lineage
}

// Params returns the parameter style used in method anchors.
func (l Link) Params() ParameterStyle {
	return l.rules.Params
}

// SupportsModules reports whether ModuleLink can succeed.
func (l Link) SupportsModules() bool {
	_, err := l.rules.Module("java.base")
	return err == nil
}

// ModuleLink links to the module summary page, e.g. for "java.base". Versions
// before 9 fail with ErrUnsupportedOperation.
func (l Link) ModuleLink(module string) (string, error) {
	path, err := l.rules.Module(module)
	if err != nil {
		return "", err
	}
	return l.base + path, nil
}

// PackageLink links to the package summary page. pkg is in internal notation
// ("java/lang").
func (l Link) PackageLink(module, pkg string) string {
	return l.base + l.rules.Package(module, pkg)
}

// ClassLink links to a class page. class is in internal notation
// ("java/util/Map$Entry").
func (l Link) ClassLink(module, class string) string {
	return l.base + l.rules.Class(module, class)
}

// MethodLink links to a method or constructor within its class page. desc is
// the JVM method descriptor and varargs marks the last array parameter as
// variable arity.
func (l Link) MethodLink(module, class, method, desc string, varargs bool) (string, error) {
	params, err := l.rules.Params.FromDescriptor(desc, varargs)
	if err != nil {
		return "", err
	}
	return l.memberLink(module, class, method, params), nil
}

// MethodLinkFromTypes is MethodLink for an already resolved parameter list.
func (l Link) MethodLinkFromTypes(module, class, method string, params []Param, varargs bool) string {
	return l.memberLink(module, class, method, l.rules.Params.FromTypes(params, varargs))
}

// FieldLink links to a field within its class page.
func (l Link) FieldLink(module, class, field string) string {
	return l.ClassLink(module, class) + "#" + field
}

func (l Link) memberLink(module, class, method, params string) string {
	name := method
	if method == ConstructorName {
		name = l.rules.Constructor(class)
	}
	return l.ClassLink(module, class) + "#" + name + params
}
