package languages

import "github.com/skelly-dev/javadoclink/internal/parser"

// Options configures the parsers in the default registry.
type Options struct {
	IncludePrivate bool
}

// NewDefaultRegistry creates a registry with all supported language parsers
func NewDefaultRegistry(opts Options) *parser.Registry {
	r := parser.NewRegistry()

	javaParser := NewJavaParser()
	javaParser.IncludePrivate = opts.IncludePrivate
	r.Register(javaParser)

	return r
}
