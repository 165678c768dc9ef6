package languages

import (
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/skelly-dev/javadoclink/internal/parser"
	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

const packageInfoFile = "package-info.java"

// JavaParser extracts linkable members from Java sources
type JavaParser struct {
	parser *sitter.Parser

	// IncludePrivate also emits private members and private nested types.
	IncludePrivate bool
}

// NewJavaParser creates a new Java parser
func NewJavaParser() *JavaParser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &JavaParser{parser: p}
}

func (j *JavaParser) Language() string {
	return "java"
}

func (j *JavaParser) Extensions() []string {
	return []string{".java"}
}

func (j *JavaParser) Parse(ctx context.Context, filename string, content []byte) (*parser.FileMembers, error) {
	tree, err := j.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	f := &javaFile{
		content:        content,
		imports:        make(map[string]string),
		declared:       make(map[string]bool),
		includePrivate: j.IncludePrivate,
		result: &parser.FileMembers{
			Path:     filename,
			Language: "java",
			Members:  make([]parser.Member, 0),
		},
	}

	f.readHeader(root)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		f.collectTypes(root.NamedChild(i), "")
	}

	if filepath.Base(filename) == packageInfoFile && f.pkg != "" {
		f.add(parser.Member{
			Kind:    parser.MemberPackage,
			Package: internalPackage(f.pkg),
			Line:    f.pkgLine,
		})
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "module_declaration" {
			f.extractModule(child)
			continue
		}
		f.extractType(child, nil)
	}

	return f.result, nil
}

// javaFile carries the per-file state needed to resolve type names.
type javaFile struct {
	content        []byte
	pkg            string            // dotted package name
	pkgLine        int               // line of the package declaration
	imports        map[string]string // simple name -> qualified name
	declared       map[string]bool   // package-relative dotted names of types in this file
	includePrivate bool
	result         *parser.FileMembers
}

// typeScope is the chain of enclosing type declarations.
type typeScope struct {
	parent   *typeScope
	name     string            // package-relative dotted name, e.g. Outer.Inner
	typeVars map[string]javadoclink.Param
}

func (f *javaFile) text(node *sitter.Node) string {
	return node.Content(f.content)
}

func (f *javaFile) add(m parser.Member) {
	f.result.Members = append(f.result.Members, m)
}

func (f *javaFile) readHeader(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			if name := lastNamedOfType(child, "scoped_identifier", "identifier"); name != nil {
				f.pkg = compact(f.text(name))
				f.pkgLine = line(child)
				f.result.Package = internalPackage(f.pkg)
			}
		case "import_declaration":
			f.readImport(child)
		}
	}
}

// readImport records single-type imports; static and on-demand imports cannot
// name a parameter type without further lookup.
func (f *javaFile) readImport(node *sitter.Node) {
	for i := 0; i < int(node.ChildCount()); i++ {
		switch node.Child(i).Type() {
		case "static", "asterisk":
			return
		}
	}
	name := lastNamedOfType(node, "scoped_identifier", "identifier")
	if name == nil {
		return
	}
	qualified := compact(f.text(name))
	_, simple := splitQualifiedName(qualified)
	if simple != "" {
		f.imports[simple] = qualified
	}
}

func (f *javaFile) collectTypes(node *sitter.Node, outer string) {
	if !isTypeDeclaration(node.Type()) {
		return
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := f.text(nameNode)
	if outer != "" {
		name = outer + "." + name
	}
	f.declared[name] = true

	for _, member := range bodyMembers(node) {
		f.collectTypes(member, name)
	}
}

func (f *javaFile) extractModule(node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := compact(f.text(nameNode))
	f.result.Module = name
	f.add(parser.Member{
		Kind:   parser.MemberModule,
		Module: name,
		Line:   line(node),
	})
}

func (f *javaFile) extractType(node *sitter.Node, outer *typeScope) {
	if !isTypeDeclaration(node.Type()) {
		return
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	if !f.visible(node) {
		return
	}

	scope := &typeScope{parent: outer, name: f.text(nameNode)}
	if outer != nil {
		scope.name = outer.name + "." + scope.name
	}
	scope.typeVars = f.typeParameters(node, scope)
	class := f.internalClass(scope.name)

	f.add(parser.Member{
		Kind:    parser.MemberClass,
		Package: f.result.Package,
		Class:   class,
		Line:    line(node),
	})

	for _, member := range bodyMembers(node) {
		switch member.Type() {
		case "method_declaration":
			f.extractMethod(member, scope, class, parser.MemberMethod)
		case "constructor_declaration":
			f.extractMethod(member, scope, class, parser.MemberConstructor)
		case "annotation_type_element_declaration":
			f.extractMethod(member, scope, class, parser.MemberMethod)
		case "field_declaration", "constant_declaration":
			f.extractFields(member, class)
		case "enum_constant":
			f.extractEnumConstant(member, class)
		default:
			f.extractType(member, scope)
		}
	}
}

func (f *javaFile) extractMethod(node *sitter.Node, outer *typeScope, class string, kind parser.MemberKind) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil || !f.visible(node) {
		return
	}

	scope := &typeScope{parent: outer, name: outer.name}
	scope.typeVars = f.typeParameters(node, scope)

	m := parser.Member{
		Kind:    kind,
		Package: f.result.Package,
		Class:   class,
		Name:    f.text(nameNode),
		Line:    line(node),
	}
	if kind == parser.MemberConstructor {
		m.Name = javadoclink.ConstructorName
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			child := params.NamedChild(i)
			switch child.Type() {
			case "formal_parameter":
				p := f.param(child.ChildByFieldName("type"), scope)
				if dims := child.ChildByFieldName("dimensions"); dims != nil {
					p.Dims += countDims(f.text(dims))
				}
				m.Params = append(m.Params, p)
			case "spread_parameter":
				p := f.param(firstTypeChild(child), scope)
				p.Dims++
				m.Params = append(m.Params, p)
				m.Varargs = true
			}
		}
	}

	f.add(m)
}

func (f *javaFile) extractFields(node *sitter.Node, class string) {
	if !f.visible(node) {
		return
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		f.add(parser.Member{
			Kind:    parser.MemberField,
			Package: f.result.Package,
			Class:   class,
			Name:    f.text(nameNode),
			Line:    line(child),
		})
	}
}

func (f *javaFile) extractEnumConstant(node *sitter.Node, class string) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	f.add(parser.Member{
		Kind:    parser.MemberField,
		Package: f.result.Package,
		Class:   class,
		Name:    f.text(nameNode),
		Line:    line(node),
	})
}

// typeParameters maps declared type variables to their erasure: the leftmost
// bound, or java.lang.Object.
func (f *javaFile) typeParameters(node *sitter.Node, scope *typeScope) map[string]javadoclink.Param {
	list := childOfType(node, "type_parameters")
	if list == nil {
		return nil
	}
	vars := make(map[string]javadoclink.Param)
	scope.typeVars = vars
	for i := 0; i < int(list.NamedChildCount()); i++ {
		tp := list.NamedChild(i)
		if tp.Type() != "type_parameter" {
			continue
		}
		nameNode := childOfType(tp, "type_identifier")
		if nameNode == nil {
			continue
		}
		erased := javadoclink.Param{Name: "java.lang.Object"}
		if bound := childOfType(tp, "type_bound"); bound != nil && bound.NamedChildCount() > 0 {
			erased = f.param(bound.NamedChild(0), scope)
		}
		vars[f.text(nameNode)] = erased
	}
	return vars
}

func (f *javaFile) param(node *sitter.Node, scope *typeScope) javadoclink.Param {
	if node == nil {
		return javadoclink.Param{Name: "java.lang.Object"}
	}
	switch node.Type() {
	case "array_type":
		p := f.param(node.ChildByFieldName("element"), scope)
		if dims := node.ChildByFieldName("dimensions"); dims != nil {
			p.Dims += countDims(f.text(dims))
		}
		return p
	case "generic_type":
		if node.NamedChildCount() > 0 {
			return f.param(node.NamedChild(0), scope)
		}
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		return javadoclink.Param{Name: f.text(node)}
	case "annotated_type":
		if n := node.NamedChildCount(); n > 0 {
			return f.param(node.NamedChild(int(n)-1), scope)
		}
	}
	return f.resolve(eraseGenerics(f.text(node)), scope)
}

// resolve qualifies a source type name. Lookup order: type variables,
// types declared in this file, single-type imports, java.lang, same package.
func (f *javaFile) resolve(name string, scope *typeScope) javadoclink.Param {
	if isPrimitive(name) {
		return javadoclink.Param{Name: name}
	}

	head, rest, qualified := strings.Cut(name, ".")
	if !qualified {
		for s := scope; s != nil; s = s.parent {
			if erased, ok := s.typeVars[name]; ok {
				return erased
			}
		}
	}
	if head == "" || !isUpper(head[0]) {
		return javadoclink.Param{Name: name}
	}

	resolved := f.resolveSimple(head, scope)
	if qualified {
		resolved += "." + rest
	}
	return javadoclink.Param{Name: resolved}
}

func (f *javaFile) resolveSimple(name string, scope *typeScope) string {
	for s := scope; s != nil; s = s.parent {
		if candidate := s.name + "." + name; f.declared[candidate] {
			return f.qualify(candidate)
		}
	}
	if f.declared[name] {
		return f.qualify(name)
	}
	if imported, ok := f.imports[name]; ok {
		return imported
	}
	if javaLangTypes[name] {
		return "java.lang." + name
	}
	return f.qualify(name)
}

func (f *javaFile) qualify(relative string) string {
	if f.pkg == "" {
		return relative
	}
	return f.pkg + "." + relative
}

func (f *javaFile) internalClass(relative string) string {
	class := strings.ReplaceAll(relative, ".", "$")
	if f.result.Package == "" {
		return class
	}
	return f.result.Package + "/" + class
}

func (f *javaFile) visible(node *sitter.Node) bool {
	if f.includePrivate {
		return true
	}
	modifiers := childOfType(node, "modifiers")
	if modifiers == nil {
		return true
	}
	for i := 0; i < int(modifiers.ChildCount()); i++ {
		if modifiers.Child(i).Type() == "private" {
			return false
		}
	}
	return true
}
