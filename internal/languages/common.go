package languages

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

var javaLangTypes = map[string]bool{
	"Object": true, "String": true, "Class": true, "System": true,
	"Throwable": true, "Exception": true, "RuntimeException": true, "Error": true,
	"Integer": true, "Long": true, "Short": true, "Byte": true,
	"Float": true, "Double": true, "Character": true, "Boolean": true,
	"Number": true, "Comparable": true, "CharSequence": true,
	"Iterable": true, "Cloneable": true, "Runnable": true, "AutoCloseable": true,
	"Thread": true, "ThreadLocal": true, "StringBuilder": true, "StringBuffer": true,
	"Math": true, "Enum": true, "Record": true, "Void": true, "ClassLoader": true,
	"Appendable": true, "Readable": true, "Process": true, "ProcessBuilder": true,
	"IllegalArgumentException": true, "IllegalStateException": true,
	"NullPointerException": true, "IndexOutOfBoundsException": true,
	"UnsupportedOperationException": true, "InterruptedException": true,
	"CloneNotSupportedException": true, "ReflectiveOperationException": true,
	"Override": true, "Deprecated": true, "SuppressWarnings": true, "FunctionalInterface": true,
}

func isPrimitive(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double", "void":
		return true
	}
	return false
}

func isTypeDeclaration(nodeType string) bool {
	switch nodeType {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return true
	}
	return false
}

// bodyMembers lists the declarations inside a type body. Enum constants come
// first, followed by the enum body declarations.
func bodyMembers(node *sitter.Node) []*sitter.Node {
	body := node.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	members := make([]*sitter.Node, 0, int(body.NamedChildCount()))
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "enum_body_declarations" {
			for j := 0; j < int(child.NamedChildCount()); j++ {
				members = append(members, child.NamedChild(j))
			}
			continue
		}
		members = append(members, child)
	}
	return members
}

func childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func lastNamedOfType(node *sitter.Node, nodeTypes ...string) *sitter.Node {
	var found *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		for _, t := range nodeTypes {
			if child.Type() == t {
				found = child
			}
		}
	}
	return found
}

// firstTypeChild returns the type of a spread parameter, which has no type field.
func firstTypeChild(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "modifiers", "variable_declarator":
			continue
		}
		return child
	}
	return nil
}

func line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

func splitQualifiedName(raw string) (qualifier, name string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	if idx := strings.LastIndex(raw, "."); idx != -1 {
		qualifier = strings.TrimSpace(raw[:idx])
		name = strings.TrimSpace(raw[idx+1:])
		return qualifier, name
	}
	return "", raw
}

func internalPackage(dotted string) string {
	return strings.ReplaceAll(dotted, ".", "/")
}

// compact drops whitespace, which Java allows between name segments.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func countDims(s string) int {
	return strings.Count(s, "[")
}

// eraseGenerics removes type arguments, so "Outer<K>.Inner<V>" becomes "Outer.Inner".
func eraseGenerics(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0 && !isSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
