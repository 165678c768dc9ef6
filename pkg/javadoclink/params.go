package javadoclink

import (
	"strings"
)

// Param is one formal parameter: a dotted type name plus its array dimensions.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Dims int    `json:"dims,omitempty" yaml:"dims,omitempty"`
}

// ParameterStyle holds the delimiters a javadoc version uses for parameter lists in anchors.
type ParameterStyle struct {
	Begin       string
	Separator   string
	End         string
	ArraySuffix string
}

var primitiveCodes = map[byte]string{
	'Z': "boolean",
	'C': "char",
	'B': "byte",
	'S': "short",
	'I': "int",
	'F': "float",
	'J': "long",
	'D': "double",
}

// FromDescriptor renders the parameters of a JVM method descriptor such as
// "(Ljava/lang/String;[I)V".
func (s ParameterStyle) FromDescriptor(desc string, varargs bool) (string, error) {
	params, err := ParseDescriptor(desc)
	if err != nil {
		return "", err
	}
	return s.Join(params, varargs), nil
}

// FromTypes renders an already resolved parameter list. Nested class names are
// expected in dotted form.
func (s ParameterStyle) FromTypes(params []Param, varargs bool) string {
	return s.Join(params, varargs)
}

// Join concatenates rendered parameters. Vararg notation only applies to the
// outermost dimension of the last parameter.
func (s ParameterStyle) Join(params []Param, varargs bool) string {
	var b strings.Builder
	b.WriteString(s.Begin)
	for i, p := range params {
		if i > 0 {
			b.WriteString(s.Separator)
		}
		b.WriteString(s.render(p, varargs && i == len(params)-1))
	}
	b.WriteString(s.End)
	return b.String()
}

func (s ParameterStyle) render(p Param, vararg bool) string {
	if p.Dims <= 0 {
		return p.Name
	}
	inner := s.render(Param{Name: p.Name, Dims: p.Dims - 1}, false)
	if vararg {
		return inner + "..."
	}
	return inner + s.ArraySuffix
}

// ParseDescriptor decodes the parameter section of a method descriptor. Only the
// text between '(' and the first ')' is inspected.
func ParseDescriptor(desc string) ([]Param, error) {
	open := strings.IndexByte(desc, '(')
	closing := strings.IndexByte(desc, ')')
	if open != 0 || closing < open {
		return nil, &DescriptorError{Descriptor: desc}
	}

	section := desc[open+1 : closing]
	params := make([]Param, 0)
	for pos := 0; pos < len(section); {
		param, next, ok := nextType(section, pos)
		if !ok {
			return nil, &DescriptorError{Descriptor: desc}
		}
		params = append(params, param)
		pos = next
	}
	return params, nil
}

func nextType(section string, pos int) (Param, int, bool) {
	if pos >= len(section) {
		return Param{}, pos, false
	}
	code := section[pos]
	if name, ok := primitiveCodes[code]; ok {
		return Param{Name: name}, pos + 1, true
	}

	switch code {
	case 'L':
		end := strings.IndexByte(section[pos:], ';')
		if end < 0 {
			return Param{}, pos, false
		}
		name := section[pos+1 : pos+end]
		return Param{Name: dottedName(name)}, pos + end + 1, true
	case '[':
		elem, next, ok := nextType(section, pos+1)
		if !ok {
			return Param{}, pos, false
		}
		elem.Dims++
		return elem, next, true
	default:
		return Param{}, pos, false
	}
}

// ParseTypeName turns source notation such as "java.lang.String[][]" or
// "Object..." into a Param. A trailing "..." counts as one dimension.
func ParseTypeName(name string) Param {
	name = strings.TrimSpace(name)
	dims := 0
	if strings.HasSuffix(name, "...") {
		dims++
		name = strings.TrimSpace(strings.TrimSuffix(name, "..."))
	}
	for strings.HasSuffix(name, "[]") {
		dims++
		name = strings.TrimSpace(strings.TrimSuffix(name, "[]"))
	}
	return Param{Name: strings.ReplaceAll(name, "$", "."), Dims: dims}
}

func dottedName(internal string) string {
	return strings.NewReplacer("/", ".", "$", ".").Replace(internal)
}
