package parser

import "github.com/skelly-dev/javadoclink/pkg/javadoclink"

var idParams = javadoclink.ParameterStyle{Begin: "(", Separator: ",", End: ")", ArraySuffix: "[]"}

// StableMemberID returns a deterministic ID for a member.
// Format: [module/]class#name(params), [module/]package or [module/]class.
func StableMemberID(m Member) string {
	prefix := ""
	if m.Module != "" {
		prefix = m.Module + "/"
	}

	switch m.Kind {
	case MemberModule:
		return m.Module
	case MemberPackage:
		return prefix + m.Package
	case MemberClass:
		return prefix + m.Class
	case MemberField:
		return prefix + m.Class + "#" + m.Name
	default:
		return prefix + m.Class + "#" + m.Name + idParams.Join(m.Params, m.Varargs)
	}
}
