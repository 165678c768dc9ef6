package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skelly-dev/javadoclink/internal/parser"
	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

func TestResolveDispatchesByKind(t *testing.T) {
	r := Resolver{Link: javadoclink.MustForVersion("11").WithBaseURL("https://docs/api"), Module: "java.base"}

	cases := []struct {
		member parser.Member
		want   string
	}{
		{parser.Member{Kind: parser.MemberModule, Module: "java.sql"}, "https://docs/api/java.sql/module-summary.html"},
		{parser.Member{Kind: parser.MemberPackage, Package: "java/util"}, "https://docs/api/java.base/java/util/package-summary.html"},
		{parser.Member{Kind: parser.MemberClass, Class: "java/util/Map$Entry"}, "https://docs/api/java.base/java/util/Map.Entry.html"},
		{parser.Member{Kind: parser.MemberField, Class: "java/lang/Integer", Name: "MAX_VALUE"}, "https://docs/api/java.base/java/lang/Integer.html#MAX_VALUE"},
		{parser.Member{Kind: parser.MemberMethod, Class: "java/lang/String", Name: "format",
			Params: []javadoclink.Param{{Name: "java.lang.String"}, {Name: "java.lang.Object", Dims: 1}}, Varargs: true},
			"https://docs/api/java.base/java/lang/String.html#format(java.lang.String,java.lang.Object...)"},
		{parser.Member{Kind: parser.MemberConstructor, Class: "java/lang/String", Name: "<init>",
			Params: []javadoclink.Param{{Name: "char", Dims: 1}}},
			"https://docs/api/java.base/java/lang/String.html#%3Cinit%3E(char%5B%5D)"},
	}

	for _, tc := range cases {
		got, err := r.Resolve(tc.member)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "kind %s", tc.member.Kind)
	}
}

func TestResolveMatchesDescriptorLinks(t *testing.T) {
	m := parser.Member{Kind: parser.MemberMethod, Module: "java.base", Class: "java/util/Arrays", Name: "sort",
		Params: []javadoclink.Param{{Name: "int", Dims: 1}, {Name: "int"}, {Name: "int"}}}

	for _, version := range javadoclink.SupportedVersions() {
		link := javadoclink.MustForVersion(version)
		want, err := link.MethodLink("java.base", "java/util/Arrays", "sort", "([III)V", false)
		require.NoError(t, err)

		got, err := Resolver{Link: link}.Resolve(m)
		require.NoError(t, err)
		assert.Equal(t, want, got, "version %s", version)
	}
}

func TestResolveAllRecordsFailures(t *testing.T) {
	r := Resolver{Link: javadoclink.MustForVersion("8")}
	members := []parser.Member{
		{Kind: parser.MemberModule, Module: "java.base"},
		{Kind: parser.MemberClass, Class: "java/lang/Object"},
	}

	resolved := r.ResolveAll(members)
	require.Len(t, resolved, 2)
	assert.ErrorIs(t, resolved[0].Err, javadoclink.ErrUnsupportedOperation)
	assert.Empty(t, resolved[0].URL)
	assert.NoError(t, resolved[1].Err)
	assert.Equal(t, "java/lang/Object.html", resolved[1].URL)
}

func TestResolveUnknownKind(t *testing.T) {
	_, err := Resolver{Link: javadoclink.MustForVersion("17")}.Resolve(parser.Member{Kind: parser.MemberKind(42)})
	assert.Error(t, err)
}
