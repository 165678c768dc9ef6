package javadoclink

import (
	"strings"
)

// ConstructorName is the JVM internal method name of constructors.
const ConstructorName = "<init>"

// Rules describes the URL layout of one javadoc generation. Each field varies
// independently between versions; several versions share one Rules value.
type Rules struct {
	Lineage string
	Params  ParameterStyle

	// Module returns the module summary path, or an error when the layout has no
	// module pages.
	Module      func(module string) (string, error)
	Package     func(module, pkg string) string
	Class       func(module, class string) string
	Constructor func(owner string) string
}

var (
	parenParams = ParameterStyle{Begin: "(", Separator: ", ", End: ")", ArraySuffix: "%5B%5D"}
	dashParams  = ParameterStyle{Begin: "-", Separator: "-", End: "-", ArraySuffix: ":A"}
	tightParams = ParameterStyle{Begin: "(", Separator: ",", End: ")", ArraySuffix: "%5B%5D"}
)

var (
	earliestRules = &Rules{
		Lineage:     "earliest",
		Params:      parenParams,
		Module:      noModules,
		Package:     dottedPackagePage,
		Class:       dottedClassPage,
		Constructor: simpleDottedName,
	}

	earlyMidRules = &Rules{
		Lineage:     "early-mid",
		Params:      parenParams,
		Module:      noModules,
		Package:     packageSummary,
		Class:       classPage,
		Constructor: simpleDottedName,
	}

	flatAnchorRules = &Rules{
		Lineage:     "flat-anchor",
		Params:      dashParams,
		Module:      noModules,
		Package:     packageSummary,
		Class:       classPage,
		Constructor: simpleName,
	}

	flatAnchorModuleRules = &Rules{
		Lineage:     "flat-anchor-modules",
		Params:      dashParams,
		Module:      flatModuleSummary,
		Package:     packageSummary,
		Class:       classPage,
		Constructor: simpleName,
	}

	restoredParensRules = &Rules{
		Lineage:     "restored-parens",
		Params:      tightParams,
		Module:      flatModuleSummary,
		Package:     packageSummary,
		Class:       classPage,
		Constructor: initSentinel,
	}

	moduleQualifiedRules = &Rules{
		Lineage:     "module-qualified",
		Params:      tightParams,
		Module:      moduleSummary,
		Package:     modulePackageSummary,
		Class:       moduleClassPage,
		Constructor: initSentinel,
	}
)

func noModules(string) (string, error) {
	return "", errModulesUnsupported
}

func flatModuleSummary(module string) (string, error) {
	return module + "-summary.html", nil
}

func moduleSummary(module string) (string, error) {
	return module + "/module-summary.html", nil
}

func dottedPackagePage(_, pkg string) string {
	return "Package-" + strings.ReplaceAll(pkg, "/", ".") + ".html"
}

// packageSummary ignores the module: these trees have no module directories.
func packageSummary(_, pkg string) string {
	return pkg + "/package-summary.html"
}

func modulePackageSummary(module, pkg string) string {
	return module + "/" + pkg + "/package-summary.html"
}

func dottedClassPage(_, class string) string {
	return strings.ReplaceAll(class, "/", ".") + ".html"
}

// classPage keeps '/' as directory separators and only folds nested classes.
func classPage(_, class string) string {
	return strings.ReplaceAll(class, "$", ".") + ".html"
}

func moduleClassPage(module, class string) string {
	return module + "/" + classPage(module, class)
}

func simpleDottedName(owner string) string {
	if sep := strings.LastIndexByte(owner, '/'); sep >= 0 {
		owner = owner[sep+1:]
	}
	return strings.ReplaceAll(owner, "$", ".")
}

func simpleName(owner string) string {
	if sep := strings.LastIndexAny(owner, "/$"); sep >= 0 {
		return owner[sep+1:]
	}
	return owner
}

func initSentinel(string) string {
	return "%3Cinit%3E"
}
