// Package javadoclink creates deep links into javadoc generated API
// documentation.
//
// The layout of javadoc output changed several times between JDK releases, so
// links are built for the JDK major version that generated the tree:
//
//	link, ok := javadoclink.ForVersion("17")
//	if !ok {
//		// unknown version
//	}
//	link = link.WithBaseURL("https://docs.oracle.com/en/java/javase/17/docs/api/")
//	url, err := link.MethodLink("java.base", "java/lang/String", "format",
//		"(Ljava/lang/String;[Ljava/lang/Object;)Ljava/lang/String;", true)
//
// Classes and packages are given in JVM internal notation ("java/util/Map$Entry"),
// modules in dot notation ("java.base"). Constructors use the method name
// ConstructorName.
package javadoclink
