package config

// DefaultBaseURLs lists the public API documentation root of each JDK release.
var DefaultBaseURLs = map[string]string{
	"1.1": "https://javaalmanac.io/jdk/1.1/api/",
	"1.2": "https://javaalmanac.io/jdk/1.2/api/",
	"1.3": "https://javaalmanac.io/jdk/1.3/api/",
	"1.4": "https://javaalmanac.io/jdk/1.4/api/",
	"5":   "https://docs.oracle.com/javase/1.5.0/docs/api/",
	"6":   "https://docs.oracle.com/javase/6/docs/api/",
	"7":   "https://docs.oracle.com/javase/7/docs/api/",
	"8":   "https://docs.oracle.com/javase/8/docs/api/",
	"9":   "https://docs.oracle.com/javase/9/docs/api/",
	"10":  "https://docs.oracle.com/javase/10/docs/api/",
	"11":  "https://docs.oracle.com/en/java/javase/11/docs/api/",
	"12":  "https://docs.oracle.com/en/java/javase/12/docs/api/",
	"13":  "https://docs.oracle.com/en/java/javase/13/docs/api/",
	"14":  "https://docs.oracle.com/en/java/javase/14/docs/api/",
	"15":  "https://docs.oracle.com/en/java/javase/15/docs/api/",
	"16":  "https://docs.oracle.com/en/java/javase/16/docs/api/",
	"17":  "https://docs.oracle.com/en/java/javase/17/docs/api/",
	"18":  "https://docs.oracle.com/en/java/javase/18/docs/api/",
}
