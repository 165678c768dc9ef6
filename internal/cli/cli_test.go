package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skelly-dev/javadoclink/internal/errors"
)

func TestClassLinkUsesDefaultVersion(t *testing.T) {
	root := t.TempDir()
	out, err := runCLI(t, root, "-o", "text", "class", "java.base", "java.util.Map$Entry")
	if err != nil {
		t.Fatalf("class failed: %v", err)
	}
	if out != "java.base/java/util/Map.Entry.html\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLinkCommandsPerVersion(t *testing.T) {
	root := t.TempDir()
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-V", "8", "method", "java.base", "java.util.Arrays", "sort", "([III)V"},
			"java/util/Arrays.html#sort-int:A-int-int-"},
		{[]string{"-V", "11", "--base-url", "https://example.com/api", "constructor", "java.base", "java.lang.String", "([C)V"},
			"https://example.com/api/java.base/java/lang/String.html#%3Cinit%3E(char%5B%5D)"},
		{[]string{"-V", "1.2", "constructor", "java.base", "java/util/jar/Attributes$Name", "(Ljava/lang/String;)V"},
			"java/util/jar/Attributes.Name.html#Attributes.Name(java.lang.String)"},
		{[]string{"-V", "17", "method", "--varargs", "java.base", "java.lang.String", "format", "(Ljava/lang/String;[Ljava/lang/Object;)Ljava/lang/String;"},
			"java.base/java/lang/String.html#format(java.lang.String,java.lang.Object...)"},
		{[]string{"-V", "9", "module", "java.sql"}, "java.sql-summary.html"},
		{[]string{"-V", "1.1", "package", "java.base", "java.lang"}, "Package-java.lang.html"},
		{[]string{"-V", "8", "--public", "field", "java.base", "java.lang.Integer", "MAX_VALUE"},
			"https://docs.oracle.com/javase/8/docs/api/java/lang/Integer.html#MAX_VALUE"},
	}

	for _, tc := range cases {
		args := append([]string{"-o", "text"}, tc.args...)
		out, err := runCLI(t, root, args...)
		if err != nil {
			t.Fatalf("%v failed: %v", tc.args, err)
		}
		if strings.TrimSpace(out) != tc.want {
			t.Fatalf("%v: expected %s, got %s", tc.args, tc.want, out)
		}
	}
}

func TestLinkCommandErrorsMapToExitCodes(t *testing.T) {
	root := t.TempDir()
	cases := []struct {
		args []string
		exit int
		msg  string
	}{
		{[]string{"-V", "8", "module", "java.base"}, 3, "Modules not supported before Java 9."},
		{[]string{"method", "java.base", "java.lang.String", "length", "I)V"}, 2, "Invalid method descriptor: I)V"},
		{[]string{"-V", "99", "class", "java.base", "java.lang.String"}, 2, ""},
		{[]string{"class", "java.base"}, 2, ""},
		{[]string{"-o", "xml", "class", "java.base", "java.lang.String"}, 2, ""},
	}

	for _, tc := range cases {
		_, err := runCLI(t, root, tc.args...)
		if err == nil {
			t.Fatalf("%v: expected error", tc.args)
		}
		if got := errors.ExitCode(err); got != tc.exit {
			t.Fatalf("%v: expected exit %d, got %d (%v)", tc.args, tc.exit, got, err)
		}
		if tc.msg != "" && err.Error() != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.args, tc.msg, err.Error())
		}
	}
}

func TestLinkJSONOutput(t *testing.T) {
	root := t.TempDir()
	out, err := runCLI(t, root, "-o", "json", "-V", "10", "field", "java.base", "java.lang.Integer", "MAX_VALUE")
	if err != nil {
		t.Fatalf("field failed: %v", err)
	}

	var result LinkResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if result.Kind != "field" || result.Version != "10" || result.URL != "java/lang/Integer.html#MAX_VALUE" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestVersionsJSON(t *testing.T) {
	root := t.TempDir()
	out, err := runCLI(t, root, "-o", "json", "versions")
	if err != nil {
		t.Fatalf("versions failed: %v", err)
	}

	var infos []VersionInfo
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(infos) != 18 {
		t.Fatalf("expected 18 versions, got %d", len(infos))
	}
	eight := infos[7]
	if eight.Version != "8" || eight.Lineage != "flat-anchor" || eight.Modules || eight.Params != "-int:A-java.lang.String-" {
		t.Fatalf("unexpected version 8 entry %+v", eight)
	}
	if !infos[8].Modules || infos[17].Version != "18" {
		t.Fatalf("expected 9 to support modules and 18 to be last, got %+v %+v", infos[8], infos[17])
	}
}

func TestConfigFileSetsVersionAndBaseURL(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, ".javadoclink.yaml"), `version: "9"
base_urls:
  "9": https://mirror.example/jdk9/api
`)

	out, err := runCLI(t, root, "-o", "text", "class", "java.base", "java.lang.String")
	if err != nil {
		t.Fatalf("class failed: %v", err)
	}
	if strings.TrimSpace(out) != "https://mirror.example/jdk9/api/java/lang/String.html" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCLI(t, root, "-o", "text", "-V", "11", "class", "java.base", "java.lang.String")
	if err != nil {
		t.Fatalf("class failed: %v", err)
	}
	if strings.TrimSpace(out) != "java.base/java/lang/String.html" {
		t.Fatalf("expected flag to override config version, got %q", out)
	}
}

func TestBatchReportsPerItemResults(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "requests.yaml"), `- kind: class
  module: java.base
  class: java.lang.Object
- kind: module
  module: java.base
  version: "8"
- kind: method
  class: java.lang.Math
  name: max
  params: [int, int]
`)

	out, err := runCLI(t, root, "-o", "jsonl", "batch", "requests.yaml")
	if err == nil {
		t.Fatalf("expected batch with a failing item to return an error")
	}
	if got := errors.ExitCode(err); got != 3 {
		t.Fatalf("expected exit 3, got %d (%v)", got, err)
	}

	records := decodeJSONL(t, out)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %s", len(records), out)
	}
	if records[0]["url"] != "java.base/java/lang/Object.html" {
		t.Fatalf("unexpected first record %v", records[0])
	}
	if records[1]["error"] != "Modules not supported before Java 9." {
		t.Fatalf("unexpected second record %v", records[1])
	}
	if records[2]["url"] != "java.base/java/lang/Math.html#max(int,int)" {
		t.Fatalf("unexpected third record %v", records[2])
	}
}

func TestBatchWritesOutFile(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "requests.json"), `[{"kind":"package","module":"java.sql","package":"java.sql"}]`)

	out, err := runCLI(t, root, "batch", "--out", filepath.Join("links", "out.jsonl"), "requests.json")
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout when --out is set, got %q", out)
	}

	data, err := os.ReadFile(filepath.Join(root, "links", "out.jsonl"))
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	records := decodeJSONL(t, string(data))
	if len(records) != 1 || records[0]["url"] != "java.sql/java/sql/package-summary.html" {
		t.Fatalf("unexpected records %v", records)
	}
}

func TestBatchMissingFile(t *testing.T) {
	root := t.TempDir()
	_, err := runCLI(t, root, "batch", "missing.yaml")
	if got := errors.ExitCode(err); got != 11 {
		t.Fatalf("expected exit 11, got %d (%v)", got, err)
	}
}

func TestScanLinksJavaSources(t *testing.T) {
	root := t.TempDir()
	writeGreeterTree(t, root)

	out, err := runCLI(t, root, "-o", "jsonl", "scan", "src")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	urls := make(map[string]string)
	for _, record := range decodeJSONL(t, out) {
		urls[record["id"].(string)] = record["url"].(string)
	}

	want := map[string]string{
		"com.acme": "com.acme/module-summary.html",
		"com.acme/com/acme/Greeter":                             "com.acme/com/acme/Greeter.html",
		"com.acme/com/acme/Greeter#DEFAULT":                     "com.acme/com/acme/Greeter.html#DEFAULT",
		"com.acme/com/acme/Greeter#<init>(java.lang.String)":    "com.acme/com/acme/Greeter.html#%3Cinit%3E(java.lang.String)",
		"com.acme/com/acme/Greeter#greet(java.lang.String...)": "com.acme/com/acme/Greeter.html#greet(java.lang.String...)",
	}
	if len(urls) != len(want) {
		t.Fatalf("expected %d records, got %d: %v", len(want), len(urls), urls)
	}
	for id, url := range want {
		if urls[id] != url {
			t.Fatalf("%s: expected %s, got %s", id, url, urls[id])
		}
	}
}

func TestScanIncludePrivateAndPreModuleVersions(t *testing.T) {
	root := t.TempDir()
	writeGreeterTree(t, root)

	out, err := runCLI(t, root, "-o", "jsonl", "-V", "8", "scan", "--include-private", "src")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	records := decodeJSONL(t, out)
	byID := make(map[string]map[string]any)
	for _, record := range records {
		byID[record["id"].(string)] = record
	}
	if byID["com.acme"]["error"] != "Modules not supported before Java 9." {
		t.Fatalf("expected module record to carry an error, got %v", byID["com.acme"])
	}
	secret, ok := byID["com.acme/com/acme/Greeter#secret()"]
	if !ok {
		t.Fatalf("expected private method with --include-private")
	}
	if secret["url"] != "com/acme/Greeter.html#secret--" {
		t.Fatalf("unexpected private method url %v", secret["url"])
	}
	if _, ok := byID["com.acme/com/acme/generated/Gen"]; ok {
		t.Fatalf("expected ignored directory to be skipped")
	}
}

func TestScanStateReusesUnchangedFiles(t *testing.T) {
	root := t.TempDir()
	writeGreeterTree(t, root)

	first, err := runCLI(t, root, "-o", "jsonl", "scan", "--state", "scan-state.json", "src")
	if err != nil {
		t.Fatalf("first scan failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "scan-state.json"))
	if err != nil {
		t.Fatalf("expected state file: %v", err)
	}
	var saved struct {
		Files map[string]json.RawMessage `json:"files"`
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("invalid state file: %v", err)
	}
	if _, ok := saved.Files["com/acme/Greeter.java"]; !ok || len(saved.Files) != 2 {
		t.Fatalf("unexpected state files %v", saved.Files)
	}

	second, err := runCLI(t, root, "-o", "jsonl", "scan", "--state", "scan-state.json", "src")
	if err != nil {
		t.Fatalf("second scan failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached scan to match:\n%s\n%s", first, second)
	}
}

func TestScanRejectsFiles(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "A.java"), "class A {}")

	_, err := runCLI(t, root, "scan", "A.java")
	if got := errors.ExitCode(err); got != 2 {
		t.Fatalf("expected exit 2, got %d (%v)", got, err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "javadoclink test\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLoadIgnoreRulesSkipsComments(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, IgnoreFile), "# generated code\ngenerated/\n\n!generated/keep/\n")

	rules, err := LoadIgnoreRules(root)
	if err != nil {
		t.Fatalf("LoadIgnoreRules failed: %v", err)
	}
	if len(rules) != 2 || rules[0] != "generated/" || rules[1] != "!generated/keep/" {
		t.Fatalf("unexpected rules %v", rules)
	}
}

func TestPrintScanSummary(t *testing.T) {
	var buf bytes.Buffer
	err := PrintScanSummary(&buf, ScanSummary{
		Version:    "17",
		Files:      3,
		Members:    10,
		Failed:     1,
		Issues:     2,
		DurationMS: 5,
		IssueFiles: []string{"b.java", "a.java", "b.java"},
	})
	if err != nil {
		t.Fatalf("PrintScanSummary failed: %v", err)
	}
	want := "scan: version=17 files=3 members=10 failed=1 issues=2 duration=5ms\nfiles with issues (2): a.java, b.java\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func writeGreeterTree(t *testing.T, root string) {
	t.Helper()
	mustWriteFile(t, filepath.Join(root, "src", "module-info.java"), "module com.acme {\n    exports com.acme;\n}\n")
	mustWriteFile(t, filepath.Join(root, "src", "com", "acme", "Greeter.java"), `package com.acme;

public class Greeter {
    public static final String DEFAULT = "hi";

    public Greeter(String name) {}

    public String greet(String... names) { return ""; }

    private void secret() {}
}
`)
	mustWriteFile(t, filepath.Join(root, "src", IgnoreFile), "generated/\n")
	mustWriteFile(t, filepath.Join(root, "src", "com", "acme", "generated", "Gen.java"), "package com.acme.generated;\npublic class Gen {}\n")
}

// runCLI executes the root command in dir with a clean environment.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"VERSION", "BASE_URL", "MODULE", "PUBLIC_DOCS", "LOG_LEVEL", "LOG_FORMAT", "OUTPUT"} {
		t.Setenv("JAVADOCLINK_"+key, "")
		if err := os.Unsetenv("JAVADOCLINK_" + key); err != nil {
			t.Fatalf("failed to unset env: %v", err)
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	var err error
	withWorkingDir(t, dir, func() {
		err = cmd.Execute()
	})
	return stdout.String(), err
}

func decodeJSONL(t *testing.T, data string) []map[string]any {
	t.Helper()
	var records []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("invalid jsonl line %q: %v", line, err)
		}
		records = append(records, record)
	}
	return records
}

func withWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()

	originalWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWD)
	}()

	fn()
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
