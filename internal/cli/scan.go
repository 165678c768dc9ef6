package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/javadoclink/internal/errors"
	"github.com/skelly-dev/javadoclink/internal/languages"
	"github.com/skelly-dev/javadoclink/internal/logging"
	"github.com/skelly-dev/javadoclink/internal/output"
	"github.com/skelly-dev/javadoclink/internal/resolve"
	"github.com/skelly-dev/javadoclink/internal/state"
)

// ScanRecord is one linked member found by scan.
type ScanRecord struct {
	ID    string `json:"id" yaml:"id"`
	Kind  string `json:"kind" yaml:"kind"`
	File  string `json:"file" yaml:"file"`
	Line  int    `json:"line" yaml:"line"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type ScanRecords []ScanRecord

func (r ScanRecords) TextLines() []string {
	lines := make([]string, 0, len(r))
	for _, record := range r {
		value := record.URL
		if record.Error != "" {
			value = "error: " + record.Error
		}
		lines = append(lines, record.ID+"\t"+value)
	}
	return lines
}

func (r ScanRecords) TableData() output.Data {
	data := output.Data{Headers: []string{"kind", "id", "location", "url"}}
	for _, record := range r {
		value := record.URL
		if record.Error != "" {
			value = "error: " + record.Error
		}
		location := record.File + ":" + strconv.Itoa(record.Line)
		data.Rows = append(data.Rows, []string{record.Kind, record.ID, location, value})
	}
	return data
}

func RunScan(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a := appFrom(cmd)
	logger := logging.FromContext(cmd.Context())

	rootPath := "."
	if len(args) > 0 {
		rootPath = args[0]
	}
	rootPath, err := filepath.Abs(rootPath)
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "failed to resolve scan path")
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "cannot scan "+rootPath)
	}
	if !info.IsDir() {
		return errors.New(errors.CategoryValidation, rootPath+" is not a directory")
	}

	includePrivate, err := OptionalBoolFlag(cmd, "include-private")
	if err != nil {
		return err
	}
	printSummary, err := OptionalBoolFlag(cmd, "summary")
	if err != nil {
		return err
	}
	out, err := OptionalStringFlag(cmd, "out")
	if err != nil {
		return err
	}
	statePath, err := OptionalStringFlag(cmd, "state")
	if err != nil {
		return err
	}

	link, err := a.evaluator().Link("")
	if err != nil {
		return err
	}

	ignoreRules, err := LoadIgnoreRules(rootPath)
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "cannot load ignore rules")
	}

	registry := languages.NewDefaultRegistry(languages.Options{IncludePrivate: includePrivate})
	var cache *state.State
	if statePath != "" {
		cache, err = state.Load(statePath, "include_private="+strconv.FormatBool(includePrivate))
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, "cannot load scan state")
		}
		registry.SetCache(cache)
	}

	result, err := registry.ParseDirectory(cmd.Context(), rootPath, ignoreRules)
	if err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "scan failed")
	}
	if cache != nil {
		hits, misses := cache.Stats()
		changed, err := cache.Save(statePath)
		if err != nil {
			return errors.Wrap(err, errors.CategoryFileSystem, "cannot save scan state")
		}
		logger.Debug().Int("reused", hits).Int("parsed", misses).Bool("changed", changed).Msg("scan state updated")
	}
	for _, issue := range result.Issues {
		logger.Warn().Str("file", issue.File).Str("severity", issue.Severity).Msg(issue.Message)
	}

	resolver := resolve.Resolver{Link: link, Module: a.cfg.Module}
	resolved := resolver.ResolveAll(result.Members())

	records := make(ScanRecords, 0, len(resolved))
	failed := 0
	for _, r := range resolved {
		record := ScanRecord{
			ID:   r.Member.ID,
			Kind: r.Member.Kind.String(),
			File: r.Member.File,
			Line: r.Member.Line,
			URL:  r.URL,
		}
		if r.Err != nil {
			record.Error = r.Err.Error()
			failed++
		}
		records = append(records, record)
	}

	if err := a.writeTo(cmd, out, records); err != nil {
		return err
	}

	summary := ScanSummary{
		RootPath:   rootPath,
		Version:    a.cfg.Version,
		Files:      len(result.Files),
		Members:    len(records),
		Failed:     failed,
		Issues:     len(result.Issues),
		DurationMS: time.Since(start).Milliseconds(),
	}
	for _, issue := range result.Issues {
		summary.IssueFiles = append(summary.IssueFiles, issue.File)
	}
	logger.Debug().
		Int("files", summary.Files).
		Int("members", summary.Members).
		Int("failed", summary.Failed).
		Int64("duration_ms", summary.DurationMS).
		Msg("scan complete")

	if printSummary {
		return PrintScanSummary(cmd.ErrOrStderr(), summary)
	}
	return nil
}
