package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/skelly-dev/javadoclink/internal/fileutil"
)

type ScanSummary struct {
	RootPath   string   `json:"root_path"`
	Version    string   `json:"version"`
	Files      int      `json:"files"`
	Members    int      `json:"members"`
	Failed     int      `json:"failed"`
	Issues     int      `json:"issues"`
	DurationMS int64    `json:"duration_ms"`
	IssueFiles []string `json:"issue_files,omitempty"`
}

func PrintScanSummary(w io.Writer, summary ScanSummary) error {
	if _, err := fmt.Fprintf(w,
		"scan: version=%s files=%d members=%d failed=%d issues=%d duration=%dms\n",
		summary.Version,
		summary.Files,
		summary.Members,
		summary.Failed,
		summary.Issues,
		summary.DurationMS,
	); err != nil {
		return err
	}

	if files := fileutil.SortedUnique(summary.IssueFiles); len(files) > 0 {
		if _, err := fmt.Fprintf(w, "files with issues (%d): %s\n", len(files), SummarizePaths(files, 8)); err != nil {
			return err
		}
	}
	return nil
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}
