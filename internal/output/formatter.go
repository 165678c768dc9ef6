// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skelly-dev/javadoclink/internal/fileutil"
)

// Format selects how results are printed.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formatter writes data to w.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// Data is a rendered table.
type Data struct {
	Headers []string
	Rows    [][]string
}

// Tabular values can be shown as a table.
type Tabular interface {
	TableData() Data
}

// Texter values control their plain text rendering.
type Texter interface {
	TextLines() []string
}

// NewFormatter returns the formatter for format; unknown formats print text.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatJSONL:
		return &JSONLFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}

// ParseFormat validates a user supplied format name. Empty means auto-detect.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatText, FormatTable, FormatJSON, FormatJSONL, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: text, table, json, jsonl, yaml)", s)
	}
}

// DetectFormat keeps an explicit format and otherwise prints text on
// terminals and JSON lines when piped.
func DetectFormat(explicit Format, out io.Writer) Format {
	if explicit != "" {
		return explicit
	}
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatText
	}
	return FormatJSONL
}

// JSONFormatter outputs one JSON document.
type JSONFormatter struct {
	Indent string
}

func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// JSONLFormatter outputs one JSON document per slice element.
type JSONLFormatter struct{}

func (f *JSONLFormatter) Format(w io.Writer, data any) error {
	value := reflect.ValueOf(data)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		data = []any{data}
		value = reflect.ValueOf(data)
	}
	records := make([]any, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		records = append(records, value.Index(i).Interface())
	}
	encoded, err := fileutil.EncodeJSONL(records)
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	encoded, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}

// TableFormatter renders Tabular values; anything else falls back to JSON.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, data any) error {
	tabular, ok := data.(Tabular)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
	table := tabular.TableData()

	tw := tablewriter.NewTable(w)
	if len(table.Headers) > 0 {
		title := cases.Title(language.English)
		headers := make([]any, len(table.Headers))
		for i, h := range table.Headers {
			headers[i] = title.String(h)
		}
		tw.Header(headers...)
	}
	for _, row := range table.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := tw.Append(cells...); err != nil {
			return err
		}
	}
	return tw.Render()
}

// TextFormatter prints plain lines.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, data any) error {
	var lines []string
	switch v := data.(type) {
	case Texter:
		lines = v.TextLines()
	case Tabular:
		for _, row := range v.TableData().Rows {
			lines = append(lines, strings.Join(row, "\t"))
		}
	case string:
		lines = []string{v}
	default:
		lines = []string{fmt.Sprint(v)}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
