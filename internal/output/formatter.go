package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Formatter renders a report in one output format
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string                          { return f.ID }
func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{
	"console":  ConsoleFormatter{},
	"json":     JSONFormatter{Pretty: true},
	"csv":      CSVFormatter{},
	"markdown": MarkdownFormatter{},
	"html":     HTMLFormatter{},
}

var formatAliases = map[string]string{
	"text": "console",
	"txt":  "console",
	"md":   "markdown",
	"htm":  "html",
}

var formatExtensions = map[string]string{
	"console":  "txt",
	"json":     "json",
	"csv":      "csv",
	"markdown": "md",
	"html":     "html",
}

// GetFormatterByName returns the formatter for a name or alias, or nil
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[name]; ok {
		name = canonical
	}
	return formatters[name]
}

// AvailableFormatterNames lists canonical format names, sorted
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases, sorted
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// ExtensionFor returns the file extension for a formatter
func ExtensionFor(f Formatter) string {
	if ext, ok := formatExtensions[f.Name()]; ok {
		return ext
	}
	return "txt"
}

// ContentType returns the HTTP content type for a formatter
func ContentType(f Formatter) string {
	switch f.Name() {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// WriteFormatted renders report and writes it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	filename := ReportFilename(ext, time.Now())
	if err := WriteFormattedTo(f, report, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// ReportFilename is the default report file name for a time
func ReportFilename(ext string, t time.Time) string {
	return fmt.Sprintf("labour_rate_report_%s.%s", t.Format("20060102_150405"), ext)
}

// WriteFormattedTo renders report into path
func WriteFormattedTo(f Formatter, report *Report, path string) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
