package output

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// ErrUnknownFormat is returned when no formatter matches a requested name
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(est *domain.Estimate) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Estimate) ([]byte, error)
}

func (ff FormatterFunc) Format(est *domain.Estimate) ([]byte, error) { return ff.F(est) }
func (ff FormatterFunc) Name() string                                { return ff.ID }

// builtInFormatters stores available formatters
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
	FormatterFunc{ID: "summary", F: func(est *domain.Estimate) ([]byte, error) {
		return []byte(Summary(est) + "\n"), nil
	}},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// LookupFormatter is GetFormatterByName with an error listing the valid names
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, name, strings.Join(AvailableFormatterNames(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"":            "console",
	"text":        "console",
	"table":       "console",
	"verbose":     "console",
	"json-pretty": "json",
	"html-report": "html",
	"clipboard":   "summary",
	"copy":        "summary",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
