package output

import (
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// extensions maps formatter names to file extensions for written reports
var extensions = map[string]string{
	"console": "txt",
	"summary": "txt",
	"json":    "json",
	"csv":     "csv",
	"html":    "html",
	"pdf":     "pdf",
}

// WriteFormatted runs a formatter and writes the output to filename.
// An empty filename writes to a timestamped file named after the formatter.
func WriteFormatted(f Formatter, est *domain.Estimate, filename string) (string, error) {
	data, err := f.Format(est)
	if err != nil {
		return "", fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	if filename == "" {
		filename = DefaultReportName(f, time.Now())
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// DefaultReportName returns redundancy_estimate_<timestamp>.<ext>
func DefaultReportName(f Formatter, now time.Time) string {
	ext, ok := extensions[f.Name()]
	if !ok {
		ext = "txt"
	}
	return fmt.Sprintf("redundancy_estimate_%s.%s", now.Format("20060102_150405"), ext)
}
