package output

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/rrgo/internal/domain"
)

// JSONFormatter serializes the estimate as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(est *domain.Estimate) ([]byte, error) {
	return EncodeJSON(est, true)
}

// EncodeJSON is the JSON encoding shared by every report, indented by two spaces when pretty
func EncodeJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
