package compare

import (
	"fmt"

	"github.com/rgehrsitz/rrgo/internal/output"
)

// JSONFormatter writes a comparison set in the same encoding as the estimate reports
type JSONFormatter struct {
	Pretty bool
}

// Format returns the comparison set as JSON text
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	data, err := output.EncodeJSON(compSet, jf.Pretty)
	if err != nil {
		return "", fmt.Errorf("failed to encode comparison: %w", err)
	}
	return string(data), nil
}
