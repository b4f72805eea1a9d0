package decoder

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-conf-keeper/tree"
)

// decodeJSON strips full-line comments and parses the remainder as a JSON
// object.
func decodeJSON(data []byte) (tree.Node, error) {
	var raw map[string]any
	if err := json.Unmarshal(stripComments(data), &raw); err != nil {
		return nil, err
	}

	return tree.Normalize(raw)
}

// stripComments removes every line whose first non-whitespace character is
// '#', including a final comment line without a trailing newline. A '#'
// appearing mid-line is left untouched; remaining lines are preserved
// verbatim.
func stripComments(data []byte) []byte {
	lines := strings.Split(string(data), "\n")

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}

	return []byte(strings.Join(kept, "\n"))
}
