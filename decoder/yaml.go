package decoder

import (
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-conf-keeper/tree"
)

// decodeYAML parses a YAML document into the tree model. An empty or null
// document decodes to an empty mapping rather than failing, so placeholder
// default files do not break store construction.
func decodeYAML(data []byte) (tree.Node, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if raw == nil {
		return tree.Node{}, nil
	}

	return tree.Normalize(raw)
}
