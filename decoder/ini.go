package decoder

import (
	"gopkg.in/ini.v1"

	"github.com/MKhiriev/go-conf-keeper/tree"
)

// decodeINI parses INI content. Keys outside any section land at the top
// level of the mapping; every named section becomes one nested level keyed
// by its verbatim name. Values stay strings, as INI carries no type
// information.
func decodeINI(data []byte) (tree.Node, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	node := make(tree.Node)
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			for _, key := range section.Keys() {
				node[key.Name()] = key.Value()
			}
			continue
		}

		nested := make(tree.Node, len(section.Keys()))
		for _, key := range section.Keys() {
			nested[key.Name()] = key.Value()
		}
		node[section.Name()] = nested
	}

	return node, nil
}
