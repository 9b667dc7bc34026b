package cucumber

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ParseRunDocument parses a cucumber JSON run document and validates its shape.
// Only whitespace and a UTF-8 byte order mark may surround the JSON.
func ParseRunDocument(data []byte) (RunDocument, error) {
	data = trimDocument(data)
	if len(data) == 0 {
		return nil, errors.New("document is empty")
	}
	var doc RunDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document is null, expected a list of features")
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// validateDocument rejects records that lack the fields the report walks.
func validateDocument(doc RunDocument) error {
	for fi, feature := range doc {
		if feature.Elements == nil {
			return fmt.Errorf("feature %d (%s): missing elements", fi, featureLabel(feature))
		}
		for si, scenario := range feature.Elements {
			if scenario.Steps == nil {
				return fmt.Errorf("feature %d scenario %d (%s): missing steps", fi, si, scenario.Name)
			}
			for ti, step := range scenario.Steps {
				if step.Result == nil {
					return fmt.Errorf("feature %d scenario %d step %d (%s): missing result", fi, si, ti, step.Name)
				}
				if step.Result.Duration < 0 {
					return fmt.Errorf("feature %d scenario %d step %d (%s): negative duration", fi, si, ti, step.Name)
				}
			}
		}
	}
	return nil
}

func featureLabel(feature Feature) string {
	if feature.Name != "" {
		return feature.Name
	}
	return feature.URI
}

// utf8BOM may precede the document.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// trimDocument removes surrounding whitespace and a leading byte order mark.
// Anything else ahead of the JSON is left for the decoder to reject.
func trimDocument(data []byte) []byte {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, utf8BOM)
	return bytes.TrimSpace(data)
}
