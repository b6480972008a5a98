// Package metadata pulls the structured reference block out of a composed
// answer. The model is instructed to end answers with a JSON object like
// {"id_contrato": [12, 15, 18]} when the answer cites specific rows.
package metadata

import (
	"encoding/json"
	"regexp"
	"strings"
)

var trailingJSONPattern = regexp.MustCompile(`(\{.*\})\s*$`)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the answer text with the trailing JSON removed, plus the
// entity kind key and id list it carried. A missing or malformed block is
// not an error: the text comes back unchanged with empty kind and ids.
func (e *Extractor) Extract(text string) (string, string, []int64) {
	match := trailingJSONPattern.FindStringSubmatchIndex(text)
	if match == nil {
		return text, "", nil
	}

	jsonStr := text[match[2]:match[3]]
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return text, "", nil
	}

	for key, value := range data {
		if !strings.HasPrefix(key, "id_") {
			continue
		}
		rawList, ok := value.([]interface{})
		if !ok {
			continue
		}
		ids := make([]int64, 0, len(rawList))
		for _, v := range rawList {
			if n, ok := v.(float64); ok {
				ids = append(ids, int64(n))
			}
		}
		clean := strings.TrimSpace(text[:match[2]])
		return clean, key, ids
	}

	return text, "", nil
}
