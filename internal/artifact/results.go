package artifact

import (
	"encoding/json"
	"fmt"
	"os"
)

// Result is one generated-script record of the dataset document.
// Field names match the published dataset schema.
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Entity pairs an object name with a short generated description.
type Entity struct {
	Object      string `json:"object"`
	Description string `json:"description"`
}

// LoadResults reads an existing dataset document and returns its records
// as a name-to-output map for skip-already-generated lookups. A missing
// file is not an error; it yields an empty map.
func LoadResults(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read results from %s: %w", path, err)
	}
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse results in %s: %w", path, err)
	}
	out := make(map[string]string, len(results))
	for _, r := range results {
		out[r.Input] = r.Output
	}
	return out, nil
}

// SaveResults writes the ordered records as an indented JSON array,
// overwriting prior content.
func SaveResults(path string, results []Result) error {
	return saveJSON(path, results)
}

// LoadEntities reads an entities document. A missing file yields nil.
func LoadEntities(path string) ([]Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read entities from %s: %w", path, err)
	}
	var entities []Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entities in %s: %w", path, err)
	}
	return entities, nil
}

// SaveEntities writes the ordered entity records as an indented JSON array.
func SaveEntities(path string, entities []Entity) error {
	return saveJSON(path, entities)
}

func saveJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
