package habit

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadRecordsFile loads completion records from a JSON file containing
// either a bare array of records or an object with a "records" key.
func ReadRecordsFile(path string) ([]CompletionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []CompletionRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Records []CompletionRecord `json:"records"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return wrapped.Records, nil
}
