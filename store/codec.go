package store

import (
	"encoding/json"
	"fmt"
)

// CurrentSchemaVersion is stamped on every saved record.
const CurrentSchemaVersion = 1

// EncodeRun serializes a record, stamping the current schema version.
func EncodeRun(run RunRecord) ([]byte, error) {
	run.SchemaVersion = CurrentSchemaVersion
	return json.Marshal(run)
}

// DecodeRun parses a payload written by EncodeRun.
func DecodeRun(data []byte) (RunRecord, error) {
	var run RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return RunRecord{}, err
	}
	if run.SchemaVersion != CurrentSchemaVersion {
		return RunRecord{}, fmt.Errorf("schema %d, want %d: %w", run.SchemaVersion, CurrentSchemaVersion, ErrVersionMismatch)
	}

	return run, nil
}
