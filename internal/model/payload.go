package model

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the persisted shape of the full store: the record list plus
// settings, written as one JSON value under a fixed slot and offered
// unchanged as the export/import file format.
type Snapshot struct {
	Clients        []Client `json:"clients"`
	ReceiptsGoal   int      `json:"receiptsGoal"`
	CheckedRows    []string `json:"checkedRows"`
	SearchTerm     string   `json:"searchTerm"`
	ActiveYear     int      `json:"activeYear"`
	AvailableYears []int    `json:"availableYears"`
}

// Payload is a validated import document. The clients array is mandatory;
// every other field is optional with a per-field type check, so a nil
// pointer or slice means "absent or ill-typed, keep the current value".
type Payload struct {
	ReceiptsGoal   *int
	SearchTerm     *string
	ActiveYear     *int
	Clients        []Client
	CheckedRows    []string
	AvailableYears []int
}

// ValidationError describes a payload that failed schema validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: field %q %s", e.Field, e.Reason)
}

// rawPayload defers per-field decoding so that one ill-typed optional field
// falls back instead of poisoning the whole document.
type rawPayload struct {
	Clients        json.RawMessage `json:"clients"`
	ReceiptsGoal   json.RawMessage `json:"receiptsGoal"`
	CheckedRows    json.RawMessage `json:"checkedRows"`
	SearchTerm     json.RawMessage `json:"searchTerm"`
	ActiveYear     json.RawMessage `json:"activeYear"`
	AvailableYears json.RawMessage `json:"availableYears"`
}

// ParsePayload validates JSON bytes into a Payload. The input must be an
// object carrying a clients array; malformed input returns an error and
// never a partially trusted value.
func ParsePayload(data []byte) (*Payload, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	if len(raw.Clients) == 0 || string(raw.Clients) == "null" {
		return nil, &ValidationError{Field: "clients", Reason: "missing"}
	}

	payload := &Payload{}
	if err := json.Unmarshal(raw.Clients, &payload.Clients); err != nil {
		return nil, &ValidationError{Field: "clients", Reason: "is not an array of records"}
	}

	// Optional fields: silently fall back on absence or a type mismatch.
	if raw.ReceiptsGoal != nil {
		var goal int
		if err := json.Unmarshal(raw.ReceiptsGoal, &goal); err == nil {
			payload.ReceiptsGoal = &goal
		}
	}
	if raw.SearchTerm != nil {
		var term string
		if err := json.Unmarshal(raw.SearchTerm, &term); err == nil {
			payload.SearchTerm = &term
		}
	}
	if raw.ActiveYear != nil {
		var year int
		if err := json.Unmarshal(raw.ActiveYear, &year); err == nil {
			payload.ActiveYear = &year
		}
	}
	if raw.CheckedRows != nil {
		var rows []string
		if err := json.Unmarshal(raw.CheckedRows, &rows); err == nil {
			payload.CheckedRows = rows
		}
	}
	if raw.AvailableYears != nil {
		var years []int
		if err := json.Unmarshal(raw.AvailableYears, &years); err == nil {
			payload.AvailableYears = years
		}
	}

	return payload, nil
}
