package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/renewtrack/renewtrack/internal/common"
	"github.com/renewtrack/renewtrack/internal/model"
)

// Slot keys. All record data and settings live under stateSlot as one JSON
// blob; the sort preference is persisted independently.
const (
	stateSlot = "state"
	sortSlot  = "sortPreference"
)

// SaveState serializes the full store to the state slot.
func (s *SQLiteStorage) SaveState(ctx context.Context, snapshot model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	return s.writeSlot(ctx, stateSlot, data)
}

// LoadState reads the state slot. An absent slot yields (nil, nil) so the
// caller starts with an empty store. A corrupt slot is cleared so a bad
// write cannot fail every subsequent startup, and also yields (nil, nil).
func (s *SQLiteStorage) LoadState(ctx context.Context) (*model.Payload, error) {
	data, err := s.readSlot(ctx, stateSlot)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	payload, err := model.ParsePayload(data)
	if err != nil {
		common.LogWarn("Stored state is corrupt; clearing slot", common.Fields{"error": err})
		if clearErr := s.clearSlot(ctx, stateSlot); clearErr != nil {
			return nil, fmt.Errorf("failed to clear corrupt state slot: %w", clearErr)
		}
		return nil, nil
	}
	return payload, nil
}

// SaveSortPreference writes the sort preference to its own slot.
func (s *SQLiteStorage) SaveSortPreference(ctx context.Context, pref model.SortPreference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to serialize sort preference: %w", err)
	}
	return s.writeSlot(ctx, sortSlot, data)
}

// LoadSortPreference reads the sort preference slot; absent or corrupt
// data falls back to nil (caller keeps the default).
func (s *SQLiteStorage) LoadSortPreference(ctx context.Context) (*model.SortPreference, error) {
	data, err := s.readSlot(ctx, sortSlot)
	if err != nil || data == nil {
		return nil, err
	}

	var pref model.SortPreference
	if err := json.Unmarshal(data, &pref); err != nil {
		common.LogWarn("Stored sort preference is corrupt; clearing slot", common.Fields{"error": err})
		if clearErr := s.clearSlot(ctx, sortSlot); clearErr != nil {
			return nil, fmt.Errorf("failed to clear corrupt sort slot: %w", clearErr)
		}
		return nil, nil
	}
	if _, ok := model.ParseSortField(string(pref.Field)); !ok {
		return nil, nil
	}
	return &pref, nil
}

// MarshalExport pretty-prints the full store for user download.
func MarshalExport(snapshot model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// ParseImport validates an import document. Malformed input returns an
// error wrapping common.ErrInvalidPayload and the caller must not mutate
// any state.
func ParseImport(data []byte) (*model.Payload, error) {
	payload, err := model.ParsePayload(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return payload, nil
}

func (s *SQLiteStorage) writeSlot(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) readSlot(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLiteStorage) clearSlot(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to clear slot %q: %w", key, err)
	}
	return nil
}
