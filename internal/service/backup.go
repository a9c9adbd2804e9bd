package service

import (
	"context"
	"encoding/json"
	"fmt"

	"teknikservis/backend/internal/domain"
)

// ExportBackup returns the full state document, the same JSON the persister
// stores.
func (s *Service) ExportBackup() ([]byte, error) {
	return s.st.Export()
}

// ImportBackup replaces the whole state with a previously exported document.
// Validation is shallow: the payload must parse and carry at least one of
// the repairs, stockItems or expenses collections.
func (s *Service) ImportBackup(ctx context.Context, raw []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: backup is not valid JSON", ErrInvalidInput)
	}
	if probe["repairs"] == nil && probe["stockItems"] == nil && probe["expenses"] == nil {
		return fmt.Errorf("%w: backup has none of repairs, stockItems, expenses", ErrInvalidInput)
	}
	var next domain.AppState
	if err := json.Unmarshal(raw, &next); err != nil {
		return fmt.Errorf("%w: backup does not match the state shape", ErrInvalidInput)
	}
	s.st.Update(ctx, func(domain.AppState) domain.AppState {
		return next
	})
	return nil
}
