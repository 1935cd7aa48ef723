package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloudtracker/internal/common"
)

// Service owns the JSON serialize/deserialize boundary around the
// repository: values go in as raw JSON, are stored in compact text form,
// and come back out byte-for-byte equivalent.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Put stores value at (ownerID, key), replacing any previous document.
// The replacement is full, never a merge. Empty keys and non-JSON values
// fail with common.ErrorValidation.
func (s *Service) Put(ctx context.Context, ownerID string, key string, value json.RawMessage) error {

	if key == "" {
		return common.ErrorValidation
	}
	if !json.Valid(value) {
		return common.ErrorValidation
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return common.ErrorValidation
	}

	doc := &Document{
		UserID: ownerID,
		Key:    key,
		Value:  buf.String(),
	}

	if err := s.repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("error storing document: %w", err)
	}

	return nil
}

// Get returns the value last written at (ownerID, key).
// A stored value that no longer parses as JSON fails with
// common.ErrorValidation; that signals corruption, not caller error.
func (s *Service) Get(ctx context.Context, ownerID string, key string) (json.RawMessage, error) {

	doc, err := s.repo.Get(ctx, ownerID, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching document: %w", err)
	}

	raw := json.RawMessage(doc.Value)
	if !json.Valid(raw) {
		return nil, common.ErrorValidation
	}

	return raw, nil
}

// List returns key metadata for ownerID, most recently updated first.
func (s *Service) List(ctx context.Context, ownerID string) ([]KeyInfo, error) {

	keys, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}

	return keys, nil
}

// Delete removes the document at (ownerID, key); absent keys fail with
// common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, ownerID string, key string) error {

	if err := s.repo.Delete(ctx, ownerID, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting document: %w", err)
	}

	return nil
}
