package documents

import (
	"context"
)

type Repository interface {
	Upsert(ctx context.Context, doc *Document) error
	Get(ctx context.Context, userID string, key string) (*Document, error)
	List(ctx context.Context, userID string) ([]KeyInfo, error)
	Delete(ctx context.Context, userID string, key string) error
}
