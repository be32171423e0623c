package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book storage.
// List returns records in insertion order.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id string) (Book, error)
	ReplaceByID(ctx context.Context, id string, b Book) error
	RemoveByID(ctx context.Context, id string) error
}
