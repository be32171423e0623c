package book

import (
	"context"
	"sync"
)

// MemoryRepo keeps books in process memory, in insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	books []Book
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books = append(r.books, b)
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *MemoryRepo) FindByID(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.books[i], nil
	}
	return Book{}, ErrNotFound
}

// ReplaceByID overwrites the record but keeps its id and insertedAt.
func (r *MemoryRepo) ReplaceByID(_ context.Context, id string, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	b.ID = r.books[i].ID
	b.InsertedAt = r.books[i].InsertedAt
	r.books[i] = b
	return nil
}

func (r *MemoryRepo) RemoveByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

// Ping always succeeds; it lets readiness checks treat every store alike.
func (r *MemoryRepo) Ping(context.Context) error { return nil }

// Close drops every record.
func (r *MemoryRepo) Close() {
	r.mu.Lock()
	r.books = nil
	r.mu.Unlock()
}

// indexOf must be called with r.mu held.
func (r *MemoryRepo) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
