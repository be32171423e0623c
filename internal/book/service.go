package book

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookshelf/internal/platform/idgen"
)

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	newID func() (string, error)
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator replaces the default nanoid generator.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Service) { s.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		newID: idgen.New,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is UTC at millisecond precision, the resolution of an ISO 8601 string.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Create validates in and stores a new book.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	if err := validateInput(in); err != nil {
		return Book{}, err
	}

	id, err := s.newID()
	if err != nil {
		return Book{}, fmt.Errorf("generate id: %w", err)
	}

	now := s.timestamp()
	b := Book{ID: id, InsertedAt: now, UpdatedAt: now}
	b.apply(in)

	if err := s.repo.Insert(ctx, b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// List returns the summaries of every book matching f, in store order.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(f.Name)
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		if f.Reading != nil && b.Reading != *f.Reading {
			continue
		}
		if f.Finished != nil && b.Finished != *f.Finished {
			continue
		}
		out = append(out, b.Summarize())
	}
	return out, nil
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Update validates in and replaces every mutable field of the book.
// Validation runs before the lookup, so a bad payload wins over an unknown id.
func (s *Service) Update(ctx context.Context, id string, in Input) (Book, error) {
	if err := validateInput(in); err != nil {
		return Book{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Book{}, err
	}

	b := current
	b.apply(in)
	b.UpdatedAt = s.timestamp()
	if b.UpdatedAt.Before(b.InsertedAt) {
		b.UpdatedAt = b.InsertedAt
	}

	if err := s.repo.ReplaceByID(ctx, id, b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Delete removes a book by its id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.RemoveByID(ctx, id)
}
