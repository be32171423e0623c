package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const selectColumns = `id, name, year, author, summary, publisher, page_count, read_page,
	       finished, reading, inserted_at, updated_at`

func scanBook(row pgx.Row, b *Book) error {
	err := row.Scan(
		&b.ID, &b.Name, &b.Year, &b.Author, &b.Summary, &b.Publisher,
		&b.PageCount, &b.ReadPage, &b.Finished, &b.Reading,
		&b.InsertedAt, &b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	b.InsertedAt = b.InsertedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return nil
}

func (r *PostgresRepo) Insert(ctx context.Context, b Book) error {
	const sql = `
		INSERT INTO books (id, name, year, author, summary, publisher, page_count, read_page,
		                   finished, reading, inserted_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, sql,
		b.ID, b.Name, b.Year, b.Author, b.Summary, b.Publisher,
		b.PageCount, b.ReadPage, b.Finished, b.Reading, b.InsertedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	query := "SELECT " + selectColumns + " FROM books ORDER BY seq"

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindByID(ctx context.Context, id string) (Book, error) {
	query := "SELECT " + selectColumns + " FROM books WHERE id = $1"

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := scanBook(r.db.QueryRow(timeoutCtx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("find book: %w", err)
	}
	return b, nil
}

// ReplaceByID leaves id and inserted_at untouched.
func (r *PostgresRepo) ReplaceByID(ctx context.Context, id string, b Book) error {
	const sql = `
		UPDATE books SET
			name = $2,
			year = $3,
			author = $4,
			summary = $5,
			publisher = $6,
			page_count = $7,
			read_page = $8,
			finished = $9,
			reading = $10,
			updated_at = $11
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql,
		id, b.Name, b.Year, b.Author, b.Summary, b.Publisher,
		b.PageCount, b.ReadPage, b.Finished, b.Reading, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) RemoveByID(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("remove book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

func (r *PostgresRepo) Close() {
	r.db.Close()
}
