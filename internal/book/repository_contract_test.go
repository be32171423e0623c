package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(books []Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func sampleBook(id string) Book {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return Book{
		ID: id, Name: "Book " + id, Year: 2001, Author: "Author", Summary: "Summary",
		Publisher: "Publisher", PageCount: 100, ReadPage: 10, Reading: true,
		InsertedAt: at, UpdatedAt: at,
	}
}

// testRepository runs the behaviour every Repository must share. newRepo
// returns an empty store.
func testRepository(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("insertion order survives removals", func(t *testing.T) {
		repo := newRepo(t)
		for _, id := range []string{"a", "b", "c", "d"} {
			require.NoError(t, repo.Insert(ctx, sampleBook(id)))
		}
		require.NoError(t, repo.RemoveByID(ctx, "b"))
		require.NoError(t, repo.Insert(ctx, sampleBook("e")))

		books, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "d", "e"}, ids(books))
	})

	t.Run("empty list", func(t *testing.T) {
		books, err := newRepo(t).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("find round trip", func(t *testing.T) {
		repo := newRepo(t)
		want := sampleBook("x")
		want.Finished = true
		want.ReadPage = want.PageCount
		want.UpdatedAt = want.InsertedAt.Add(1500 * time.Millisecond)
		require.NoError(t, repo.Insert(ctx, want))

		got, err := repo.FindByID(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("find unknown id", func(t *testing.T) {
		_, err := newRepo(t).FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("replace keeps id and insertedAt", func(t *testing.T) {
		repo := newRepo(t)
		original := sampleBook("x")
		require.NoError(t, repo.Insert(ctx, original))

		next := sampleBook("other")
		next.Name = "New"
		next.InsertedAt = original.InsertedAt.Add(time.Hour)
		next.UpdatedAt = original.InsertedAt.Add(2 * time.Hour)
		require.NoError(t, repo.ReplaceByID(ctx, "x", next))

		got, err := repo.FindByID(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, "x", got.ID)
		assert.Equal(t, "New", got.Name)
		assert.True(t, got.InsertedAt.Equal(original.InsertedAt))
		assert.True(t, got.UpdatedAt.Equal(next.UpdatedAt))

		_, err = repo.FindByID(ctx, "other")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("replace unknown id", func(t *testing.T) {
		assert.ErrorIs(t, newRepo(t).ReplaceByID(ctx, "missing", sampleBook("missing")), ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, sampleBook("x")))

		require.NoError(t, repo.RemoveByID(ctx, "x"))
		assert.ErrorIs(t, repo.RemoveByID(ctx, "x"), ErrNotFound)

		_, err := repo.FindByID(ctx, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
