package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no book has the requested id.
var ErrNotFound = errors.New("book not found")

// Book represents a book record held by the store.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input holds the caller supplied fields for create and update.
// Field order matters: validation reports the first failing field.
type Input struct {
	Name      string `json:"name" validate:"notblank"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

// Summary is the projection returned by list.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// Filter narrows a list. Nil flags are not applied.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

// apply copies the mutable fields of in onto b and recomputes finished.
func (b *Book) apply(in Input) {
	b.Name = in.Name
	b.Year = in.Year
	b.Author = in.Author
	b.Summary = in.Summary
	b.Publisher = in.Publisher
	b.PageCount = in.PageCount
	b.ReadPage = in.ReadPage
	b.Reading = in.Reading
	b.Finished = in.PageCount == in.ReadPage
}

// Summarize projects b to the list shape.
func (b Book) Summarize() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}
