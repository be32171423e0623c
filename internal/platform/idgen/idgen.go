package idgen

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length is the number of characters in a generated id.
const Length = 16

// New returns a random URL-safe id of Length characters.
func New() (string, error) {
	return gonanoid.New(Length)
}
