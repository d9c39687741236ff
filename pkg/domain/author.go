package domain

import "github.com/google/uuid"

// AuthorID uniquely identifies an author.
type AuthorID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id AuthorID) String() string { return uuid.UUID(id).String() }

// Author is a named contributor. Its name is fixed at construction.
type Author struct {
	// ID is assigned by NewAuthor.
	ID AuthorID

	name string
}

// NewAuthor validates name and returns a new, unregistered Author.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}

	return &Author{
		ID:   AuthorID(uuid.New()),
		name: name,
	}, nil
}

// Name returns the author's name.
func (a *Author) Name() string { return a.name }
