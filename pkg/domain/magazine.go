package domain

import "github.com/google/uuid"

// MagazineID uniquely identifies a magazine.
type MagazineID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id MagazineID) String() string { return uuid.UUID(id).String() }

// Magazine is a named, categorized publication. Both name and category may
// change after construction, but only to values that pass validation.
type Magazine struct {
	// ID is assigned by NewMagazine.
	ID MagazineID

	name     string
	category string
}

// NewMagazine validates name and category and returns a new, unregistered
// Magazine.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	return &Magazine{
		ID:       MagazineID(uuid.New()),
		name:     name,
		category: category,
	}, nil
}

// Name returns the magazine's current name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's current category.
func (m *Magazine) Category() string { return m.category }

// SetName replaces the name. An invalid name is rejected and the current
// name is kept.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name

	return nil
}

// SetCategory replaces the category. An empty category is rejected and the
// current category is kept.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category

	return nil
}
