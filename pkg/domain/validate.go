package domain

import (
	"masthead/pkg/serrors"
	"unicode/utf8"
)

const (
	// MagazineNameMinLength is the shortest accepted magazine name.
	MagazineNameMinLength = 2
	// MagazineNameMaxLength is the longest accepted magazine name.
	MagazineNameMaxLength = 16
	// TitleMinLength is the shortest accepted article title.
	TitleMinLength = 5
	// TitleMaxLength is the longest accepted article title.
	TitleMaxLength = 50
)

// Field names reported by validation errors.
const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldMagazine = "magazine"
)

// ValidateAuthorName checks that an author name is not empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return serrors.Invalid(serrors.ErrInvalidValue, FieldName, "author name must not be empty")
	}

	return nil
}

// ValidateMagazineName checks that a magazine name is between
// MagazineNameMinLength and MagazineNameMaxLength characters long.
func ValidateMagazineName(name string) error {
	if n := utf8.RuneCountInString(name); n < MagazineNameMinLength || n > MagazineNameMaxLength {
		return serrors.Invalid(serrors.ErrInvalidValue, FieldName,
			"magazine name must be between %d and %d characters, got %d",
			MagazineNameMinLength, MagazineNameMaxLength, n)
	}

	return nil
}

// ValidateCategory checks that a magazine category is not empty.
func ValidateCategory(category string) error {
	if category == "" {
		return serrors.Invalid(serrors.ErrInvalidValue, FieldCategory, "category must not be empty")
	}

	return nil
}

// ValidateTitle checks that an article title is between TitleMinLength and
// TitleMaxLength characters long.
func ValidateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < TitleMinLength || n > TitleMaxLength {
		return serrors.Invalid(serrors.ErrInvalidValue, FieldTitle,
			"title must be between %d and %d characters, got %d",
			TitleMinLength, TitleMaxLength, n)
	}

	return nil
}
