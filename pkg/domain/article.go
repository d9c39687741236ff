package domain

import (
	"masthead/pkg/serrors"

	"github.com/google/uuid"
)

// ArticleID uniquely identifies an article.
type ArticleID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id ArticleID) String() string { return uuid.UUID(id).String() }

// Article joins one Author and one Magazine under a title. The author and
// magazine may be reassigned; the title never changes.
type Article struct {
	// ID is assigned by NewArticle.
	ID ArticleID

	author   *Author
	magazine *Magazine
	title    string
}

// NewArticle validates its arguments and returns a new, unregistered
// Article. A nil author or magazine yields serrors.ErrInvalidReference and a
// title of the wrong length yields serrors.ErrInvalidValue.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, serrors.Invalid(serrors.ErrInvalidReference, FieldAuthor, "article requires an author")
	}
	if magazine == nil {
		return nil, serrors.Invalid(serrors.ErrInvalidReference, FieldMagazine, "article requires a magazine")
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	return &Article{
		ID:       ArticleID(uuid.New()),
		author:   author,
		magazine: magazine,
		title:    title,
	}, nil
}

// Author returns the article's current author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine the article currently belongs to.
func (a *Article) Magazine() *Magazine { return a.magazine }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// SetAuthor reassigns the article to another author. A nil author is
// rejected and the current one is kept.
func (a *Article) SetAuthor(author *Author) error {
	if author == nil {
		return serrors.Invalid(serrors.ErrInvalidReference, FieldAuthor, "article requires an author")
	}
	a.author = author

	return nil
}

// SetMagazine moves the article to another magazine. A nil magazine is
// rejected and the current one is kept.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if magazine == nil {
		return serrors.Invalid(serrors.ErrInvalidReference, FieldMagazine, "article requires a magazine")
	}
	a.magazine = magazine

	return nil
}
