package catalog

import (
	"context"
	"masthead/pkg/domain"
)

// Catalog registers authors, magazines and articles and answers the derived
// queries over them. Query methods that may have "no answer" return a nil
// slice or nil entity together with a nil error.
//
//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	NewAuthor(ctx context.Context, name string) (*domain.Author, error)
	NewMagazine(ctx context.Context, name, category string) (*domain.Magazine, error)
	NewArticle(ctx context.Context, author *domain.Author, magazine *domain.Magazine, title string) (*domain.Article, error)
	// AddArticle is NewArticle seen from the author's side.
	AddArticle(ctx context.Context, author *domain.Author, magazine *domain.Magazine, title string) (*domain.Article, error)

	Authors(ctx context.Context) ([]*domain.Author, error)
	Magazines(ctx context.Context) ([]*domain.Magazine, error)
	Articles(ctx context.Context) ([]*domain.Article, error)

	AuthorArticles(ctx context.Context, author *domain.Author) ([]*domain.Article, error)
	AuthorMagazines(ctx context.Context, author *domain.Author) ([]*domain.Magazine, error)
	TopicAreas(ctx context.Context, author *domain.Author) ([]string, error)

	MagazineArticles(ctx context.Context, magazine *domain.Magazine) ([]*domain.Article, error)
	Contributors(ctx context.Context, magazine *domain.Magazine) ([]*domain.Author, error)
	ArticleTitles(ctx context.Context, magazine *domain.Magazine) ([]string, error)
	ContributingAuthors(ctx context.Context, magazine *domain.Magazine) ([]*domain.Author, error)
	TopPublisher(ctx context.Context) (*domain.Magazine, error)
}
