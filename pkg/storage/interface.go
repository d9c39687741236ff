// Package storage defines the registry interfaces the catalog relies on.
// Registries are append-only: entities can be stored and listed but never
// removed. Implementations are owned by the caller and passed to the catalog
// explicitly, so every application run or test gets its own registries.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"masthead/pkg/domain"
)

// Storage is the composite of all registries.
type Storage interface {
	AuthorStorage
	MagazineStorage
	ArticleStorage

	// Close releases any resources held by the implementation. After Close the
	// instance should not be used.
	Close() error
}

// AuthorStorage is the append-only registry of authors.
type AuthorStorage interface {
	// StoreAuthor appends an author to the registry. Storing the same instance
	// twice returns ErrAlreadyStored.
	StoreAuthor(ctx context.Context, author *domain.Author) error
	// Authors returns all registered authors in insertion order.
	Authors(ctx context.Context) ([]*domain.Author, error)
	// AuthorByID returns the author with the given ID, or nil when not found.
	AuthorByID(ctx context.Context, ID domain.AuthorID) (*domain.Author, error)
}

// MagazineStorage is the append-only registry of magazines.
type MagazineStorage interface {
	// StoreMagazine appends a magazine to the registry. Storing the same
	// instance twice returns ErrAlreadyStored.
	StoreMagazine(ctx context.Context, magazine *domain.Magazine) error
	// Magazines returns all registered magazines in insertion order.
	Magazines(ctx context.Context) ([]*domain.Magazine, error)
	// MagazineByID returns the magazine with the given ID, or nil when not found.
	MagazineByID(ctx context.Context, ID domain.MagazineID) (*domain.Magazine, error)
}

// ArticleStorage is the append-only registry of articles.
type ArticleStorage interface {
	// StoreArticle appends an article to the registry. Storing the same
	// instance twice returns ErrAlreadyStored.
	StoreArticle(ctx context.Context, article *domain.Article) error
	// Articles returns all registered articles in insertion order.
	Articles(ctx context.Context) ([]*domain.Article, error)
	// ArticleByID returns the article with the given ID, or nil when not found.
	ArticleByID(ctx context.Context, ID domain.ArticleID) (*domain.Article, error)
	// ArticlesByAuthor returns, in insertion order, the articles whose current
	// author is the given instance.
	ArticlesByAuthor(ctx context.Context, author *domain.Author) ([]*domain.Article, error)
	// ArticlesByMagazine returns, in insertion order, the articles whose
	// current magazine is the given instance.
	ArticlesByMagazine(ctx context.Context, magazine *domain.Magazine) ([]*domain.Article, error)
}
