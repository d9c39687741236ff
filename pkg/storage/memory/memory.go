// Package memory implements storage.Storage with append-only in-process
// slices. It holds no locks: a Memory value must only be used from one
// goroutine at a time.
package memory

import (
	"context"
	"masthead/pkg/domain"
	"masthead/pkg/storage"
)

// Memory keeps every registry in insertion order together with ID indexes
// for lookups.
type Memory struct {
	authors   []*domain.Author
	magazines []*domain.Magazine
	articles  []*domain.Article

	authorsByID   map[domain.AuthorID]*domain.Author
	magazinesByID map[domain.MagazineID]*domain.Magazine
	articlesByID  map[domain.ArticleID]*domain.Article

	closed bool
}

// Ensure Memory implements storage.Storage.
var _ storage.Storage = (*Memory)(nil)

// New returns empty registries.
func New() *Memory {
	return &Memory{
		authorsByID:   make(map[domain.AuthorID]*domain.Author),
		magazinesByID: make(map[domain.MagazineID]*domain.Magazine),
		articlesByID:  make(map[domain.ArticleID]*domain.Article),
	}
}

// Close marks the storage as closed. Registries are kept so that entities
// handed out earlier stay valid.
func (m *Memory) Close() error {
	m.closed = true

	return nil
}

func (m *Memory) StoreAuthor(_ context.Context, author *domain.Author) error {
	if m.closed {
		return storage.ErrClosed
	}
	if author == nil {
		return storage.ErrNilEntity
	}
	if _, ok := m.authorsByID[author.ID]; ok {
		return storage.ErrAlreadyStored
	}

	m.authors = append(m.authors, author)
	m.authorsByID[author.ID] = author

	return nil
}

func (m *Memory) Authors(_ context.Context) ([]*domain.Author, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return clone(m.authors), nil
}

func (m *Memory) AuthorByID(_ context.Context, ID domain.AuthorID) (*domain.Author, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return m.authorsByID[ID], nil
}

func (m *Memory) StoreMagazine(_ context.Context, magazine *domain.Magazine) error {
	if m.closed {
		return storage.ErrClosed
	}
	if magazine == nil {
		return storage.ErrNilEntity
	}
	if _, ok := m.magazinesByID[magazine.ID]; ok {
		return storage.ErrAlreadyStored
	}

	m.magazines = append(m.magazines, magazine)
	m.magazinesByID[magazine.ID] = magazine

	return nil
}

func (m *Memory) Magazines(_ context.Context) ([]*domain.Magazine, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return clone(m.magazines), nil
}

func (m *Memory) MagazineByID(_ context.Context, ID domain.MagazineID) (*domain.Magazine, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return m.magazinesByID[ID], nil
}

func (m *Memory) StoreArticle(_ context.Context, article *domain.Article) error {
	if m.closed {
		return storage.ErrClosed
	}
	if article == nil {
		return storage.ErrNilEntity
	}
	if _, ok := m.articlesByID[article.ID]; ok {
		return storage.ErrAlreadyStored
	}

	m.articles = append(m.articles, article)
	m.articlesByID[article.ID] = article

	return nil
}

func (m *Memory) Articles(_ context.Context) ([]*domain.Article, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return clone(m.articles), nil
}

func (m *Memory) ArticleByID(_ context.Context, ID domain.ArticleID) (*domain.Article, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return m.articlesByID[ID], nil
}

// ArticlesByAuthor scans the registry on every call since articles can be
// reassigned to another author after they are stored.
func (m *Memory) ArticlesByAuthor(_ context.Context, author *domain.Author) ([]*domain.Article, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return filter(m.articles, func(a *domain.Article) bool { return a.Author() == author }), nil
}

// ArticlesByMagazine scans the registry on every call since articles can be
// moved to another magazine after they are stored.
func (m *Memory) ArticlesByMagazine(_ context.Context, magazine *domain.Magazine) ([]*domain.Article, error) {
	if m.closed {
		return nil, storage.ErrClosed
	}

	return filter(m.articles, func(a *domain.Article) bool { return a.Magazine() == magazine }), nil
}

// clone keeps callers from appending into the registry's backing array.
func clone[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)

	return out
}

func filter(in []*domain.Article, keep func(*domain.Article) bool) []*domain.Article {
	var out []*domain.Article
	for _, a := range in {
		if keep(a) {
			out = append(out, a)
		}
	}

	return out
}
