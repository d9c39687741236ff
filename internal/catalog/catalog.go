// Package catalog implements the publishing catalog on top of an explicit
// storage.Storage: constructors that validate and register entities, and the
// derived queries (per-author, per-magazine and across the whole catalog).
package catalog

import (
	"context"
	"fmt"
	"masthead/pkg/domain"
	"masthead/pkg/logger"
	"masthead/pkg/metrics"
	"masthead/pkg/serrors"
	"masthead/pkg/storage"

	"go.uber.org/zap"
)

// ContributingThreshold is the number of articles in a magazine an author
// must exceed to count as a contributing author.
const ContributingThreshold = 2

// Options configure optional collaborators of the catalog.
type Options struct {
	// Metrics receives registration and rejection counts. Nil disables metrics.
	Metrics *metrics.Collector
}

// catalog is the concrete implementation of the Catalog interface.
type catalog struct {
	options Options
	storage storage.Storage
}

// New creates a Catalog whose registries live in storage.
func New(storage storage.Storage, options Options) Catalog {
	return &catalog{
		options: options,
		storage: storage,
	}
}

// NewAuthor validates and registers a new author.
func (c catalog) NewAuthor(ctx context.Context, name string) (*domain.Author, error) {
	author, err := domain.NewAuthor(name)
	if err != nil {
		return nil, c.rejected(ctx, metrics.KindAuthor, err)
	}

	if err := c.storage.StoreAuthor(ctx, author); err != nil {
		return nil, fmt.Errorf("could not store author: %w", err)
	}
	c.registered(ctx, metrics.KindAuthor, zap.Stringer("authorID", author.ID), zap.String("name", name))

	return author, nil
}

// NewMagazine validates and registers a new magazine.
func (c catalog) NewMagazine(ctx context.Context, name, category string) (*domain.Magazine, error) {
	magazine, err := domain.NewMagazine(name, category)
	if err != nil {
		return nil, c.rejected(ctx, metrics.KindMagazine, err)
	}

	if err := c.storage.StoreMagazine(ctx, magazine); err != nil {
		return nil, fmt.Errorf("could not store magazine: %w", err)
	}
	c.registered(ctx, metrics.KindMagazine,
		zap.Stringer("magazineID", magazine.ID),
		zap.String("name", name),
		zap.String("category", category))

	return magazine, nil
}

// NewArticle validates and registers a new article joining author and
// magazine.
func (c catalog) NewArticle(ctx context.Context,
	author *domain.Author,
	magazine *domain.Magazine,
	title string) (*domain.Article, error) {
	article, err := domain.NewArticle(author, magazine, title)
	if err != nil {
		return nil, c.rejected(ctx, metrics.KindArticle, err)
	}

	if err := c.checkRegistered(ctx, author, magazine); err != nil {
		return nil, err
	}

	if err := c.storage.StoreArticle(ctx, article); err != nil {
		return nil, fmt.Errorf("could not store article: %w", err)
	}
	c.registered(ctx, metrics.KindArticle,
		zap.Stringer("articleID", article.ID),
		zap.Stringer("authorID", author.ID),
		zap.Stringer("magazineID", magazine.ID))

	return article, nil
}

// checkRegistered rejects references to entities that are not the ones held
// in this catalog's registries.
func (c catalog) checkRegistered(ctx context.Context, author *domain.Author, magazine *domain.Magazine) error {
	storedAuthor, err := c.storage.AuthorByID(ctx, author.ID)
	if err != nil {
		return fmt.Errorf("could not get author: %w", err)
	}
	if storedAuthor != author {
		return c.rejected(ctx, metrics.KindArticle,
			serrors.Invalid(serrors.ErrInvalidReference, domain.FieldAuthor, "author %q is not registered", author.Name()))
	}

	storedMagazine, err := c.storage.MagazineByID(ctx, magazine.ID)
	if err != nil {
		return fmt.Errorf("could not get magazine: %w", err)
	}
	if storedMagazine != magazine {
		return c.rejected(ctx, metrics.KindArticle,
			serrors.Invalid(serrors.ErrInvalidReference, domain.FieldMagazine, "magazine %q is not registered", magazine.Name()))
	}

	return nil
}

// AddArticle registers a new article written by author in magazine.
func (c catalog) AddArticle(ctx context.Context,
	author *domain.Author,
	magazine *domain.Magazine,
	title string) (*domain.Article, error) {
	if author == nil {
		return nil, c.rejected(ctx, metrics.KindArticle,
			serrors.Invalid(serrors.ErrInvalidReference, domain.FieldAuthor, "cannot add an article without an author"))
	}

	return c.NewArticle(ctx, author, magazine, title)
}

func (c catalog) Authors(ctx context.Context) ([]*domain.Author, error) {
	authors, err := c.storage.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list authors: %w", err)
	}

	return authors, nil
}

func (c catalog) Magazines(ctx context.Context) ([]*domain.Magazine, error) {
	magazines, err := c.storage.Magazines(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list magazines: %w", err)
	}

	return magazines, nil
}

func (c catalog) Articles(ctx context.Context) ([]*domain.Article, error) {
	articles, err := c.storage.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list articles: %w", err)
	}

	return articles, nil
}

// AuthorArticles returns the articles currently attributed to author, in
// registration order.
func (c catalog) AuthorArticles(ctx context.Context, author *domain.Author) ([]*domain.Article, error) {
	articles, err := c.storage.ArticlesByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("could not get author articles: %w", err)
	}

	return articles, nil
}

// AuthorMagazines returns the distinct magazines author has written for,
// ordered by their first article.
func (c catalog) AuthorMagazines(ctx context.Context, author *domain.Author) ([]*domain.Magazine, error) {
	articles, err := c.AuthorArticles(ctx, author)
	if err != nil {
		return nil, err
	}

	return distinct(articles, (*domain.Article).Magazine), nil
}

// TopicAreas returns the distinct categories of the magazines author has
// written for, or nil when author has written nothing.
func (c catalog) TopicAreas(ctx context.Context, author *domain.Author) ([]string, error) {
	magazines, err := c.AuthorMagazines(ctx, author)
	if err != nil {
		return nil, err
	}

	return distinct(magazines, (*domain.Magazine).Category), nil
}

// MagazineArticles returns the articles currently in magazine, in
// registration order.
func (c catalog) MagazineArticles(ctx context.Context, magazine *domain.Magazine) ([]*domain.Article, error) {
	articles, err := c.storage.ArticlesByMagazine(ctx, magazine)
	if err != nil {
		return nil, fmt.Errorf("could not get magazine articles: %w", err)
	}

	return articles, nil
}

// Contributors returns the distinct authors of magazine's articles, ordered
// by their first article.
func (c catalog) Contributors(ctx context.Context, magazine *domain.Magazine) ([]*domain.Author, error) {
	articles, err := c.MagazineArticles(ctx, magazine)
	if err != nil {
		return nil, err
	}

	return distinct(articles, (*domain.Article).Author), nil
}

// ArticleTitles returns the titles of magazine's articles, or nil when it
// has none.
func (c catalog) ArticleTitles(ctx context.Context, magazine *domain.Magazine) ([]string, error) {
	articles, err := c.MagazineArticles(ctx, magazine)
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, a := range articles {
		titles = append(titles, a.Title())
	}

	return titles, nil
}

// ContributingAuthors returns the authors with more than
// ContributingThreshold articles in magazine, or nil when none qualify.
func (c catalog) ContributingAuthors(ctx context.Context, magazine *domain.Magazine) ([]*domain.Author, error) {
	articles, err := c.MagazineArticles(ctx, magazine)
	if err != nil {
		return nil, err
	}

	counts := make(map[*domain.Author]int)
	for _, a := range articles {
		counts[a.Author()]++
	}

	var authors []*domain.Author
	for _, author := range distinct(articles, (*domain.Article).Author) {
		if counts[author] > ContributingThreshold {
			authors = append(authors, author)
		}
	}

	return authors, nil
}

// TopPublisher returns the magazine with the most articles, or nil when no
// article is registered. Registered magazines are ranked in registration
// order, followed by magazines articles were moved to without being
// registered, in order of first appearance. Among magazines with the same
// count the one ranked first wins.
func (c catalog) TopPublisher(ctx context.Context) (*domain.Magazine, error) {
	articles, err := c.Articles(ctx)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil //nolint: nilnil
	}

	magazines, err := c.Magazines(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[*domain.Magazine]int, len(magazines))
	for _, a := range articles {
		counts[a.Magazine()]++
	}

	ranked := append([]*domain.Magazine{}, magazines...)
	ranked = append(ranked, distinct(articles, (*domain.Article).Magazine)...)

	var (
		top  *domain.Magazine
		best int
	)
	for _, m := range ranked {
		if n := counts[m]; top == nil || n > best {
			top, best = m, n
		}
	}

	logger.Debug(ctx, "top publisher selected", zap.Stringer("magazineID", top.ID), zap.Int("articles", best))

	return top, nil
}

func (c catalog) registered(ctx context.Context, kind string, fields ...zap.Field) {
	c.options.Metrics.Registered(kind)
	logger.Debug(ctx, kind+" registered", fields...)
}

func (c catalog) rejected(ctx context.Context, kind string, err error) error {
	field := serrors.Field(err)
	c.options.Metrics.Rejected(kind, field)
	logger.Debug(ctx, kind+" rejected", zap.String("field", field), zap.Error(err))

	return fmt.Errorf("could not create %s: %w", kind, err)
}

// distinct maps items through key and drops repeated keys, keeping the
// first occurrence. It returns nil for an empty result.
func distinct[T any, K comparable](items []T, key func(T) K) []K {
	var (
		out  []K
		seen = make(map[K]struct{})
	)
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}
