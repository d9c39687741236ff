// Package report summarizes a catalog: one entry per author, one per
// magazine and the top publisher, rendered as plain text or JSON.
package report

import (
	"context"
	"fmt"
	"masthead/internal/catalog"
	"masthead/pkg/domain"
)

// AuthorSummary describes one author.
type AuthorSummary struct {
	ID        string
	Name      string
	Titles    []string
	Magazines []string
	// TopicAreas is nil when the author has written nothing.
	TopicAreas []string
}

// MagazineSummary describes one magazine.
type MagazineSummary struct {
	ID           string
	Name         string
	Category     string
	Titles       []string
	Contributors []string
	// ContributingAuthors is nil when no author has more than
	// catalog.ContributingThreshold articles in the magazine.
	ContributingAuthors []string
}

// Report is the summary of a whole catalog.
type Report struct {
	Authors   []AuthorSummary
	Magazines []MagazineSummary
	// TopPublisher is the name of the magazine with the most articles, or
	// empty when there are no articles.
	TopPublisher string
	Articles     int
}

// Build queries c and assembles its report.
func Build(ctx context.Context, c catalog.Catalog) (*Report, error) {
	var r Report

	authors, err := c.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not build report: %w", err)
	}
	for _, a := range authors {
		s, err := summarizeAuthor(ctx, c, a)
		if err != nil {
			return nil, err
		}
		r.Authors = append(r.Authors, *s)
	}

	magazines, err := c.Magazines(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not build report: %w", err)
	}
	for _, m := range magazines {
		s, err := summarizeMagazine(ctx, c, m)
		if err != nil {
			return nil, err
		}
		r.Magazines = append(r.Magazines, *s)
	}

	articles, err := c.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not build report: %w", err)
	}
	r.Articles = len(articles)

	top, err := c.TopPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not build report: %w", err)
	}
	if top != nil {
		r.TopPublisher = top.Name()
	}

	return &r, nil
}

func summarizeAuthor(ctx context.Context, c catalog.Catalog, a *domain.Author) (*AuthorSummary, error) {
	articles, err := c.AuthorArticles(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("could not summarize author %q: %w", a.Name(), err)
	}
	magazines, err := c.AuthorMagazines(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("could not summarize author %q: %w", a.Name(), err)
	}
	topics, err := c.TopicAreas(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("could not summarize author %q: %w", a.Name(), err)
	}

	return &AuthorSummary{
		ID:         a.ID.String(),
		Name:       a.Name(),
		Titles:     titles(articles),
		Magazines:  names(magazines, (*domain.Magazine).Name),
		TopicAreas: topics,
	}, nil
}

func summarizeMagazine(ctx context.Context, c catalog.Catalog, m *domain.Magazine) (*MagazineSummary, error) {
	articleTitles, err := c.ArticleTitles(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("could not summarize magazine %q: %w", m.Name(), err)
	}
	contributors, err := c.Contributors(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("could not summarize magazine %q: %w", m.Name(), err)
	}
	contributing, err := c.ContributingAuthors(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("could not summarize magazine %q: %w", m.Name(), err)
	}

	return &MagazineSummary{
		ID:                  m.ID.String(),
		Name:                m.Name(),
		Category:            m.Category(),
		Titles:              articleTitles,
		Contributors:        names(contributors, (*domain.Author).Name),
		ContributingAuthors: names(contributing, (*domain.Author).Name),
	}, nil
}

func titles(articles []*domain.Article) []string {
	return names(articles, (*domain.Article).Title)
}

// names keeps nil input as nil so that "no result" survives rendering.
func names[T any](items []T, name func(T) string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}

	return out
}
