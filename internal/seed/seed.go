// Package seed loads a YAML document describing authors, magazines and
// articles into a catalog. Articles refer to their author and magazine by
// name, so names must be unique within one document.
package seed

import (
	"context"
	"io"
	"masthead/internal/catalog"
	"masthead/pkg/domain"
	"masthead/pkg/logger"
	"masthead/pkg/serrors"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk representation of a catalog.
type Document struct {
	Authors   []Author   `yaml:"authors"`
	Magazines []Magazine `yaml:"magazines"`
	Articles  []Article  `yaml:"articles"`
}

// Author declares an author.
type Author struct {
	Name string `yaml:"name"`
}

// Magazine declares a magazine.
type Magazine struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// Article declares an article by the names of its author and magazine.
type Article struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Result maps the names of a document to the entities registered for them.
type Result struct {
	Authors   map[string]*domain.Author
	Magazines map[string]*domain.Magazine
	Articles  []*domain.Article
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, serrors.Wrap(serrors.ErrInvalidValue, err, "could not decode seed")
	}

	return &doc, nil
}

// ParseFile decodes the document stored at path.
func ParseFile(ctx context.Context, path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open seed")
	}
	defer closeFile(ctx, f)

	doc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return doc, nil
}

func closeFile(ctx context.Context, f io.Closer) {
	if err := f.Close(); err != nil {
		logger.Warn(ctx, "could not close seed file", zap.Error(err))
	}
}

// Apply registers every entity of doc in c, authors first, then magazines,
// then articles. It stops at the first failure; entities registered before
// the failure stay registered since registries are append-only.
func Apply(ctx context.Context, c catalog.Catalog, doc *Document) (*Result, error) {
	res := &Result{
		Authors:   make(map[string]*domain.Author, len(doc.Authors)),
		Magazines: make(map[string]*domain.Magazine, len(doc.Magazines)),
	}

	for i, a := range doc.Authors {
		if _, ok := res.Authors[a.Name]; ok {
			return nil, errors.Wrapf(
				serrors.Invalid(serrors.ErrConflict, domain.FieldName, "author %q declared twice", a.Name),
				"authors[%d]", i)
		}

		author, err := c.NewAuthor(ctx, a.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "authors[%d]", i)
		}
		res.Authors[a.Name] = author
	}

	for i, m := range doc.Magazines {
		if _, ok := res.Magazines[m.Name]; ok {
			return nil, errors.Wrapf(
				serrors.Invalid(serrors.ErrConflict, domain.FieldName, "magazine %q declared twice", m.Name),
				"magazines[%d]", i)
		}

		magazine, err := c.NewMagazine(ctx, m.Name, m.Category)
		if err != nil {
			return nil, errors.Wrapf(err, "magazines[%d]", i)
		}
		res.Magazines[m.Name] = magazine
	}

	for i, a := range doc.Articles {
		author, ok := res.Authors[a.Author]
		if !ok {
			return nil, errors.Wrapf(
				serrors.Invalid(serrors.ErrNotFound, domain.FieldAuthor, "unknown author %q", a.Author),
				"articles[%d]", i)
		}
		magazine, ok := res.Magazines[a.Magazine]
		if !ok {
			return nil, errors.Wrapf(
				serrors.Invalid(serrors.ErrNotFound, domain.FieldMagazine, "unknown magazine %q", a.Magazine),
				"articles[%d]", i)
		}

		article, err := c.AddArticle(ctx, author, magazine, a.Title)
		if err != nil {
			return nil, errors.Wrapf(err, "articles[%d]", i)
		}
		res.Articles = append(res.Articles, article)
	}

	logger.Info(ctx, "seed applied",
		zap.Int("authors", len(res.Authors)),
		zap.Int("magazines", len(res.Magazines)),
		zap.Int("articles", len(res.Articles)))

	return res, nil
}
