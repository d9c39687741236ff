package seed_test

import (
	"context"
	"errors"
	"masthead/internal/catalog"
	"masthead/internal/seed"
	"masthead/pkg/domain"
	"masthead/pkg/serrors"
	"masthead/pkg/storage/memory"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mockcatalog "masthead/internal/catalog/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const document = `
authors:
  - name: Ada
  - name: Grace
magazines:
  - name: Tech
    category: Science
  - name: Code
    category: Programming
articles:
  - author: Ada
    magazine: Tech
    title: Engines of Analysis
  - author: Grace
    magazine: Code
    title: Compilers for Everyone
`

func TestParse(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader(document))
	require.NoError(t, err)

	require.Equal(t, []seed.Author{{Name: "Ada"}, {Name: "Grace"}}, doc.Authors)
	require.Equal(t, seed.Magazine{Name: "Code", Category: "Programming"}, doc.Magazines[1])
	require.Equal(t, seed.Article{Author: "Ada", Magazine: "Tech", Title: "Engines of Analysis"}, doc.Articles[0])
}

func TestParse_Empty(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, doc.Authors)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("writers:\n  - name: Ada\n"))
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
}

func TestParseFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(p, []byte(document), 0o600))

	doc, err := seed.ParseFile(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, doc.Articles, 2)

	_, err = seed.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(memory.New(), catalog.Options{})

	doc, err := seed.Parse(strings.NewReader(document))
	require.NoError(t, err)

	res, err := seed.Apply(ctx, c, doc)
	require.NoError(t, err)
	require.Len(t, res.Authors, 2)
	require.Len(t, res.Magazines, 2)
	require.Len(t, res.Articles, 2)

	articles, err := c.AuthorArticles(ctx, res.Authors["Ada"])
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Same(t, res.Magazines["Tech"], articles[0].Magazine())
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   seed.Document
		kind  serrors.Kind
		field string
		where string
	}{
		{
			name:  "duplicate author",
			doc:   seed.Document{Authors: []seed.Author{{Name: "Ada"}, {Name: "Ada"}}},
			kind:  serrors.ErrConflict,
			field: domain.FieldName,
			where: "authors[1]",
		},
		{
			name:  "invalid author",
			doc:   seed.Document{Authors: []seed.Author{{Name: ""}}},
			kind:  serrors.ErrInvalidValue,
			field: domain.FieldName,
			where: "authors[0]",
		},
		{
			name:  "duplicate magazine",
			doc:   seed.Document{Magazines: []seed.Magazine{{Name: "Tech", Category: "A"}, {Name: "Tech", Category: "B"}}},
			kind:  serrors.ErrConflict,
			field: domain.FieldName,
			where: "magazines[1]",
		},
		{
			name:  "invalid category",
			doc:   seed.Document{Magazines: []seed.Magazine{{Name: "Tech"}}},
			kind:  serrors.ErrInvalidValue,
			field: domain.FieldCategory,
			where: "magazines[0]",
		},
		{
			name: "unknown author",
			doc: seed.Document{
				Magazines: []seed.Magazine{{Name: "Tech", Category: "Science"}},
				Articles:  []seed.Article{{Author: "Ada", Magazine: "Tech", Title: "Engines of Analysis"}},
			},
			kind:  serrors.ErrNotFound,
			field: domain.FieldAuthor,
			where: "articles[0]",
		},
		{
			name: "unknown magazine",
			doc: seed.Document{
				Authors:  []seed.Author{{Name: "Ada"}},
				Articles: []seed.Article{{Author: "Ada", Magazine: "Tech", Title: "Engines of Analysis"}},
			},
			kind:  serrors.ErrNotFound,
			field: domain.FieldMagazine,
			where: "articles[0]",
		},
		{
			name: "short title",
			doc: seed.Document{
				Authors:   []seed.Author{{Name: "Ada"}},
				Magazines: []seed.Magazine{{Name: "Tech", Category: "Science"}},
				Articles:  []seed.Article{{Author: "Ada", Magazine: "Tech", Title: "Tiny"}},
			},
			kind:  serrors.ErrInvalidValue,
			field: domain.FieldTitle,
			where: "articles[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog.New(memory.New(), catalog.Options{})

			_, err := seed.Apply(context.Background(), c, &tt.doc)
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.field, serrors.Field(err))
			require.ErrorContains(t, err, tt.where)
		})
	}
}

func TestApply_StopsAtFirstCatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	boom := errors.New("boom")
	mock := mockcatalog.NewMockCatalog(ctrl)
	ada, _ := domain.NewAuthor("Ada")

	gomock.InOrder(
		mock.EXPECT().NewAuthor(gomock.Any(), "Ada").Return(ada, nil),
		mock.EXPECT().NewAuthor(gomock.Any(), "Grace").Return(nil, boom),
	)

	doc, err := seed.Parse(strings.NewReader(document))
	require.NoError(t, err)

	_, err = seed.Apply(ctx, mock, doc)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "authors[1]")
}

func TestApply_UsesAddArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mock := mockcatalog.NewMockCatalog(ctrl)
	ada, _ := domain.NewAuthor("Ada")
	tech, _ := domain.NewMagazine("Tech", "Science")
	art, _ := domain.NewArticle(ada, tech, "Engines of Analysis")

	mock.EXPECT().NewAuthor(gomock.Any(), "Ada").Return(ada, nil)
	mock.EXPECT().NewMagazine(gomock.Any(), "Tech", "Science").Return(tech, nil)
	mock.EXPECT().AddArticle(gomock.Any(), ada, tech, "Engines of Analysis").Return(art, nil)

	res, err := seed.Apply(ctx, mock, &seed.Document{
		Authors:   []seed.Author{{Name: "Ada"}},
		Magazines: []seed.Magazine{{Name: "Tech", Category: "Science"}},
		Articles:  []seed.Article{{Author: "Ada", Magazine: "Tech", Title: "Engines of Analysis"}},
	})
	require.NoError(t, err)
	require.Equal(t, []*domain.Article{art}, res.Articles)
}
