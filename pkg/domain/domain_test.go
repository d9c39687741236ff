package domain_test

import (
	"masthead/pkg/domain"
	"masthead/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	a, err := domain.NewAuthor("Ada")
	require.NoError(t, err)
	require.Equal(t, "Ada", a.Name())
	require.NotEqual(t, domain.AuthorID{}, a.ID)

	_, err = domain.NewAuthor("")
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
	require.Equal(t, domain.FieldName, serrors.Field(err))
}

func TestNewAuthor_UniqueIDs(t *testing.T) {
	a, err := domain.NewAuthor("Ada")
	require.NoError(t, err)
	b, err := domain.NewAuthor("Ada")
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID, "authors with the same name are distinct entities")
}

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name     string
		magName  string
		category string
		field    string
	}{
		{name: "valid", magName: "Tech", category: "Science"},
		{name: "min length", magName: "AB", category: "Science"},
		{name: "max length", magName: strings.Repeat("m", 16), category: "Science"},
		{name: "multibyte counted as runes", magName: "Ñandú", category: "Nature"},
		{name: "too short", magName: "A", category: "Science", field: domain.FieldName},
		{name: "too long", magName: strings.Repeat("m", 17), category: "Science", field: domain.FieldName},
		{name: "empty name", magName: "", category: "Science", field: domain.FieldName},
		{name: "empty category", magName: "Tech", category: "", field: domain.FieldCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMagazine(tt.magName, tt.category)
			if tt.field == "" {
				require.NoError(t, err)
				require.Equal(t, tt.magName, m.Name())
				require.Equal(t, tt.category, m.Category())

				return
			}

			require.Nil(t, m)
			require.ErrorIs(t, err, serrors.ErrInvalidValue)
			require.Equal(t, tt.field, serrors.Field(err))
		})
	}
}

func TestMagazine_SetName(t *testing.T) {
	m, err := domain.NewMagazine("Tech", "Science")
	require.NoError(t, err)

	require.NoError(t, m.SetName("Wired"))
	require.Equal(t, "Wired", m.Name())

	err = m.SetName("W")
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
	require.Equal(t, "Wired", m.Name(), "rejected name must not be applied")

	err = m.SetName(strings.Repeat("w", 17))
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
	require.Equal(t, "Wired", m.Name())
}

func TestMagazine_SetCategory(t *testing.T) {
	m, err := domain.NewMagazine("Tech", "Science")
	require.NoError(t, err)

	require.NoError(t, m.SetCategory("Gadgets"))
	require.Equal(t, "Gadgets", m.Category())

	err = m.SetCategory("")
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
	require.Equal(t, domain.FieldCategory, serrors.Field(err))
	require.Equal(t, "Gadgets", m.Category())
}

func TestNewArticle(t *testing.T) {
	a, err := domain.NewAuthor("Ada")
	require.NoError(t, err)
	m, err := domain.NewMagazine("Tech", "Science")
	require.NoError(t, err)

	art, err := domain.NewArticle(a, m, "Engines of Analysis")
	require.NoError(t, err)
	require.Same(t, a, art.Author())
	require.Same(t, m, art.Magazine())
	require.Equal(t, "Engines of Analysis", art.Title())

	_, err = domain.NewArticle(nil, m, "Engines of Analysis")
	require.ErrorIs(t, err, serrors.ErrInvalidReference)
	require.Equal(t, domain.FieldAuthor, serrors.Field(err))

	_, err = domain.NewArticle(a, nil, "Engines of Analysis")
	require.ErrorIs(t, err, serrors.ErrInvalidReference)
	require.Equal(t, domain.FieldMagazine, serrors.Field(err))

	_, err = domain.NewArticle(a, m, "Note")
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
	require.Equal(t, domain.FieldTitle, serrors.Field(err))

	_, err = domain.NewArticle(a, m, strings.Repeat("t", 51))
	require.ErrorIs(t, err, serrors.ErrInvalidValue)
}

func TestArticle_Reassign(t *testing.T) {
	ada, _ := domain.NewAuthor("Ada")
	grace, _ := domain.NewAuthor("Grace")
	tech, _ := domain.NewMagazine("Tech", "Science")
	code, _ := domain.NewMagazine("Code", "Programming")

	art, err := domain.NewArticle(ada, tech, "Engines of Analysis")
	require.NoError(t, err)

	require.NoError(t, art.SetAuthor(grace))
	require.Same(t, grace, art.Author())
	require.NoError(t, art.SetMagazine(code))
	require.Same(t, code, art.Magazine())

	err = art.SetAuthor(nil)
	require.ErrorIs(t, err, serrors.ErrInvalidReference)
	require.Same(t, grace, art.Author(), "rejected author must not be applied")

	err = art.SetMagazine(nil)
	require.ErrorIs(t, err, serrors.ErrInvalidReference)
	require.Same(t, code, art.Magazine())

	require.Equal(t, "Engines of Analysis", art.Title())
}

func TestValidateTitle_Bounds(t *testing.T) {
	require.Error(t, domain.ValidateTitle(strings.Repeat("t", domain.TitleMinLength-1)))
	require.NoError(t, domain.ValidateTitle(strings.Repeat("t", domain.TitleMinLength)))
	require.NoError(t, domain.ValidateTitle(strings.Repeat("t", domain.TitleMaxLength)))
	require.Error(t, domain.ValidateTitle(strings.Repeat("t", domain.TitleMaxLength+1)))
	require.NoError(t, domain.ValidateTitle("ééééé"), "length is counted in characters, not bytes")
}
