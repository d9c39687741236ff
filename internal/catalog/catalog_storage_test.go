package catalog_test

import (
	"context"
	"errors"
	"masthead/internal/catalog"
	"masthead/pkg/domain"
	"testing"

	mockstorage "masthead/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedCatalog(t *testing.T) (*mockstorage.MockStorage, catalog.Catalog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, catalog.New(st, catalog.Options{})
}

func TestCatalog_StoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	st, c := newMockedCatalog(t)
	st.EXPECT().StoreAuthor(gomock.Any(), gomock.Any()).Return(boom)
	_, err := c.NewAuthor(ctx, "Ada")
	require.ErrorIs(t, err, boom)

	st.EXPECT().StoreMagazine(gomock.Any(), gomock.Any()).Return(boom)
	_, err = c.NewMagazine(ctx, "Tech", "Science")
	require.ErrorIs(t, err, boom)

	ada, _ := domain.NewAuthor("Ada")
	tech, _ := domain.NewMagazine("Tech", "Science")
	st.EXPECT().AuthorByID(gomock.Any(), ada.ID).Return(ada, nil)
	st.EXPECT().MagazineByID(gomock.Any(), tech.ID).Return(tech, nil)
	st.EXPECT().StoreArticle(gomock.Any(), gomock.Any()).Return(boom)
	_, err = c.NewArticle(ctx, ada, tech, "Engines of Analysis")
	require.ErrorIs(t, err, boom)
}

func TestCatalog_NewArticle_LookupErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	ada, _ := domain.NewAuthor("Ada")
	tech, _ := domain.NewMagazine("Tech", "Science")

	st, c := newMockedCatalog(t)
	st.EXPECT().AuthorByID(gomock.Any(), ada.ID).Return(nil, boom)
	_, err := c.NewArticle(ctx, ada, tech, "Engines of Analysis")
	require.ErrorIs(t, err, boom)

	st.EXPECT().AuthorByID(gomock.Any(), ada.ID).Return(ada, nil)
	st.EXPECT().MagazineByID(gomock.Any(), tech.ID).Return(nil, boom)
	_, err = c.NewArticle(ctx, ada, tech, "Engines of Analysis")
	require.ErrorIs(t, err, boom)
}

func TestCatalog_InvalidInputNeverReachesStorage(t *testing.T) {
	ctx := context.Background()

	// no expectations: any storage call fails the test
	_, c := newMockedCatalog(t)

	_, err := c.NewAuthor(ctx, "")
	require.Error(t, err)
	_, err = c.NewMagazine(ctx, "Tech", "")
	require.Error(t, err)
	_, err = c.NewArticle(ctx, nil, nil, "Engines of Analysis")
	require.Error(t, err)
}

func TestCatalog_QueryErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	ada, _ := domain.NewAuthor("Ada")
	tech, _ := domain.NewMagazine("Tech", "Science")

	st, c := newMockedCatalog(t)

	st.EXPECT().ArticlesByAuthor(gomock.Any(), ada).Return(nil, boom).Times(3)
	_, err := c.AuthorArticles(ctx, ada)
	require.ErrorIs(t, err, boom)
	_, err = c.AuthorMagazines(ctx, ada)
	require.ErrorIs(t, err, boom)
	_, err = c.TopicAreas(ctx, ada)
	require.ErrorIs(t, err, boom)

	st.EXPECT().ArticlesByMagazine(gomock.Any(), tech).Return(nil, boom).Times(4)
	_, err = c.MagazineArticles(ctx, tech)
	require.ErrorIs(t, err, boom)
	_, err = c.Contributors(ctx, tech)
	require.ErrorIs(t, err, boom)
	_, err = c.ArticleTitles(ctx, tech)
	require.ErrorIs(t, err, boom)
	_, err = c.ContributingAuthors(ctx, tech)
	require.ErrorIs(t, err, boom)
}

func TestCatalog_TopPublisher_StorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	ada, _ := domain.NewAuthor("Ada")
	tech, _ := domain.NewMagazine("Tech", "Science")
	art, _ := domain.NewArticle(ada, tech, "Engines of Analysis")

	st, c := newMockedCatalog(t)
	st.EXPECT().Articles(gomock.Any()).Return(nil, boom)
	_, err := c.TopPublisher(ctx)
	require.ErrorIs(t, err, boom)

	st.EXPECT().Articles(gomock.Any()).Return([]*domain.Article{art}, nil)
	st.EXPECT().Magazines(gomock.Any()).Return(nil, boom)
	_, err = c.TopPublisher(ctx)
	require.ErrorIs(t, err, boom)

	st.EXPECT().Articles(gomock.Any()).Return(nil, nil)
	top, err := c.TopPublisher(ctx)
	require.NoError(t, err)
	require.Nil(t, top)
}
