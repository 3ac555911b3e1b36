package services

import (
	"context"
	"testing"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func photographerIDs(rows []models.Photographer) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, p := range rows {
		ids[i] = p.ID
	}
	return ids
}

func TestListPhotographersDefaults(t *testing.T) {
	photographers := newFakePhotographers()
	svc := NewListingService(photographers, newFakeCategories(), newFakePortfolio())

	rows, err := svc.ListPhotographers(context.Background(), models.PhotographerFilter{Limit: 1000, Offset: -3})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Equal(t, models.SortRating, photographers.lastFilter.Sort)
	assert.Equal(t, MaxPageSize, photographers.lastFilter.Limit)
	assert.Equal(t, 0, photographers.lastFilter.Offset)

	_, err = svc.ListPhotographers(context.Background(), models.PhotographerFilter{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, photographers.lastFilter.Limit)
}

func TestListPhotographersRandomKeepsRowSet(t *testing.T) {
	photographers := newFakePhotographers()
	for i := 0; i < 5; i++ {
		photographers.listResult = append(photographers.listResult, models.Photographer{ID: uuid.New()})
	}
	svc := NewListingService(photographers, newFakeCategories(), newFakePortfolio())
	svc.shuffle = reverseShuffle

	rows, err := svc.ListPhotographers(context.Background(), models.PhotographerFilter{Sort: models.SortRandom})
	require.NoError(t, err)

	want := photographerIDs(photographers.listResult)
	got := photographerIDs(rows)
	assert.ElementsMatch(t, want, got)
	assert.Equal(t, want[0], got[len(got)-1])

	rows, err = svc.ListPhotographers(context.Background(), models.PhotographerFilter{Sort: models.SortRandom})
	require.NoError(t, err)
	assert.ElementsMatch(t, want, photographerIDs(rows))
}

func TestListPhotographersSortedKeepsOrder(t *testing.T) {
	photographers := newFakePhotographers()
	for i := 0; i < 3; i++ {
		photographers.listResult = append(photographers.listResult, models.Photographer{ID: uuid.New()})
	}
	svc := NewListingService(photographers, newFakeCategories(), newFakePortfolio())
	svc.shuffle = reverseShuffle

	rows, err := svc.ListPhotographers(context.Background(), models.PhotographerFilter{Sort: models.SortRateAsc})
	require.NoError(t, err)
	assert.Equal(t, photographerIDs(photographers.listResult), photographerIDs(rows))
}

func TestListPhotographersInvalidFilter(t *testing.T) {
	svc := NewListingService(newFakePhotographers(), newFakeCategories(), newFakePortfolio())

	_, err := svc.ListPhotographers(context.Background(), models.PhotographerFilter{Sort: "alphabetical"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sort", verr.Field)

	_, err = svc.ListPhotographers(context.Background(), models.PhotographerFilter{MinRating: 6})
	assert.ErrorAs(t, err, &verr)
}

func TestListPortfolioRandomKeepsRowSet(t *testing.T) {
	portfolio := newFakePortfolio()
	for i := 0; i < 4; i++ {
		portfolio.listResult = append(portfolio.listResult, models.PortfolioImage{ID: uuid.New()})
	}
	svc := NewListingService(newFakePhotographers(), newFakeCategories(), portfolio)
	svc.shuffle = reverseShuffle

	rows, err := svc.ListPortfolio(context.Background(), models.PortfolioFilter{Order: models.PortfolioRandom})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, portfolio.listResult[0].ID, rows[3].ID)

	_, err = svc.ListPortfolio(context.Background(), models.PortfolioFilter{Order: "oldest"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGetPhotographerDetail(t *testing.T) {
	photographers := newFakePhotographers()
	categories := newFakeCategories()
	portfolio := newFakePortfolio()
	p := photographers.add(models.Photographer{ID: uuid.New(), UserID: uuid.New(), Name: "Ann"})
	categories.add(p.ID, "Wedding")
	categories.add(uuid.New(), "Other")
	img := models.PortfolioImage{ID: uuid.New(), PhotographerID: p.ID}
	require.NoError(t, portfolio.Create(context.Background(), &img))

	svc := NewListingService(photographers, categories, portfolio)
	detail, err := svc.GetPhotographer(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", detail.Name)
	require.Len(t, detail.Categories, 1)
	assert.Equal(t, "Wedding", detail.Categories[0].Name)
	assert.Len(t, detail.Portfolio, 1)

	_, err = svc.GetPhotographer(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategories(t *testing.T) {
	photographers := newFakePhotographers()
	categories := newFakeCategories()
	p := photographers.add(models.Photographer{ID: uuid.New(), UserID: uuid.New()})
	categories.add(p.ID, "Portrait")
	categories.add(uuid.New(), "Wedding")
	categories.add(uuid.New(), "Portrait")
	svc := NewListingService(photographers, categories, newFakePortfolio())

	cats, err := svc.ListCategories(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	names, err := svc.ListCategoryNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Portrait", "Wedding"}, names)

	_, err = svc.ListCategories(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
