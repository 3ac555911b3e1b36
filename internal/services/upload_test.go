package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type managementFixture struct {
	photographers *fakePhotographers
	portfolio     *fakePortfolio
	blobs         *fakeBlobs
	uploader      *Uploader
	owner         models.Photographer
}

func newManagementFixture() managementFixture {
	photographers := newFakePhotographers()
	blobs := newFakeBlobs()
	owner := photographers.add(models.Photographer{ID: uuid.New(), UserID: uuid.New(), Name: "Ann"})
	return managementFixture{
		photographers: photographers,
		portfolio:     newFakePortfolio(),
		blobs:         blobs,
		uploader:      NewUploader(blobs, 1024),
		owner:         owner,
	}
}

func TestUploaderValidate(t *testing.T) {
	u := NewUploader(newFakeBlobs(), 64)

	_, err := u.Validate(nil)
	assert.ErrorIs(t, err, ErrNoFile)
	_, err = u.Validate(&Upload{Filename: "a.png"})
	assert.ErrorIs(t, err, ErrNoFile)
	_, err = u.Validate(&Upload{Filename: "a.txt", Data: []byte("hello world")})
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
	_, err = u.Validate(&Upload{Filename: "a.png", Data: append(pngBytes, make([]byte, 64)...)})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	ct, err := u.Validate(&Upload{Filename: "a.png", Data: pngBytes})
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
}

func TestPortfolioUploadWithoutFileMakesNoStorageCall(t *testing.T) {
	f := newManagementFixture()
	svc := NewPortfolioService(f.portfolio, f.photographers, f.uploader)

	_, err := svc.Upload(context.Background(), f.owner.UserID, nil, "t", "d")
	assert.ErrorIs(t, err, ErrNoFile)
	_, err = svc.Upload(context.Background(), f.owner.UserID, &Upload{Filename: "empty.jpg"}, "t", "d")
	assert.ErrorIs(t, err, ErrNoFile)

	profiles := NewProfileService(f.photographers, nil, f.uploader)
	_, err = profiles.UploadProfileImage(context.Background(), f.owner.UserID, nil)
	assert.ErrorIs(t, err, ErrNoFile)

	assert.Zero(t, f.blobs.calls)
	assert.Empty(t, f.portfolio.rows)
}

func TestPortfolioUpload(t *testing.T) {
	f := newManagementFixture()
	svc := NewPortfolioService(f.portfolio, f.photographers, f.uploader)

	img, err := svc.Upload(context.Background(), f.owner.UserID, &Upload{Filename: "Beach.PNG", Data: pngBytes}, " Beach ", "")
	require.NoError(t, err)
	assert.Equal(t, "Beach", img.Title)
	assert.True(t, strings.HasPrefix(img.StorageKey, "portfolio/"+f.owner.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(img.StorageKey, ".png"))
	assert.Equal(t, "https://cdn.test/"+img.StorageKey, img.URL)
	assert.Contains(t, f.blobs.puts, img.StorageKey)
}

func TestPortfolioUploadCleansUpOnInsertFailure(t *testing.T) {
	f := newManagementFixture()
	f.portfolio.createErr = errors.New("db down")
	svc := NewPortfolioService(f.portfolio, f.photographers, f.uploader)

	_, err := svc.Upload(context.Background(), f.owner.UserID, &Upload{Filename: "a.png", Data: pngBytes}, "", "")
	require.Error(t, err)
	assert.Empty(t, f.blobs.puts)
	assert.Len(t, f.blobs.deleted, 1)
}

func TestPortfolioUploadRequiresPhotographer(t *testing.T) {
	f := newManagementFixture()
	svc := NewPortfolioService(f.portfolio, f.photographers, f.uploader)

	_, err := svc.Upload(context.Background(), uuid.New(), &Upload{Filename: "a.png", Data: pngBytes}, "", "")
	assert.ErrorIs(t, err, ErrNotPhotographer)
	assert.Zero(t, f.blobs.calls)
}

func TestPortfolioUpdateAndDeleteAreOwnerScoped(t *testing.T) {
	f := newManagementFixture()
	stranger := f.photographers.add(models.Photographer{ID: uuid.New(), UserID: uuid.New()})
	svc := NewPortfolioService(f.portfolio, f.photographers, f.uploader)
	ctx := context.Background()

	img, err := svc.Upload(ctx, f.owner.UserID, &Upload{Filename: "a.png", Data: pngBytes}, "", "")
	require.NoError(t, err)

	title := "New title"
	_, err = svc.Update(ctx, stranger.UserID, img.ID, models.PortfolioUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, stranger.UserID, img.ID), ErrForbidden)

	updated, err := svc.Update(ctx, f.owner.UserID, img.ID, models.PortfolioUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)

	require.NoError(t, svc.Delete(ctx, f.owner.UserID, img.ID))
	assert.Empty(t, f.portfolio.rows)
	assert.Equal(t, []string{img.StorageKey}, f.blobs.deleted)

	assert.ErrorIs(t, svc.Delete(ctx, f.owner.UserID, img.ID), ErrNotFound)
}

func TestUploadProfileImage(t *testing.T) {
	f := newManagementFixture()
	svc := NewProfileService(f.photographers, nil, f.uploader)

	url, err := svc.UploadProfileImage(context.Background(), f.owner.UserID, &Upload{Filename: "me.png", Data: pngBytes})
	require.NoError(t, err)
	assert.Contains(t, url, "profile/"+f.owner.ID.String()+"/")

	p, err := f.photographers.GetByID(context.Background(), f.owner.ID)
	require.NoError(t, err)
	require.NotNil(t, p.ProfileImageURL)
	assert.Equal(t, url, *p.ProfileImageURL)
}

func TestUploadProfileImageCleansUp(t *testing.T) {
	f := newManagementFixture()
	f.photographers.setImageErr = errors.New("db down")
	svc := NewProfileService(f.photographers, nil, f.uploader)

	_, err := svc.UploadProfileImage(context.Background(), f.owner.UserID, &Upload{Filename: "me.png", Data: pngBytes})
	require.Error(t, err)
	assert.Empty(t, f.blobs.puts)
	assert.Len(t, f.blobs.deleted, 1)
}

func TestUpdateProfile(t *testing.T) {
	f := newManagementFixture()
	listing := NewListingService(f.photographers, newFakeCategories(), f.portfolio)
	svc := NewProfileService(f.photographers, listing, f.uploader)
	ctx := context.Background()

	blank := "  "
	_, err := svc.UpdateProfile(ctx, f.owner.UserID, models.ProfileUpdate{Name: &blank})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	negative := -1.0
	_, err = svc.UpdateProfile(ctx, f.owner.UserID, models.ProfileUpdate{HourlyRate: &negative})
	assert.ErrorAs(t, err, &verr)

	bio := "Weddings and portraits"
	rate := 80.0
	p, err := svc.UpdateProfile(ctx, f.owner.UserID, models.ProfileUpdate{Bio: &bio, HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, bio, p.Bio)
	assert.Equal(t, 80.0, p.HourlyRate)

	detail, err := svc.GetMyProfile(ctx, f.owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, bio, detail.Bio)

	_, err = svc.GetMyProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotPhotographer)
}
