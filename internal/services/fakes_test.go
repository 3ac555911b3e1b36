package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"photomarket/internal/models"
	"photomarket/internal/repository"

	"github.com/google/uuid"
)

type fakeUsers struct {
	byID map[uuid.UUID]*models.User
	// photographer rows created through Create
	photographers *fakePhotographers
}

func newFakeUsers(p *fakePhotographers) *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*models.User{}, photographers: p}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User, name string) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	if u.Role == models.RolePhotographer && f.photographers != nil {
		f.photographers.add(models.Photographer{ID: uuid.New(), UserID: u.ID, Name: name})
	}
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakePhotographers struct {
	rows        []models.Photographer
	legacy      map[int64]string
	listResult  []models.Photographer
	lastFilter  models.PhotographerFilter
	setImageErr error
}

func newFakePhotographers() *fakePhotographers {
	return &fakePhotographers{legacy: map[int64]string{}}
}

func (f *fakePhotographers) add(p models.Photographer) models.Photographer {
	f.rows = append(f.rows, p)
	return p
}

func (f *fakePhotographers) GetByID(_ context.Context, id uuid.UUID) (*models.Photographer, error) {
	for _, p := range f.rows {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePhotographers) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Photographer, error) {
	for _, p := range f.rows {
		if p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePhotographers) List(_ context.Context, filter models.PhotographerFilter) ([]models.Photographer, error) {
	f.lastFilter = filter
	out := make([]models.Photographer, len(f.listResult))
	copy(out, f.listResult)
	return out, nil
}

func (f *fakePhotographers) UpdateProfile(_ context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.Photographer, error) {
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		p := &f.rows[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Bio != nil {
			p.Bio = *upd.Bio
		}
		if upd.Location != nil {
			p.Location = *upd.Location
		}
		if upd.HourlyRate != nil {
			p.HourlyRate = *upd.HourlyRate
		}
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePhotographers) SetProfileImage(_ context.Context, id uuid.UUID, url string) error {
	if f.setImageErr != nil {
		return f.setImageErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].ProfileImageURL = &url
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePhotographers) LegacyExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range f.legacy {
		if strings.EqualFold(e, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePhotographers) LegacyExists(_ context.Context, legacyID int64) (bool, error) {
	_, ok := f.legacy[legacyID]
	return ok, nil
}

type fakeCategories struct {
	rows  map[uuid.UUID]models.Category
	inUse map[uuid.UUID]bool
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{rows: map[uuid.UUID]models.Category{}, inUse: map[uuid.UUID]bool{}}
}

func (f *fakeCategories) add(photographerID uuid.UUID, name string) models.Category {
	c := models.Category{ID: uuid.New(), PhotographerID: photographerID, Name: name}
	f.rows[c.ID] = c
	return c
}

func (f *fakeCategories) Create(_ context.Context, photographerID uuid.UUID, in models.CategoryInput) (*models.Category, error) {
	c := models.Category{
		ID:             uuid.New(),
		PhotographerID: photographerID,
		Name:           in.Name,
		Price:          in.Price,
		Description:    in.Description,
		CreatedAt:      time.Now(),
	}
	f.rows[c.ID] = c
	return &c, nil
}

func (f *fakeCategories) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCategories) Update(_ context.Context, id uuid.UUID, in models.CategoryInput) (*models.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Name, c.Price, c.Description = in.Name, in.Price, in.Description
	f.rows[id] = c
	return &c, nil
}

func (f *fakeCategories) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if f.inUse[id] {
		return repository.ErrReference
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeCategories) ListByPhotographer(_ context.Context, photographerID uuid.UUID) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.rows {
		if c.PhotographerID == photographerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategories) ListNames(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, c := range f.rows {
		if !seen[c.Name] {
			seen[c.Name] = true
			out = append(out, c.Name)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakePortfolio struct {
	rows       map[uuid.UUID]models.PortfolioImage
	listResult []models.PortfolioImage
	lastFilter models.PortfolioFilter
	createErr  error
}

func newFakePortfolio() *fakePortfolio {
	return &fakePortfolio{rows: map[uuid.UUID]models.PortfolioImage{}}
}

func (f *fakePortfolio) Create(_ context.Context, img *models.PortfolioImage) error {
	if f.createErr != nil {
		return f.createErr
	}
	img.CreatedAt = time.Now()
	f.rows[img.ID] = *img
	return nil
}

func (f *fakePortfolio) GetByID(_ context.Context, id uuid.UUID) (*models.PortfolioImage, error) {
	img, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &img, nil
}

func (f *fakePortfolio) Update(_ context.Context, id uuid.UUID, upd models.PortfolioUpdate) (*models.PortfolioImage, error) {
	img, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		img.Title = *upd.Title
	}
	if upd.Description != nil {
		img.Description = *upd.Description
	}
	f.rows[id] = img
	return &img, nil
}

func (f *fakePortfolio) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePortfolio) List(_ context.Context, filter models.PortfolioFilter) ([]models.PortfolioImage, error) {
	f.lastFilter = filter
	if f.listResult != nil {
		out := make([]models.PortfolioImage, len(f.listResult))
		copy(out, f.listResult)
		return out, nil
	}
	var out []models.PortfolioImage
	for _, img := range f.rows {
		if filter.PhotographerID == nil || img.PhotographerID == *filter.PhotographerID {
			out = append(out, img)
		}
	}
	return out, nil
}

type fakeBookings struct {
	rows map[uuid.UUID]models.Booking
	// raceTo, when set, is written just before UpdateStatus compares.
	raceTo models.BookingStatus
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{rows: map[uuid.UUID]models.Booking{}}
}

func (f *fakeBookings) Create(_ context.Context, b *models.Booking) error {
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	f.rows[b.ID] = *b
	return nil
}

func (f *fakeBookings) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBookings) list(match func(models.Booking) bool, status *models.BookingStatus) []models.BookingView {
	var out []models.BookingView
	for _, b := range f.rows {
		if match(b) && (status == nil || b.Status == *status) {
			out = append(out, models.BookingView{Booking: b})
		}
	}
	return out
}

func (f *fakeBookings) ListForClient(_ context.Context, clientID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error) {
	return f.list(func(b models.Booking) bool { return b.ClientID == clientID }, status), nil
}

func (f *fakeBookings) ListForPhotographer(_ context.Context, photographerID uuid.UUID, status *models.BookingStatus) ([]models.BookingView, error) {
	return f.list(func(b models.Booking) bool { return b.PhotographerID == photographerID }, status), nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.BookingStatus) (*models.Booking, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if f.raceTo != "" {
		b.Status = f.raceTo
		f.rows[id] = b
	}
	if b.Status != from {
		return nil, repository.ErrStatusChanged
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	f.rows[id] = b
	return &b, nil
}

type fakeIDMap struct {
	byLegacy  map[int64]uuid.UUID
	unmapped  []int64
	insertErr error
}

func newFakeIDMap() *fakeIDMap {
	return &fakeIDMap{byLegacy: map[int64]uuid.UUID{}}
}

func (f *fakeIDMap) GetUUID(_ context.Context, legacyID int64) (uuid.UUID, error) {
	id, ok := f.byLegacy[legacyID]
	if !ok {
		return uuid.Nil, repository.ErrNotFound
	}
	return id, nil
}

func (f *fakeIDMap) GetLegacyID(_ context.Context, id uuid.UUID) (int64, error) {
	for legacyID, mapped := range f.byLegacy {
		if mapped == id {
			return legacyID, nil
		}
	}
	return 0, repository.ErrNotFound
}

func (f *fakeIDMap) InsertIfAbsent(_ context.Context, legacyID int64, id uuid.UUID) (uuid.UUID, error) {
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	if existing, ok := f.byLegacy[legacyID]; ok {
		return existing, nil
	}
	f.byLegacy[legacyID] = id
	return id, nil
}

func (f *fakeIDMap) ListUnmapped(_ context.Context) ([]int64, error) {
	return f.unmapped, nil
}

type fakeBlobs struct {
	puts    map[string][]byte
	deleted []string
	putErr  error
	calls   int
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{puts: map[string][]byte{}}
}

func (f *fakeBlobs) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	f.calls++
	if f.putErr != nil {
		return "", f.putErr
	}
	f.puts[key] = body
	return f.PublicURL(key), nil
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	f.calls++
	f.deleted = append(f.deleted, key)
	delete(f.puts, key)
	return nil
}

func (f *fakeBlobs) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type sentMessage struct {
	userID  uuid.UUID
	message interface{}
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (n *recordingNotifier) SendToUser(userID uuid.UUID, message interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{userID: userID, message: message})
}

// pngBytes is a minimal PNG header, enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
