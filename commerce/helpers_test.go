package commerce

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/events"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/internal/testdb"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) all() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

type fixture struct {
	t         *testing.T
	db        *gorm.DB
	engine    *Engine
	published *recordingPublisher
	supplier  models.Supplier
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	db := testdb.Open(t)
	pub := &recordingPublisher{}
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	if opts.Publisher == nil {
		opts.Publisher = pub
	}

	supplier := models.Supplier{Name: "Team Cherry", Kind: models.SupplierDeveloper, Country: "AU", Active: true}
	require.NoError(t, db.Create(&supplier).Error)

	return &fixture{t: t, db: db, engine: NewEngine(db, opts), published: pub, supplier: supplier}
}

func (f *fixture) product(id uint, name, price string) models.Product {
	f.t.Helper()
	p := models.Product{
		ID:         id,
		Name:       name,
		Category:   models.CategoryGame,
		Price:      dec(price),
		Available:  true,
		SupplierID: f.supplier.ID,
	}
	require.NoError(f.t, f.db.Create(&p).Error)
	return p
}

func (f *fixture) user(credit string) models.User {
	f.t.Helper()
	u := models.User{
		ID:           uuid.NewString(),
		Username:     "player-" + uuid.NewString()[:8],
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Status:       models.UserActive,
		Credit:       dec(credit),
	}
	require.NoError(f.t, f.db.Create(&u).Error)
	return u
}

func (f *fixture) addToCart(userID string, ids ...uint) {
	f.t.Helper()
	for _, id := range ids {
		_, _, err := f.engine.AddToCart(context.Background(), userID, id)
		require.NoError(f.t, err)
	}
}

func (f *fixture) own(userID string, id uint, name string) {
	f.t.Helper()
	entry := models.LibraryEntry{UserID: userID, ProductID: id, Name: name, AcquiredAt: "2026-01-02 03:04"}
	require.NoError(f.t, f.db.Create(&entry).Error)
}

func (f *fixture) reload(userID string) models.User {
	f.t.Helper()
	var u models.User
	require.NoError(f.t, f.db.Preload("Cart").Preload("Library").First(&u, "id = ?", userID).Error)
	return u
}

func (f *fixture) purchases(userID string) []models.Purchase {
	f.t.Helper()
	var ps []models.Purchase
	require.NoError(f.t, f.db.Preload("Details").Where("user_id = ?", userID).Order("id").Find(&ps).Error)
	return ps
}

func libraryIDs(u models.User) []uint {
	ids := make([]uint, 0, len(u.Library))
	for _, e := range u.Library {
		ids = append(ids, e.ProductID)
	}
	return ids
}

func cartIDs(u models.User) []uint {
	ids := make([]uint, 0, len(u.Cart))
	for _, l := range u.Cart {
		ids = append(ids, l.ProductID)
	}
	return ids
}

func validCard() CardDetails {
	return CardDetails{
		HolderName: "Ada Lovelace",
		Number:     "4111111111111111",
		ExpMonth:   12,
		ExpYear:    2027,
		CVV:        "123",
	}
}
