package commerce

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/internal/testdb"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type storeScenario struct {
	t      *testing.T
	db     *gorm.DB
	engine *Engine
	userID string
	result CheckoutResult
	err    error
}

func (s *storeScenario) reset() {
	s.db = testdb.Open(s.t)
	s.engine = NewEngine(s.db, Options{Now: func() time.Time { return fixedNow }})
	s.userID = ""
	s.result = CheckoutResult{}
	s.err = nil
}

func parseIDs(list string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(list, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (s *storeScenario) theCatalogHasTheseProducts(table *godog.Table) error {
	supplier := models.Supplier{Name: "Team Cherry", Kind: models.SupplierDeveloper, Active: true}
	if err := s.db.Create(&supplier).Error; err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		id, err := strconv.ParseUint(row.Cells[0].Value, 10, 64)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}
		p := models.Product{
			ID:         uint(id),
			Name:       row.Cells[1].Value,
			Category:   models.CategoryGame,
			Price:      price,
			Available:  true,
			SupplierID: supplier.ID,
		}
		if err := s.db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *storeScenario) aUserWithCredit(credit string) error {
	amount, err := decimal.NewFromString(credit)
	if err != nil {
		return err
	}
	u := models.User{
		ID:           uuid.NewString(),
		Username:     "shopper",
		Email:        "shopper@example.com",
		PasswordHash: "x",
		Status:       models.UserActive,
		Credit:       amount,
	}
	s.userID = u.ID
	return s.db.Create(&u).Error
}

func (s *storeScenario) theUsersCartHolds(list string) error {
	ids, err := parseIDs(list)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, _, err := s.engine.AddToCart(context.Background(), s.userID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *storeScenario) theUserAlreadyOwnsProduct(id int) error {
	return s.db.Create(&models.LibraryEntry{
		UserID:     s.userID,
		ProductID:  uint(id),
		Name:       "owned",
		AcquiredAt: "2026-01-01 00:00",
	}).Error
}

func (s *storeScenario) thePriceOfProductChangesTo(id int, price string) error {
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	return s.db.Model(&models.Product{}).Where("id = ?", id).Update("price", amount).Error
}

func (s *storeScenario) theUserChecksOutWith(method string) error {
	m, err := ParsePaymentMethod(method)
	if err != nil {
		return err
	}
	s.result, s.err = s.engine.Checkout(context.Background(), s.userID, m, CardDetails{})
	return nil
}

func (s *storeScenario) theUserChecksOutWithACardExpiring(month, year int) error {
	card := CardDetails{HolderName: "Ada Lovelace", Number: "4111111111111111", ExpMonth: month, ExpYear: year, CVV: "123"}
	s.result, s.err = s.engine.Checkout(context.Background(), s.userID, models.PaymentCard, card)
	return nil
}

func (s *storeScenario) theUserRefundsProductToCredit(id int) error {
	s.err = s.engine.Refund(context.Background(), s.userID, uint(id), RefundCredit, PayoutDetails{})
	return nil
}

func (s *storeScenario) theUserRefundsProductByExternalPayout(id int, holder, bank, account string) error {
	payout := PayoutDetails{HolderName: holder, BankName: bank, AccountNumber: account}
	s.err = s.engine.Refund(context.Background(), s.userID, uint(id), RefundExternalPayout, payout)
	return nil
}

func (s *storeScenario) theOperationSucceeds() error {
	if s.err != nil {
		return fmt.Errorf("expected success, got %v", s.err)
	}
	return nil
}

func (s *storeScenario) theOperationFailsWith(msg string) error {
	if s.err == nil {
		return fmt.Errorf("expected error containing %q, got success", msg)
	}
	if !strings.Contains(s.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, s.err.Error())
	}
	return nil
}

func (s *storeScenario) load() (models.User, error) {
	var u models.User
	err := s.db.Preload("Cart").Preload("Library").First(&u, "id = ?", s.userID).Error
	return u, err
}

func (s *storeScenario) theUsersCreditIs(want string) error {
	u, err := s.load()
	if err != nil {
		return err
	}
	if got := u.Credit.StringFixed(2); got != want {
		return fmt.Errorf("credit is %s, want %s", got, want)
	}
	return nil
}

func (s *storeScenario) theUsersLibraryHolds(list string) error {
	want, err := parseIDs(list)
	if err != nil {
		return err
	}
	u, err := s.load()
	if err != nil {
		return err
	}
	if len(u.Library) != len(want) {
		return fmt.Errorf("library has %d entries, want %d", len(u.Library), len(want))
	}
	for _, id := range want {
		if !u.Owns(id) {
			return fmt.Errorf("product %d missing from library", id)
		}
	}
	return nil
}

func (s *storeScenario) theUsersLibraryIsEmpty() error {
	u, err := s.load()
	if err != nil {
		return err
	}
	if len(u.Library) != 0 {
		return fmt.Errorf("library has %d entries", len(u.Library))
	}
	return nil
}

func (s *storeScenario) theUsersCartIsEmpty() error {
	return s.theUsersCartHoldsLines(0)
}

func (s *storeScenario) theUsersCartHoldsLines(n int) error {
	u, err := s.load()
	if err != nil {
		return err
	}
	if len(u.Cart) != n {
		return fmt.Errorf("cart has %d lines, want %d", len(u.Cart), n)
	}
	return nil
}

func (s *storeScenario) aPurchaseTotallingWasRecorded(total string) error {
	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", s.userID).Find(&purchases).Error; err != nil {
		return err
	}
	if len(purchases) != 1 {
		return fmt.Errorf("found %d purchases, want 1", len(purchases))
	}
	if got := purchases[0].Total.StringFixed(2); got != total {
		return fmt.Errorf("purchase total is %s, want %s", got, total)
	}
	return nil
}

func (s *storeScenario) noPurchaseWasRecorded() error {
	var n int64
	if err := s.db.Model(&models.Purchase{}).Count(&n).Error; err != nil {
		return err
	}
	if n != 0 {
		return fmt.Errorf("found %d purchases", n)
	}
	return nil
}

func (s *storeScenario) theCheckoutReportsEverythingAlreadyOwned() error {
	if s.err != nil {
		return s.err
	}
	if !s.result.AllOwned || s.result.Purchase != nil {
		return fmt.Errorf("expected an all-owned result, got %+v", s.result)
	}
	return nil
}

func initializeStoreScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		s := &storeScenario{t: t}

		ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
			s.reset()
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^the catalog has these products:$`, s.theCatalogHasTheseProducts)
		ctx.Step(`^a user with (\d+\.\d{2}) credit$`, s.aUserWithCredit)
		ctx.Step(`^the user's cart holds products? ([\d, ]+)$`, s.theUsersCartHolds)
		ctx.Step(`^the user already owns product (\d+)$`, s.theUserAlreadyOwnsProduct)
		ctx.Step(`^the price of product (\d+) changes to (\d+\.\d{2})$`, s.thePriceOfProductChangesTo)

		// When steps
		ctx.Step(`^the user checks out with (credit|cash)$`, s.theUserChecksOutWith)
		ctx.Step(`^the user checks out with a card expiring (\d{2})/(\d{4})$`, s.theUserChecksOutWithACardExpiring)
		ctx.Step(`^the user refunds product (\d+) to credit$`, s.theUserRefundsProductToCredit)
		ctx.Step(`^the user refunds product (\d+) by external payout to "([^"]*)" at "([^"]*)" account "([^"]*)"$`, s.theUserRefundsProductByExternalPayout)

		// Then steps
		ctx.Step(`^the operation succeeds$`, s.theOperationSucceeds)
		ctx.Step(`^the operation fails with "([^"]*)"$`, s.theOperationFailsWith)
		ctx.Step(`^the user's credit is (\d+\.\d{2})$`, s.theUsersCreditIs)
		ctx.Step(`^the user's library holds products? ([\d, ]+)$`, s.theUsersLibraryHolds)
		ctx.Step(`^the user's library is empty$`, s.theUsersLibraryIsEmpty)
		ctx.Step(`^the user's cart is empty$`, s.theUsersCartIsEmpty)
		ctx.Step(`^the user's cart holds (\d+) lines?$`, s.theUsersCartHoldsLines)
		ctx.Step(`^a purchase totalling (\d+\.\d{2}) was recorded$`, s.aPurchaseTotallingWasRecorded)
		ctx.Step(`^no purchase was recorded$`, s.noPurchaseWasRecorded)
		ctx.Step(`^the checkout reports everything already owned$`, s.theCheckoutReportsEverythingAlreadyOwned)
	}
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeStoreScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
