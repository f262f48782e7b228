package commerce

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/config"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/events"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	// TaxRate overrides DefaultTaxRate when set; a zero rate disables tax.
	TaxRate      *decimal.Decimal
	ChargePolicy config.ChargePolicy
	PayoutPolicy config.PayoutPolicy
	Locker       Locker
	Publisher    events.Publisher
	Logger       *zap.Logger
	Now          func() time.Time
}

// Engine runs the cart, checkout, refund and credit operations of one store.
// Every mutating call holds the user's lock for its whole transaction.
type Engine struct {
	db           *gorm.DB
	taxRate      decimal.Decimal
	chargePolicy config.ChargePolicy
	payoutPolicy config.PayoutPolicy
	locker       Locker
	publisher    events.Publisher
	log          *zap.Logger
	now          func() time.Time
}

func NewEngine(db *gorm.DB, opts Options) *Engine {
	e := &Engine{
		db:           db,
		taxRate:      DefaultTaxRate,
		chargePolicy: opts.ChargePolicy,
		payoutPolicy: opts.PayoutPolicy,
		locker:       opts.Locker,
		publisher:    opts.Publisher,
		log:          opts.Logger,
		now:          opts.Now,
	}
	if opts.TaxRate != nil {
		e.taxRate = *opts.TaxRate
	}
	if e.chargePolicy == "" {
		e.chargePolicy = config.ChargeFullCart
	}
	if e.payoutPolicy == "" {
		e.payoutPolicy = config.PayoutNoop
	}
	if e.locker == nil {
		e.locker = NewMemoryLocker()
	}
	if e.publisher == nil {
		e.publisher = events.Nop{}
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// ComputeTotals prices lines at the engine's tax rate.
func (e *Engine) ComputeTotals(lines []models.CartItem) Totals {
	return ComputeTotalsAt(lines, e.taxRate)
}

// withUser locks the user, opens a transaction and loads the user row
// (FOR UPDATE where supported) with its cart and library.
func (e *Engine) withUser(ctx context.Context, userID string, fn func(tx *gorm.DB, user *models.User) error) error {
	unlock, err := e.locker.Lock(ctx, userLockKey(userID))
	if err != nil {
		return fmt.Errorf("lock user %s: %w", userID, err)
	}
	defer unlock()

	return e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := loadUser(tx, userID)
		if err != nil {
			return err
		}
		return fn(tx, user)
	})
}

func loadUser(tx *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	if user.Status == models.UserInactive {
		return nil, ErrAccountInactive
	}
	if err := tx.Where("user_id = ?", userID).Order("id").Find(&user.Cart).Error; err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := tx.Where("user_id = ?", userID).Order("id").Find(&user.Library).Error; err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	return &user, nil
}

// saveUser writes the new credit balance if the row still carries the
// version that was loaded, and bumps the version.
func saveUser(tx *gorm.DB, user *models.User, credit decimal.Decimal) error {
	if credit.IsNegative() {
		return ErrInsufficientCredit
	}
	res := tx.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, user.Version).
		Updates(map[string]interface{}{
			"credit":  credit,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("save user %s: %w", user.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	user.Credit = credit
	user.Version++
	return nil
}

func (e *Engine) publish(ctx context.Context, ev events.Event) {
	if err := e.publisher.Publish(ctx, ev); err != nil {
		e.log.Warn("publish event failed", zap.String("topic", ev.Topic()), zap.Error(err))
	}
}
