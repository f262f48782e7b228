package events

import (
	"context"
	"errors"
	"time"
)

const (
	TopicPurchaseCompleted = "purchase.completed"
	TopicLibraryRefunded   = "library.refunded"
)

// Event is a domain fact published after a commit.
type Event interface {
	Topic() string
	Key() string
}

type PurchaseCompleted struct {
	PurchaseID uint      `json:"purchase_id"`
	UserID     string    `json:"user_id"`
	ProductIDs []uint    `json:"product_ids"`
	Total      string    `json:"total"`
	Method     string    `json:"method"`
	At         time.Time `json:"at"`
}

func (PurchaseCompleted) Topic() string { return TopicPurchaseCompleted }
func (e PurchaseCompleted) Key() string { return e.UserID }

type LibraryRefunded struct {
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Method    string    `json:"method"`
	Amount    string    `json:"amount"`
	At        time.Time `json:"at"`
}

func (LibraryRefunded) Topic() string { return TopicLibraryRefunded }
func (e LibraryRefunded) Key() string { return e.UserID }

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi publishes to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
