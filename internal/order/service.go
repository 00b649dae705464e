package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/menu"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnknownItem = errors.New("menu item not found")

const thankYou = "Спасибо за заказ! Мы свяжемся с вами в ближайшее время."

// ItemFinder looks up dishes in the loaded catalog.
type ItemFinder interface {
	Item(id int) (menu.MenuItem, bool)
}

// Confirmation is returned for a mock order. Nothing is persisted.
type Confirmation struct {
	OrderID    string `json:"order_id"`
	ItemID     int    `json:"item_id"`
	Title      string `json:"title"`
	PriceLabel string `json:"price_label"`
	Message    string `json:"message"`
}

type Service struct {
	items ItemFinder
	delay time.Duration
	log   *zap.Logger
}

func NewService(items ItemFinder, delay time.Duration, log *zap.Logger) *Service {
	return &Service{items: items, delay: delay, log: log}
}

// PlaceOrder waits out the confirmation delay, or returns early with the
// context error.
func (s *Service) PlaceOrder(ctx context.Context, itemID int) (*Confirmation, error) {
	item, ok := s.items.Item(itemID)
	if !ok {
		return nil, ErrUnknownItem
	}

	s.log.Info("menu interaction",
		zap.String("event", "order"),
		zap.Int("item_id", item.ID),
		zap.String("title", item.Title),
	)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	label := item.PriceLabel
	if item.Price != nil {
		label = menu.FormatPrice(*item.Price)
	}

	return &Confirmation{
		OrderID:    uuid.New().String(),
		ItemID:     item.ID,
		Title:      item.Title,
		PriceLabel: label,
		Message:    fmt.Sprintf("%s - %s. %s", item.Title, label, thankYou),
	}, nil
}
