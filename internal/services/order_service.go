package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"restaurant_ordering/internal/metrics"
	"restaurant_ordering/internal/models"
	"restaurant_ordering/internal/redis"
	"restaurant_ordering/internal/repository"
)

const maxRecentOrders = 500

type OrderService interface {
	PlaceOrder(ctx context.Context, cart []models.CartLine) error
	Quote(cart []models.CartLine) (*models.Quote, error)
	ListRecent(ctx context.Context, limit int) ([]models.OrderLine, error)
}

// TaxRates are percentages applied to a cart subtotal when quoting.
type TaxRates struct {
	CGST float64
	SGST float64
}

type orderService struct {
	orderRepo    repository.OrderRepository
	cache        Cache
	taxes        TaxRates
	defaultLimit int
}

func NewOrderService(orderRepo repository.OrderRepository, cache Cache, taxes TaxRates, defaultLimit int) OrderService {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &orderService{orderRepo: orderRepo, cache: cache, taxes: taxes, defaultLimit: defaultLimit}
}

// PlaceOrder records every cart line as one order line, in cart order, inside
// a single transaction. Line totals are stored as submitted.
func (s *orderService) PlaceOrder(ctx context.Context, cart []models.CartLine) error {
	if err := validateCart(cart); err != nil {
		return err
	}

	lines := make([]*models.OrderLine, 0, len(cart))
	var revenue float64
	for _, c := range cart {
		lines = append(lines, &models.OrderLine{
			ItemName:   strings.TrimSpace(c.ItemName),
			UnitPrice:  c.UnitPrice,
			Quantity:   c.Quantity,
			TotalPrice: c.TotalPrice,
		})
		revenue += c.TotalPrice
	}

	if err := s.orderRepo.AppendAll(ctx, lines); err != nil {
		metrics.PlacementFailures.Inc()
		slog.Error("Order placement failed", "lines", len(lines), "error", err)
		return err
	}
	metrics.RecordPlacement(len(lines), revenue)

	if s.cache != nil {
		if err := s.cache.Delete(ctx, redis.StatsKey()); err != nil {
			slog.Warn("Stats cache invalidation failed", "error", err)
		}
	}

	slog.Info("Order placed", "lines", len(lines), "revenue", revenue)
	return nil
}

func (s *orderService) Quote(cart []models.CartLine) (*models.Quote, error) {
	if err := validateCart(cart); err != nil {
		return nil, err
	}

	quote := &models.Quote{Lines: cart}
	for _, c := range cart {
		quote.Subtotal += c.TotalPrice
	}
	quote.CGST = quote.Subtotal * s.taxes.CGST / 100
	quote.SGST = quote.Subtotal * s.taxes.SGST / 100
	quote.Total = quote.Subtotal + quote.CGST + quote.SGST
	return quote, nil
}

// ListRecent returns the newest order lines first. limit <= 0 selects the
// default; larger values are capped.
func (s *orderService) ListRecent(ctx context.Context, limit int) ([]models.OrderLine, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxRecentOrders {
		limit = maxRecentOrders
	}
	return s.orderRepo.ListRecent(ctx, limit)
}

func validateCart(cart []models.CartLine) error {
	if len(cart) == 0 {
		return ErrEmptyCart
	}
	for i, c := range cart {
		switch {
		case strings.TrimSpace(c.ItemName) == "":
			return fmt.Errorf("%w: line %d: item name is required", ErrInvalidArgument, i+1)
		case c.UnitPrice < 0:
			return fmt.Errorf("%w: line %d: unit price must not be negative", ErrInvalidArgument, i+1)
		case c.Quantity < 1:
			return fmt.Errorf("%w: line %d: quantity must be at least 1", ErrInvalidArgument, i+1)
		case c.TotalPrice < 0:
			return fmt.Errorf("%w: line %d: total price must not be negative", ErrInvalidArgument, i+1)
		}
	}
	return nil
}
