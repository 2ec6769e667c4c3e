package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"restaurant_ordering/internal/category"
	"restaurant_ordering/internal/models"
	"restaurant_ordering/internal/redis"
	"restaurant_ordering/internal/repository"
)

type MenuService interface {
	ListCategories() []category.ID
	ListItems(ctx context.Context, cat string) ([]models.MenuItem, error)
	GetItem(ctx context.Context, cat string, id uint) (*models.MenuItem, error)
	AddItem(ctx context.Context, cat, name string, price *float64) (*models.MenuItem, error)
	UpdateItem(ctx context.Context, cat string, id uint, name string, price *float64) (*models.MenuItem, error)
	DeleteItem(ctx context.Context, cat string, id uint) error
	Summary(ctx context.Context) (*models.MenuSummary, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    Cache
	cacheTTL time.Duration
}

func NewMenuService(menuRepo repository.MenuRepository, cache Cache, cacheTTL time.Duration) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *menuService) ListCategories() []category.ID {
	return category.List()
}

func (s *menuService) ListItems(ctx context.Context, cat string) ([]models.MenuItem, error) {
	id, err := category.Parse(cat)
	if err != nil {
		return nil, err
	}

	key := redis.MenuKey(id.String())
	if s.cache != nil {
		var cached []models.MenuItem
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			slog.Warn("Menu cache read failed", "category", id, "error", err)
		}
	}

	items, err := s.menuRepo.List(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, items, s.cacheTTL); err != nil {
			slog.Warn("Menu cache write failed", "category", id, "error", err)
		}
	}
	return items, nil
}

func (s *menuService) GetItem(ctx context.Context, cat string, id uint) (*models.MenuItem, error) {
	catID, err := category.Parse(cat)
	if err != nil {
		return nil, err
	}
	return s.menuRepo.GetByID(ctx, catID, id)
}

func (s *menuService) AddItem(ctx context.Context, cat, name string, price *float64) (*models.MenuItem, error) {
	catID, name, err := validateItemInput(cat, name, price)
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{Name: name, Price: *price}
	if err := s.menuRepo.Create(ctx, catID, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, catID)

	slog.Info("Menu item added", "category", catID, "id", item.ID, "name", item.Name)
	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, cat string, id uint, name string, price *float64) (*models.MenuItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: item id is required", ErrInvalidArgument)
	}
	catID, name, err := validateItemInput(cat, name, price)
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{ID: id, Name: name, Price: *price}
	if err := s.menuRepo.Update(ctx, catID, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, catID)

	slog.Info("Menu item updated", "category", catID, "id", id)
	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, cat string, id uint) error {
	if strings.TrimSpace(cat) == "" || id == 0 {
		return fmt.Errorf("%w: category and item id are required", ErrInvalidArgument)
	}
	catID, err := category.Parse(cat)
	if err != nil {
		return err
	}

	if err := s.menuRepo.Delete(ctx, catID, id); err != nil {
		return err
	}
	s.invalidate(ctx, catID)

	slog.Info("Menu item deleted", "category", catID, "id", id)
	return nil
}

func (s *menuService) Summary(ctx context.Context) (*models.MenuSummary, error) {
	summary := &models.MenuSummary{}
	for _, id := range category.List() {
		n, err := s.menuRepo.Count(ctx, id)
		if err != nil {
			return nil, err
		}
		summary.Categories = append(summary.Categories, models.CategoryCount{Category: id.String(), Items: n})
		summary.TotalItems += n
	}
	return summary, nil
}

func (s *menuService) invalidate(ctx context.Context, id category.ID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, redis.MenuKey(id.String())); err != nil {
		slog.Warn("Menu cache invalidation failed", "category", id, "error", err)
	}
}

// validateItemInput checks presence first, then the category, then values.
func validateItemInput(cat, name string, price *float64) (category.ID, string, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(cat) == "" || name == "" || price == nil {
		return "", "", fmt.Errorf("%w: category, name and price are required", ErrInvalidArgument)
	}
	id, err := category.Parse(cat)
	if err != nil {
		return "", "", err
	}
	if *price < 0 {
		return "", "", fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	}
	return id, name, nil
}
