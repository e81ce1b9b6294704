package catalog

import (
	"context"
	"strings"

	"kaikari-xpress/internal/domain"
	catalogrepo "kaikari-xpress/internal/repository/catalog"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

func New(repo catalogrepo.Repository) *Service {
	return &Service{repo: repo}
}

// categories is the fixed storefront taxonomy.
var categories = []domain.Category{
	{ID: "veggies", Name: "Vegetables", Icon: "carrot"},
	{ID: "fruits", Name: "Fruits", Icon: "apple-alt"},
	{ID: "dairy", Name: "Dairy & Bread", Icon: "cheese"},
	{ID: "drinks", Name: "Cold Drinks", Icon: "glass-whiskey"},
	{ID: "snacks", Name: "Munchies", Icon: "cookie-bite"},
}

// Categories returns the storefront category list.
func (s *Service) Categories() []domain.Category {
	return append([]domain.Category(nil), categories...)
}

// List returns the catalog, optionally filtered by category id.
func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
