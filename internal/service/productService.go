package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/postgres"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"

	"github.com/sirupsen/logrus"
)

// CreateProductRequest represents a new catalog item.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Category string  `json:"category" binding:"max=100"`
	Price    float64 `json:"price"`
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, entity.ErrProductNameRequired
	}
	if req.Price < 0 {
		return nil, entity.ErrNegativePrice
	}

	product := &entity.Product{
		Name:     name,
		Category: strings.TrimSpace(req.Category),
		Price:    req.Price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *productService) EnsureSeedCatalog(ctx context.Context) error {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if len(products) > 0 {
		return nil
	}

	for _, product := range entity.SeedCatalog() {
		p := product
		if err := s.productRepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	logrus.Info("Seeded initial product catalog")
	return nil
}
