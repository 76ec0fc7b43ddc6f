package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/repository"
)

// ProductService manages the catalog.
type ProductService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

// NewProductService creates the product service.
func NewProductService(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Description string       `json:"descricao" binding:"required"`
	Price       models.Money `json:"valor" binding:"required"`
	ExpiresOn   string       `json:"data_validade"`
	Stock       int          `json:"estoque"`
}

// ProductDetail is a product plus its review aggregates.
type ProductDetail struct {
	models.Product
	AverageScore string           `json:"nota_media"`
	Ratings      []models.Rating  `json:"avaliacoes"`
	Comments     []models.Comment `json:"comentarios"`
}

// Create inserts a product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, &ValidationError{Message: "A descrição é obrigatória."}
	}
	if input.Stock < 0 {
		return nil, &ValidationError{Message: "O estoque não pode ser negativo."}
	}
	product := &models.Product{
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if input.ExpiresOn != "" {
		expires, err := parseDate(input.ExpiresOn)
		if err != nil {
			return nil, &ValidationError{Message: "Data de validade inválida. Use o formato AAAA-MM-DD."}
		}
		product.ExpiresOn = expires
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves product fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if strings.TrimSpace(input.Description) != "" {
		product.Description = strings.TrimSpace(input.Description)
	}
	if input.Stock < 0 {
		return nil, &ValidationError{Message: "O estoque não pode ser negativo."}
	}
	product.Price = input.Price
	product.Stock = input.Stock
	if input.ExpiresOn != "" {
		expires, err := parseDate(input.ExpiresOn)
		if err != nil {
			return nil, &ValidationError{Message: "Data de validade inválida. Use o formato AAAA-MM-DD."}
		}
		product.ExpiresOn = expires
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

// List returns products matching the filter.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get returns a bare product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Detail returns a product with its ratings, comments and the rating
// mean formatted to two decimal places ("0.00" when unrated).
func (s *ProductService) Detail(id uint) (*ProductDetail, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	avg, count, err := s.reviewRepo.AverageRating(id)
	if err != nil {
		return nil, err
	}
	average := "0.00"
	if count > 0 {
		average = fmt.Sprintf("%.2f", avg)
	}

	ratings, err := s.reviewRepo.ListRatings(id)
	if err != nil {
		return nil, err
	}
	comments, err := s.reviewRepo.ListComments(id)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:      *product,
		AverageScore: average,
		Ratings:      ratings,
		Comments:     comments,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
