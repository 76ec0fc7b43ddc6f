package service

import (
	"strings"

	"github.com/compravenda/api/internal/constants"
	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/repository"
)

// ReviewService attaches ratings and comments to products.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates the review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// RatingInput is the rating payload.
type RatingInput struct {
	Score   float64 `json:"nota"`
	Content string  `json:"conteudo"`
}

// CommentInput is the comment payload.
type CommentInput struct {
	Message string `json:"mensagem" binding:"required"`
}

// AddRating validates the score bounds and persists the rating with
// the requesting user and target product attached.
func (s *ReviewService) AddRating(userID, productID uint, input RatingInput) (*models.Rating, error) {
	if input.Score < constants.RatingScoreMin {
		return nil, &ValidationError{Message: "A nota deve ser maior ou igual a 0.0"}
	}
	if input.Score > constants.RatingScoreMax {
		return nil, &ValidationError{Message: "A nota deve ser menor ou igual a 5.0"}
	}
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		Score:     input.Score,
		Content:   strings.TrimSpace(input.Content),
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.reviewRepo.CreateRating(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// AddComment persists a comment on a product.
func (s *ReviewService) AddComment(userID, productID uint, input CommentInput) (*models.Comment, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, &ValidationError{Message: "A mensagem é obrigatória."}
	}
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Message:   message,
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.reviewRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListRatings returns a product's ratings.
func (s *ReviewService) ListRatings(productID uint) ([]models.Rating, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListRatings(productID)
}

// ListComments returns a product's comments.
func (s *ReviewService) ListComments(productID uint) ([]models.Comment, error) {
	if err := s.ensureProduct(productID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListComments(productID)
}

func (s *ReviewService) ensureProduct(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return nil
}
