package repository

import (
	"github.com/compravenda/api/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository covers ratings and comments on products.
type ReviewRepository interface {
	CreateRating(rating *models.Rating) error
	ListRatings(productID uint) ([]models.Rating, error)
	AverageRating(productID uint) (float64, int64, error)
	CreateComment(comment *models.Comment) error
	ListComments(productID uint) ([]models.Comment, error)
	WithTx(tx *gorm.DB) *GormReviewRepository
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates the review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormReviewRepository) WithTx(tx *gorm.DB) *GormReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// CreateRating inserts a rating.
func (r *GormReviewRepository) CreateRating(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// ListRatings returns a product's ratings, newest first.
func (r *GormReviewRepository) ListRatings(productID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("product_id = ?", productID).Order("id DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// AverageRating returns the mean score and rating count for a product.
// The average is 0 when the product has no ratings.
func (r *GormReviewRepository) AverageRating(productID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}

// CreateComment inserts a comment.
func (r *GormReviewRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListComments returns a product's comments, newest first.
func (r *GormReviewRepository) ListComments(productID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("product_id = ?", productID).Order("id DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
