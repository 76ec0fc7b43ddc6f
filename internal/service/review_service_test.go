package service

import (
	"errors"
	"testing"

	"github.com/compravenda/api/internal/repository"
)

func TestAddRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db))
	p := createProduct(t, db, "Chocolate 90g", 6.00, 5)

	cases := []struct {
		score   float64
		ok      bool
		message string
	}{
		{-0.01, false, "A nota deve ser maior ou igual a 0.0"},
		{0.0, true, ""},
		{5.0, true, ""},
		{5.01, false, "A nota deve ser menor ou igual a 5.0"},
	}
	for _, tc := range cases {
		rating, err := svc.AddRating(1, p.ID, RatingInput{Score: tc.score})
		if tc.ok {
			if err != nil {
				t.Fatalf("score %v: unexpected error %v", tc.score, err)
			}
			if rating.UserID != 1 || rating.ProductID != p.ID {
				t.Fatalf("score %v: user/product not attached: %+v", tc.score, rating)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("score %v: expected ValidationError, got %v", tc.score, err)
		}
		if verr.Message != tc.message {
			t.Fatalf("score %v: unexpected message %q", tc.score, verr.Message)
		}
	}
}

func TestProductDetailAverage(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db))
	products := NewProductService(repository.NewProductRepository(db), repository.NewReviewRepository(db))
	p := createProduct(t, db, "Biscoito 200g", 3.50, 5)

	detail, err := products.Detail(p.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.AverageScore != "0.00" {
		t.Fatalf("expected default average 0.00, got %s", detail.AverageScore)
	}

	for _, score := range []float64{4.0, 5.0} {
		if _, err := reviews.AddRating(1, p.ID, RatingInput{Score: score}); err != nil {
			t.Fatalf("add rating: %v", err)
		}
	}

	detail, err = products.Detail(p.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.AverageScore != "4.50" {
		t.Fatalf("expected average 4.50, got %s", detail.AverageScore)
	}
	if len(detail.Ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(detail.Ratings))
	}
}

func TestAddCommentRequiresMessageAndProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewProductRepository(db))
	p := createProduct(t, db, "Suco 1L", 9.00, 5)

	if _, err := svc.AddComment(1, p.ID, CommentInput{Message: "   "}); err == nil {
		t.Fatalf("expected validation error for blank message")
	}
	if _, err := svc.AddComment(1, 999, CommentInput{Message: "Ótimo"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	comment, err := svc.AddComment(1, p.ID, CommentInput{Message: "Ótimo produto"})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.UserID != 1 || comment.ProductID != p.ID {
		t.Fatalf("user/product not attached: %+v", comment)
	}
}
