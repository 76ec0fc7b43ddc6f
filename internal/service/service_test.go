package service

import (
	"testing"

	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Cart{},
		&models.CartItem{},
		&models.Rating{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	models.DB = db
	return db
}

func createProduct(t *testing.T, db *gorm.DB, description string, price float64, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Description: description,
		Price:       models.NewMoneyFromFloat(price),
		Stock:       stock,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		nil,
		0,
	)
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		nil,
	)
}
