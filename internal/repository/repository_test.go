package repository

import (
	"testing"

	"github.com/compravenda/api/internal/models"

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
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Description: "Arroz 5kg",
		Price:       models.NewMoneyFromFloat(21.90),
		Stock:       stock,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestProductAdjustStockDecrement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	p := createTestProduct(t, db, 10)

	affected, err := repo.AdjustStock(p.ID, -4)
	if err != nil {
		t.Fatalf("adjust stock: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Stock != 6 {
		t.Fatalf("expected stock 6, got %d", got.Stock)
	}
}

func TestProductAdjustStockInsufficient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	p := createTestProduct(t, db, 3)

	affected, err := repo.AdjustStock(p.ID, -5)
	if err != nil {
		t.Fatalf("adjust stock: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected no rows affected, got %d", affected)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Stock != 3 {
		t.Fatalf("stock must be untouched, got %d", got.Stock)
	}
}

func TestProductAdjustStockRestock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	p := createTestProduct(t, db, 2)

	affected, err := repo.AdjustStock(p.ID, 7)
	if err != nil {
		t.Fatalf("adjust stock: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Stock != 9 {
		t.Fatalf("expected stock 9, got %d", got.Stock)
	}
}

func TestCartGetActiveByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)

	active := &models.Cart{UserID: 1, Total: models.NewMoneyFromFloat(10)}
	if err := repo.Create(active); err != nil {
		t.Fatalf("create cart: %v", err)
	}
	orderID := uint(42)
	closed := &models.Cart{UserID: 1, OrderID: &orderID}
	if err := repo.Create(closed); err != nil {
		t.Fatalf("create cart: %v", err)
	}

	got, err := repo.GetActiveByUser(1)
	if err != nil {
		t.Fatalf("get active cart: %v", err)
	}
	if got == nil || got.ID != active.ID {
		t.Fatalf("expected active cart %d, got %+v", active.ID, got)
	}

	none, err := repo.GetActiveByUser(2)
	if err != nil {
		t.Fatalf("get active cart: %v", err)
	}
	if none != nil {
		t.Fatalf("expected no active cart for user 2, got %+v", none)
	}
}

func TestCartDeleteRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	p := createTestProduct(t, db, 5)

	cart := &models.Cart{UserID: 1}
	if err := repo.Create(cart); err != nil {
		t.Fatalf("create cart: %v", err)
	}
	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: p.ID,
		Quantity:  2,
		UnitPrice: p.Price,
		Total:     models.NewMoneyFromFloat(43.80),
	}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := repo.Delete(cart); err != nil {
		t.Fatalf("delete cart: %v", err)
	}

	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items after delete, got %d", len(items))
	}
}

func TestOrderListFiltersByUserAndStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	for _, o := range []*models.Order{
		{UserID: 1, Status: "Aberto"},
		{UserID: 1, Status: "Enviado"},
		{UserID: 2, Status: "Aberto"},
	} {
		if err := repo.Create(o); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	orders, total, err := repo.List(OrderListFilter{UserID: 1, Status: "Aberto"})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("expected 1 order, got total=%d len=%d", total, len(orders))
	}
	if orders[0].UserID != 1 || orders[0].Status != "Aberto" {
		t.Fatalf("unexpected order %+v", orders[0])
	}
}

func TestReviewAverageRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	p := createTestProduct(t, db, 1)

	avg, count, err := repo.AverageRating(p.ID)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 0 || count != 0 {
		t.Fatalf("expected empty average, got avg=%v count=%d", avg, count)
	}

	for _, score := range []float64{3.0, 4.0, 5.0} {
		if err := repo.CreateRating(&models.Rating{ProductID: p.ID, UserID: 1, Score: score}); err != nil {
			t.Fatalf("create rating: %v", err)
		}
	}

	avg, count, err = repo.AverageRating(p.ID)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 ratings, got %d", count)
	}
	if avg != 4.0 {
		t.Fatalf("expected average 4.0, got %v", avg)
	}
}

func TestUserGetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	u := &models.User{Username: "maria", PasswordHash: "x", Email: "maria@example.com"}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := repo.GetByUsername("maria")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("expected user %d, got %+v", u.ID, got)
	}

	missing, err := repo.GetByUsername("joao")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user, got %+v", missing)
	}
}
