package service

import (
	"errors"
	"testing"

	"github.com/compravenda/api/internal/models"
)

func TestCheckoutTotalsMatchItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	arroz := createProduct(t, db, "Arroz 5kg", 21.90, 10)
	feijao := createProduct(t, db, "Feijão 1kg", 8.50, 10)

	cart, err := svc.Checkout(1, []CartItemInput{
		{ProductID: arroz.ID, Quantity: 2},
		{ProductID: feijao.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cart.Items))
	}
	sum := models.NewMoneyFromFloat(0).Decimal
	for _, item := range cart.Items {
		sum = sum.Add(item.Total.Decimal)
	}
	if !sum.Equal(cart.Total.Decimal) {
		t.Fatalf("item totals %s do not match cart total %s", sum, cart.Total)
	}
	if cart.Total.String() != "69.30" {
		t.Fatalf("expected total 69.30, got %s", cart.Total)
	}
}

func TestCheckoutDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	p := createProduct(t, db, "Café 500g", 15.00, 8)

	if _, err := svc.Checkout(1, []CartItemInput{{ProductID: p.ID, Quantity: 5}}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	var got models.Product
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if got.Stock != 3 {
		t.Fatalf("expected stock 3, got %d", got.Stock)
	}
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	arroz := createProduct(t, db, "Arroz 5kg", 21.90, 10)
	cafe := createProduct(t, db, "Café 500g", 15.00, 2)

	_, err := svc.Checkout(1, []CartItemInput{
		{ProductID: arroz.ID, Quantity: 4},
		{ProductID: cafe.ID, Quantity: 5},
	})
	var oos *OutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("expected out of stock error, got %v", err)
	}
	if oos.ProductID != cafe.ID || oos.Requested != 5 || oos.Available != 2 {
		t.Fatalf("unexpected out of stock detail: %+v", oos)
	}

	// The whole reconciliation rolls back: the first line's decrement
	// must not survive the failure.
	var got models.Product
	if err := db.First(&got, arroz.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if got.Stock != 10 {
		t.Fatalf("expected stock restored to 10, got %d", got.Stock)
	}
	var carts int64
	if err := db.Model(&models.Cart{}).Count(&carts).Error; err != nil {
		t.Fatalf("count carts: %v", err)
	}
	if carts != 0 {
		t.Fatalf("expected no carts after rollback, got %d", carts)
	}
}

func TestCheckoutReplacesPriorCartAndRestoresStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	p := createProduct(t, db, "Leite 1L", 5.00, 10)

	first, err := svc.Checkout(1, []CartItemInput{{ProductID: p.ID, Quantity: 6}})
	if err != nil {
		t.Fatalf("first checkout: %v", err)
	}

	second, err := svc.Checkout(1, []CartItemInput{{ProductID: p.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("second checkout: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected a new cart to replace the old one")
	}

	var got models.Product
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if got.Stock != 8 {
		t.Fatalf("expected stock 8 after replacement, got %d", got.Stock)
	}

	if _, err := svc.Get(1, first.ID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected prior cart to be gone, got %v", err)
	}
}

func TestReplaceRebuildsCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	arroz := createProduct(t, db, "Arroz 5kg", 21.90, 10)
	feijao := createProduct(t, db, "Feijão 1kg", 8.50, 10)

	cart, err := svc.Checkout(1, []CartItemInput{{ProductID: arroz.ID, Quantity: 3}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	updated, err := svc.Replace(1, cart.ID, []CartItemInput{{ProductID: feijao.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.ID != cart.ID {
		t.Fatalf("replace must keep the same cart id")
	}
	if len(updated.Items) != 1 || updated.Items[0].ProductID != feijao.ID {
		t.Fatalf("unexpected items after replace: %+v", updated.Items)
	}
	if updated.Total.String() != "17.00" {
		t.Fatalf("expected total 17.00, got %s", updated.Total)
	}

	var gotArroz models.Product
	if err := db.First(&gotArroz, arroz.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if gotArroz.Stock != 10 {
		t.Fatalf("expected arroz stock restored to 10, got %d", gotArroz.Stock)
	}
}

func TestReplaceRejectsOrderedCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	p := createProduct(t, db, "Açúcar 1kg", 4.00, 10)

	cart, err := svc.Checkout(1, []CartItemInput{{ProductID: p.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	orders := newOrderService(db)
	if _, err := orders.Create(1, []uint{cart.ID}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := svc.Replace(1, cart.ID, []CartItemInput{{ProductID: p.ID, Quantity: 2}}); !errors.Is(err, ErrCartAlreadyOrdered) {
		t.Fatalf("expected ErrCartAlreadyOrdered, got %v", err)
	}
}

func TestDeleteCartRestoresStock(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	p := createProduct(t, db, "Óleo 900ml", 7.50, 10)

	cart, err := svc.Checkout(1, []CartItemInput{{ProductID: p.ID, Quantity: 4}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if err := svc.Delete(1, cart.ID); err != nil {
		t.Fatalf("delete cart: %v", err)
	}

	var got models.Product
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if got.Stock != 10 {
		t.Fatalf("expected stock restored to 10, got %d", got.Stock)
	}
}

func TestCheckoutRejectsEmptyAndForeignCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	p := createProduct(t, db, "Sal 1kg", 2.00, 5)

	if _, err := svc.Checkout(1, nil); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	cart, err := svc.Checkout(1, []CartItemInput{{ProductID: p.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := svc.Get(2, cart.ID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound for other user, got %v", err)
	}
}
