package service

import (
	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/models"
	"github.com/compravenda/api/internal/queue"
	"github.com/compravenda/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService rebuilds carts against live stock. Every mutation runs in
// a single transaction so stock, items and totals never drift apart.
type CartService struct {
	cartRepo          repository.CartRepository
	productRepo       repository.ProductRepository
	queueClient       *queue.Client
	lowStockThreshold int
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, queueClient *queue.Client, lowStockThreshold int) *CartService {
	return &CartService{
		cartRepo:          cartRepo,
		productRepo:       productRepo,
		queueClient:       queueClient,
		lowStockThreshold: lowStockThreshold,
	}
}

// CartItemInput is one requested product line.
type CartItemInput struct {
	ProductID uint `json:"produto" binding:"required"`
	Quantity  int  `json:"quantidade" binding:"required,gt=0"`
}

// Checkout replaces the user's active cart with one built from items.
// A previous active cart has its stock returned before being discarded,
// so retrying a failed checkout never leaks reservations.
func (s *CartService) Checkout(userID uint, items []CartItemInput) (*models.Cart, error) {
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	var created *models.Cart
	var touched []stockChange
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		existing, err := cartRepo.GetActiveByUser(userID)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := restockCart(productRepo, existing); err != nil {
				return err
			}
			if err := cartRepo.Delete(existing); err != nil {
				return err
			}
		}

		cart := &models.Cart{UserID: userID, Total: models.NewMoneyFromDecimal(decimal.Zero)}
		if err := cartRepo.Create(cart); err != nil {
			return err
		}

		changes, err := fillCart(cartRepo, productRepo, cart, items)
		if err != nil {
			return err
		}
		created = cart
		touched = changes
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.alertLowStock(touched)
	return created, nil
}

// Replace rebuilds an existing cart from items. The cart must belong to
// the user and must not be attached to an order yet.
func (s *CartService) Replace(userID, cartID uint, items []CartItemInput) (*models.Cart, error) {
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	var updated *models.Cart
	var touched []stockChange
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		cart, err := cartRepo.GetByID(cartID)
		if err != nil {
			return err
		}
		if cart == nil || cart.UserID != userID {
			return ErrCartNotFound
		}
		if !cart.IsActive() {
			return ErrCartAlreadyOrdered
		}

		if err := restockCart(productRepo, cart); err != nil {
			return err
		}
		if err := cartRepo.DeleteItems(cart.ID); err != nil {
			return err
		}
		cart.Items = nil
		cart.Total = models.NewMoneyFromDecimal(decimal.Zero)

		changes, err := fillCart(cartRepo, productRepo, cart, items)
		if err != nil {
			return err
		}
		updated = cart
		touched = changes
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.alertLowStock(touched)
	return updated, nil
}

// Get returns a cart owned by the user.
func (s *CartService) Get(userID, cartID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.UserID != userID {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// GetActive returns the user's cart not yet attached to an order.
func (s *CartService) GetActive(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// Delete discards a cart, returning its items to stock. Carts already
// attached to an order cannot be deleted.
func (s *CartService) Delete(userID, cartID uint) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		cart, err := cartRepo.GetByID(cartID)
		if err != nil {
			return err
		}
		if cart == nil || cart.UserID != userID {
			return ErrCartNotFound
		}
		if !cart.IsActive() {
			return ErrCartAlreadyOrdered
		}
		if err := restockCart(productRepo, cart); err != nil {
			return err
		}
		return cartRepo.Delete(cart)
	})
}

// stockChange records a decrement applied during reconciliation so low
// stock alerts can be raised after the transaction commits.
type stockChange struct {
	productID uint
	remaining int
}

// fillCart creates one item per input line, decrementing stock as it
// goes. The conditional update in AdjustStock is the stock guard: a
// miss means another transaction drained the product first.
func fillCart(cartRepo *repository.GormCartRepository, productRepo *repository.GormProductRepository, cart *models.Cart, items []CartItemInput) ([]stockChange, error) {
	total := decimal.Zero
	changes := make([]stockChange, 0, len(items))
	for _, line := range items {
		if line.Quantity <= 0 {
			return nil, &ValidationError{Message: "A quantidade deve ser maior que zero."}
		}
		product, err := productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}

		affected, err := productRepo.AdjustStock(product.ID, -line.Quantity)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, &OutOfStockError{
				ProductID: product.ID,
				Requested: line.Quantity,
				Available: product.Stock,
			}
		}

		lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Total:     models.NewMoneyFromDecimal(lineTotal),
		}
		if err := cartRepo.CreateItem(item); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, *item)
		total = total.Add(lineTotal)
		changes = append(changes, stockChange{productID: product.ID, remaining: product.Stock - line.Quantity})
	}

	cart.Total = models.NewMoneyFromDecimal(total)
	if err := cartRepo.UpdateTotal(cart.ID, cart.Total); err != nil {
		return nil, err
	}
	return changes, nil
}

// restockCart returns every item of the cart to product stock.
func restockCart(productRepo *repository.GormProductRepository, cart *models.Cart) error {
	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			continue
		}
		if _, err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// alertLowStock enqueues an alert for every product that crossed the
// threshold. Failures only log: the cart mutation already committed.
func (s *CartService) alertLowStock(changes []stockChange) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	for _, change := range changes {
		if s.lowStockThreshold <= 0 || change.remaining > s.lowStockThreshold {
			continue
		}
		err := s.queueClient.EnqueueProductLowStock(queue.ProductLowStockPayload{
			ProductID: change.productID,
			Stock:     change.remaining,
		})
		if err != nil {
			logger.Warnw("enqueue low stock alert failed", "product_id", change.productID, "error", err)
		}
	}
}
