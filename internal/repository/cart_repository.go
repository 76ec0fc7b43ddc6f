package repository

import (
	"errors"

	"github.com/compravenda/api/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id uint) (*models.Cart, error)
	GetActiveByUser(userID uint) (*models.Cart, error)
	ListByOrder(orderID uint) ([]models.Cart, error)
	ListByIDs(ids []uint) ([]models.Cart, error)
	UpdateTotal(id uint, total models.Money) error
	AttachToOrder(cartIDs []uint, orderID uint) error
	Delete(cart *models.Cart) error
	CreateItem(item *models.CartItem) error
	ListItems(cartID uint) ([]models.CartItem, error)
	DeleteItems(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Create inserts a cart.
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetByID fetches a cart with its items, nil when missing.
func (r *GormCartRepository) GetByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetActiveByUser finds the user's cart not yet attached to an order.
func (r *GormCartRepository) GetActiveByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").
		Where("user_id = ? AND order_id IS NULL", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListByOrder returns the carts attached to an order.
func (r *GormCartRepository) ListByOrder(orderID uint) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.Preload("Items").Where("order_id = ?", orderID).Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// ListByIDs fetches carts by primary key.
func (r *GormCartRepository) ListByIDs(ids []uint) ([]models.Cart, error) {
	if len(ids) == 0 {
		return []models.Cart{}, nil
	}
	var carts []models.Cart
	if err := r.db.Where("id IN ?", ids).Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// UpdateTotal writes the cart's total.
func (r *GormCartRepository) UpdateTotal(id uint, total models.Money) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", id).Update("total", total).Error
}

// AttachToOrder binds carts to an order in one statement.
func (r *GormCartRepository) AttachToOrder(cartIDs []uint, orderID uint) error {
	if len(cartIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.Cart{}).Where("id IN ?", cartIDs).Update("order_id", orderID).Error
}

// Delete removes a cart and its items.
func (r *GormCartRepository) Delete(cart *models.Cart) error {
	if cart == nil {
		return nil
	}
	if err := r.DeleteItems(cart.ID); err != nil {
		return err
	}
	return r.db.Delete(cart).Error
}

// CreateItem inserts a cart item.
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// ListItems returns a cart's items.
func (r *GormCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItems removes every item of a cart.
func (r *GormCartRepository) DeleteItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
