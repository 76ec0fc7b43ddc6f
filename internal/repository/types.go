package repository

// ProductListFilter filters the product listing.
type ProductListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// OrderListFilter filters the order listing.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// UserListFilter filters the user listing.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}
