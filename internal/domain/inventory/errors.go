package inventory

import "errors"

var (
	ErrItemNotFound      = errors.New("stock item not found")
	ErrInsufficientStock = errors.New("insufficient stock for sale")
	ErrPurchaseNotFound  = errors.New("purchase record not found")
	ErrSaleNotFound      = errors.New("sale record not found")
)
