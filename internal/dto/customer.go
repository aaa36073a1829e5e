package dto

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	ShopID string `json:"shopId" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
}
