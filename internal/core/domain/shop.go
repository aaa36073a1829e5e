package domain

// Shop is the tenant-isolation boundary. Every transaction, customer and
// setting record scopes to exactly one shop.
type Shop struct {
	ShopID      string `json:"shopID"`
	Name        string `json:"name"`
	OwnerUserID string `json:"ownerUserID"`
	AuditFields
}
