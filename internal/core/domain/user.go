package domain

// UserRole controls the reporting scope a user may request.
type UserRole string

const (
	// RoleAdmin manages a single shop.
	RoleAdmin UserRole = "admin"
	// RoleSuperAdmin may aggregate reports across all shops.
	RoleSuperAdmin UserRole = "superadmin"
)

// User is the authentication principal for the HTTP surface.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	ShopID       string   `json:"shopID,omitempty"`
	AuditFields
}
