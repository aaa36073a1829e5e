package dto

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	ShopID    string `json:"shopId,omitempty"`
	ExpiresIn int64  `json:"expiresIn"`
}
