package dto

// AdminLoginRequest carries the back-office password.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse returns a bearer token.
type AdminLoginResponse struct {
	Token string `json:"token"`
}
