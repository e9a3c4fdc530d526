package dto

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token issued on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
