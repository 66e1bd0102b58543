package models

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after a successful admin login
type AuthResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// AdminSession is the verified identity carried by a bearer token
type AdminSession struct {
	ID        string
	Username  string
	ExpiresAt int64
}
