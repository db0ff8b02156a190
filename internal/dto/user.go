package dto

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public identity summary; never carries the password hash.
type UserResponse struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// AuthData is the payload returned by register and login.
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
