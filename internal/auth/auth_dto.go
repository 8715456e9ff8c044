package auth

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=120"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TenantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}
