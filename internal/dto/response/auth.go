package response

import (
	"time"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
