package response

import (
	"time"

	"srent/internal/data/entity"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type UserDetailResponse struct {
	UserResponse
	Role       string   `json:"role"`
	Salary     *float64 `json:"salary,omitempty"`
	Occupation *string  `json:"occupation,omitempty"`
	CardCount  int      `json:"card_count"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		Gender:    user.Gender,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}
}

func UserDetailToResponse(detail *entity.UserDetail) UserDetailResponse {
	return UserDetailResponse{
		UserResponse: UserToResponse(&detail.User),
		Role:         string(detail.Role),
		Salary:       detail.Salary,
		Occupation:   detail.Occupation,
		CardCount:    detail.CardCount,
	}
}
