package request

type LoginRequest struct {
	UserID   int64  `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type RegisterCustomerRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Username   string `json:"username" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Gender     string `json:"gender" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Occupation string `json:"occupation" validate:"required"`
}

type RegisterAdminRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Username  string  `json:"username" validate:"required,min=3"`
	Email     string  `json:"email" validate:"required,email"`
	Gender    string  `json:"gender" validate:"required"`
	Address   string  `json:"address" validate:"required"`
	Salary    float64 `json:"salary" validate:"required,gt=0"`
}
