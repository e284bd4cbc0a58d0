package entity

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
	RoleUnknown  UserRole = "unknown"
)

type User struct {
	ID        int64     `db:"user_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Gender    string    `db:"gender"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

// UserDetail resolves the disjoint role tables: exactly one of Salary
// (Admin) or Occupation (Customer) is set.
type UserDetail struct {
	User
	Role       UserRole
	Salary     *float64
	Occupation *string
	CardCount  int
}
