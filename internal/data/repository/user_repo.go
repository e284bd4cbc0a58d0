package repository

import (
	"context"
	"errors"
	"fmt"

	"srent/internal/data/entity"
	"srent/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	// CreateCustomer and CreateAdmin insert the user row and its
	// disjoint role row in one transaction.
	CreateCustomer(ctx context.Context, user *entity.User, occupation string) error
	CreateAdmin(ctx context.Context, user *entity.User, salary float64) error

	RoleOf(ctx context.Context, userID int64) (entity.UserRole, error)
	EmailRegistered(ctx context.Context, email string) (bool, error)
	EmailOf(ctx context.Context, userID int64) (string, error)
	FindByIDAndUsername(ctx context.Context, userID int64, username string) (*entity.User, error)
	FindByID(ctx context.Context, userID int64) (*entity.UserDetail, error)
	FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error)
	SearchByName(ctx context.Context, keyword string) ([]*entity.User, error)
	Latest(ctx context.Context, limit int) ([]*entity.User, error)
	WithCardCount(ctx context.Context) ([]*entity.UserDetail, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) CreateCustomer(ctx context.Context, user *entity.User, occupation string) error {
	return r.create(ctx, user, `INSERT INTO customers (user_id, occupation) VALUES ($1, $2)`, occupation)
}

func (r *userRepository) CreateAdmin(ctx context.Context, user *entity.User, salary float64) error {
	return r.create(ctx, user, `INSERT INTO admins (user_id, salary) VALUES ($1, $2)`, salary)
}

func (r *userRepository) create(ctx context.Context, user *entity.User, roleInsert string, roleValue any) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin register transaction", zap.Error(err))
		return fmt.Errorf("begin register user: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, username, email, gender, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, created_at`,
		user.FirstName, user.LastName, user.Username, user.Email, user.Gender, user.Address,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		r.log.Error("Failed to insert user", zap.Error(err), zap.String("email", user.Email))
		return wrapDBError("insert user", err)
	}

	if _, err := tx.Exec(ctx, roleInsert, user.ID, roleValue); err != nil {
		r.log.Error("Failed to insert role row", zap.Error(err), zap.Int64("user_id", user.ID))
		return wrapDBError("insert role row", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit register", zap.Error(err))
		return fmt.Errorf("commit register user: %w", err)
	}

	r.log.Info("User registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	return nil
}

// RoleOf resolves the disjoint role tables; a user present in neither
// is reported as RoleUnknown rather than an error.
func (r *userRepository) RoleOf(ctx context.Context, userID int64) (entity.UserRole, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)`, userID,
	).Scan(&exists); err != nil {
		r.log.Error("Failed to check admin role", zap.Error(err), zap.Int64("user_id", userID))
		return entity.RoleUnknown, fmt.Errorf("check admin role for user %d: %w", userID, err)
	}
	if exists {
		return entity.RoleAdmin, nil
	}

	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE user_id = $1)`, userID,
	).Scan(&exists); err != nil {
		r.log.Error("Failed to check customer role", zap.Error(err), zap.Int64("user_id", userID))
		return entity.RoleUnknown, fmt.Errorf("check customer role for user %d: %w", userID, err)
	}
	if exists {
		return entity.RoleCustomer, nil
	}

	return entity.RoleUnknown, nil
}

func (r *userRepository) EmailRegistered(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists); err != nil {
		r.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("check email registered: %w", err)
	}
	return exists, nil
}

func (r *userRepository) EmailOf(ctx context.Context, userID int64) (string, error) {
	var email string
	err := r.db.QueryRow(ctx, `SELECT email FROM users WHERE user_id = $1`, userID).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to look up email", zap.Error(err), zap.Int64("user_id", userID))
		return "", fmt.Errorf("look up email for user %d: %w", userID, err)
	}
	return email, nil
}

func (r *userRepository) FindByIDAndUsername(ctx context.Context, userID int64, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(ctx, `
		SELECT user_id, first_name, last_name, username, email, gender, address, created_at
		FROM users
		WHERE user_id = $1 AND username = $2`,
		userID, username,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username,
		&user.Email, &user.Gender, &user.Address, &user.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}

	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, userID int64) (*entity.UserDetail, error) {
	var detail entity.UserDetail
	err := r.db.QueryRow(ctx, `
		SELECT u.user_id, u.first_name, u.last_name, u.username, u.email, u.gender, u.address, u.created_at,
		       a.salary, c.occupation
		FROM users u
		LEFT JOIN admins a ON u.user_id = a.user_id
		LEFT JOIN customers c ON u.user_id = c.user_id
		WHERE u.user_id = $1`,
		userID,
	).Scan(&detail.ID, &detail.FirstName, &detail.LastName, &detail.Username,
		&detail.Email, &detail.Gender, &detail.Address, &detail.CreatedAt,
		&detail.Salary, &detail.Occupation)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user detail", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find user detail %d: %w", userID, err)
	}

	switch {
	case detail.Salary != nil:
		detail.Role = entity.RoleAdmin
	case detail.Occupation != nil:
		detail.Role = entity.RoleCustomer
	default:
		detail.Role = entity.RoleUnknown
	}

	return &detail, nil
}

func (r *userRepository) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	roleTable := "customers"
	if role == entity.RoleAdmin {
		roleTable = "admins"
	}

	// Table name comes from the two-value switch above, never from input.
	query := fmt.Sprintf(`
		SELECT u.user_id, u.first_name, u.last_name, u.username, u.email, u.gender, u.address, u.created_at
		FROM users u
		JOIN %s t ON u.user_id = t.user_id
		ORDER BY u.user_id`, roleTable)

	return r.queryUsers(ctx, query)
}

func (r *userRepository) SearchByName(ctx context.Context, keyword string) ([]*entity.User, error) {
	return r.queryUsers(ctx, `
		SELECT user_id, first_name, last_name, username, email, gender, address, created_at
		FROM users
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY user_id`,
		"%"+keyword+"%",
	)
}

func (r *userRepository) Latest(ctx context.Context, limit int) ([]*entity.User, error) {
	return r.queryUsers(ctx, `
		SELECT user_id, first_name, last_name, username, email, gender, address, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
}

func (r *userRepository) WithCardCount(ctx context.Context) ([]*entity.UserDetail, error) {
	query := `
		SELECT u.user_id, u.first_name, u.last_name, u.username, u.email, u.gender, u.address, u.created_at,
		       COUNT(b.card_id) AS card_count
		FROM users u
		LEFT JOIN brings b ON u.user_id = b.user_id
		GROUP BY u.user_id
		ORDER BY card_count DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query users with card count", zap.Error(err))
		return nil, fmt.Errorf("query users with card count: %w", err)
	}
	defer rows.Close()

	var details []*entity.UserDetail
	for rows.Next() {
		var detail entity.UserDetail
		err := rows.Scan(&detail.ID, &detail.FirstName, &detail.LastName, &detail.Username,
			&detail.Email, &detail.Gender, &detail.Address, &detail.CreatedAt, &detail.CardCount)
		if err != nil {
			r.log.Error("Failed to scan card count row", zap.Error(err))
			return nil, fmt.Errorf("scan card count row: %w", err)
		}
		details = append(details, &detail)
	}

	return details, rows.Err()
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query users", zap.Error(err))
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username,
			&user.Email, &user.Gender, &user.Address, &user.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}
