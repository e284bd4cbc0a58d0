package usecase

import (
	"context"
	"fmt"
	"time"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/internal/dto/request"
	"srent/internal/dto/response"
	"srent/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles registration, login and session lifecycle.
// Login resolves the user by id and username, then derives the role
// from the disjoint admin and customer tables.
type AuthService interface {
	RegisterCustomer(ctx context.Context, req *request.RegisterCustomerRequest) (*response.UserResponse, error)
	RegisterAdmin(ctx context.Context, req *request.RegisterAdminRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, token uuid.UUID) error
}

type authService struct {
	repo        *repository.Repository
	log         *zap.Logger
	expiryHours int
}

func NewAuthService(repo *repository.Repository, log *zap.Logger, expiryHours int) AuthService {
	return &authService{
		repo:        repo,
		log:         log.With(zap.String("service", "auth")),
		expiryHours: expiryHours,
	}
}

func (s *authService) RegisterCustomer(ctx context.Context, req *request.RegisterCustomerRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Gender:    req.Gender,
		Address:   req.Address,
	}

	if err := s.register(ctx, user, func(ctx context.Context) error {
		return s.repo.User.CreateCustomer(ctx, user, req.Occupation)
	}); err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) RegisterAdmin(ctx context.Context, req *request.RegisterAdminRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register admin validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Gender:    req.Gender,
		Address:   req.Address,
	}

	if err := s.register(ctx, user, func(ctx context.Context) error {
		return s.repo.User.CreateAdmin(ctx, user, req.Salary)
	}); err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) register(ctx context.Context, user *entity.User, create func(context.Context) error) error {
	taken, err := s.repo.User.EmailRegistered(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("check email %s: %w", user.Email, err)
	}
	if taken {
		return fmt.Errorf("email %s: %w", user.Email, ErrEmailTaken)
	}

	if err := create(ctx); err != nil {
		s.log.Error("Failed to register user", zap.Error(err), zap.String("email", user.Email))
		return fmt.Errorf("register user: %w", err)
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByIDAndUsername(ctx, req.UserID, req.Username)
	if err != nil {
		return nil, fmt.Errorf("login user %d: %w", req.UserID, err)
	}
	if user == nil {
		s.log.Warn("Login rejected",
			zap.Int64("user_id", req.UserID),
			zap.String("username", req.Username),
		)
		return nil, ErrLoginFailed
	}

	role, err := s.repo.User.RoleOf(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve role for user %d: %w", user.ID, err)
	}
	if role == entity.RoleUnknown {
		return nil, fmt.Errorf("user %d: %w", user.ID, ErrNoRole)
	}

	now := time.Now()
	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		Role:      role,
		ExpiresAt: now.Add(time.Duration(s.expiryHours) * time.Hour),
		CreatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(role)),
	)

	return &response.LoginResponse{
		Token:     session.Token.String(),
		UserID:    user.ID,
		Role:      string(role),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token uuid.UUID) error {
	if err := s.repo.Session.Delete(ctx, token); err != nil {
		s.log.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
