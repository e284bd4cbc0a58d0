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

	"go.uber.org/zap"
)

// UserService covers user queries and payment card management. Card
// writes always verify the holder first so a card can never be linked
// to a user that does not exist.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (*response.UserDetailResponse, error)
	ListByRole(ctx context.Context, role entity.UserRole) ([]response.UserResponse, error)
	SearchUsers(ctx context.Context, keyword string) ([]response.UserResponse, error)
	LatestUsers(ctx context.Context, limit int) ([]response.UserResponse, error)
	UsersWithCardCount(ctx context.Context) ([]response.UserDetailResponse, error)

	AddCard(ctx context.Context, userID int64, req *request.CardRequest) (*response.CardResponse, error)
	UpdateCard(ctx context.Context, cardID int64, req *request.CardRequest) error
	DeleteCard(ctx context.Context, cardID int64) error
	GetUserCards(ctx context.Context, userID int64) ([]response.CardResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*response.UserDetailResponse, error) {
	detail, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	if detail == nil {
		return nil, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}

	resp := response.UserDetailToResponse(detail)
	return &resp, nil
}

func (s *userService) ListByRole(ctx context.Context, role entity.UserRole) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindByRole(ctx, role)
	if err != nil {
		s.log.Error("Failed to list users by role", zap.Error(err), zap.String("role", string(role)))
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}
	return usersToResponses(users), nil
}

func (s *userService) SearchUsers(ctx context.Context, keyword string) ([]response.UserResponse, error) {
	users, err := s.repo.User.SearchByName(ctx, keyword)
	if err != nil {
		s.log.Error("Failed to search users", zap.Error(err), zap.String("keyword", keyword))
		return nil, fmt.Errorf("search users: %w", err)
	}
	return usersToResponses(users), nil
}

func (s *userService) LatestUsers(ctx context.Context, limit int) ([]response.UserResponse, error) {
	users, err := s.repo.User.Latest(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list latest users", zap.Error(err))
		return nil, fmt.Errorf("list latest users: %w", err)
	}
	return usersToResponses(users), nil
}

func (s *userService) UsersWithCardCount(ctx context.Context) ([]response.UserDetailResponse, error) {
	details, err := s.repo.User.WithCardCount(ctx)
	if err != nil {
		s.log.Error("Failed to list users with card count", zap.Error(err))
		return nil, fmt.Errorf("list users with card count: %w", err)
	}

	responses := make([]response.UserDetailResponse, len(details))
	for i, detail := range details {
		responses[i] = response.UserDetailToResponse(detail)
	}
	return responses, nil
}

func (s *userService) AddCard(ctx context.Context, userID int64, req *request.CardRequest) (*response.CardResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add card validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	holder, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check card holder %d: %w", userID, err)
	}
	if holder == nil {
		return nil, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}

	expDate, err := time.Parse(dateLayout, req.ExpDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expiry date %s", ErrValidation, req.ExpDate)
	}

	card := &entity.Card{
		UserID:     userID,
		Brand:      req.Brand,
		Number:     req.Number,
		ExpDate:    expDate,
		NameOnCard: req.NameOnCard,
	}

	if err := s.repo.Card.Create(ctx, card); err != nil {
		s.log.Error("Failed to add card", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("add card: %w", err)
	}

	s.log.Info("Card added", zap.Int64("card_id", card.ID), zap.Int64("user_id", userID))

	resp := response.CardToResponse(card)
	return &resp, nil
}

func (s *userService) UpdateCard(ctx context.Context, cardID int64, req *request.CardRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update card validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	expDate, err := time.Parse(dateLayout, req.ExpDate)
	if err != nil {
		return fmt.Errorf("%w: invalid expiry date %s", ErrValidation, req.ExpDate)
	}

	card := &entity.Card{
		ID:         cardID,
		Brand:      req.Brand,
		Number:     req.Number,
		ExpDate:    expDate,
		NameOnCard: req.NameOnCard,
	}

	if err := s.repo.Card.Update(ctx, card); err != nil {
		s.log.Error("Failed to update card", zap.Error(err), zap.Int64("card_id", cardID))
		return fmt.Errorf("update card %d: %w", cardID, err)
	}
	return nil
}

func (s *userService) DeleteCard(ctx context.Context, cardID int64) error {
	if err := s.repo.Card.Delete(ctx, cardID); err != nil {
		s.log.Error("Failed to delete card", zap.Error(err), zap.Int64("card_id", cardID))
		return fmt.Errorf("delete card %d: %w", cardID, err)
	}
	return nil
}

func (s *userService) GetUserCards(ctx context.Context, userID int64) ([]response.CardResponse, error) {
	cards, err := s.repo.Card.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user cards", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get cards for user %d: %w", userID, err)
	}

	responses := make([]response.CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = response.CardToResponse(card)
	}
	return responses, nil
}

func usersToResponses(users []*entity.User) []response.UserResponse {
	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}
	return responses
}
