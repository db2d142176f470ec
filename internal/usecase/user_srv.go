package usecase

import (
	"context"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/dto/response"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	// Self-service profile, keyed by the authenticated principal.
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Admin-only user management, keyed by username.
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteByUsername(ctx context.Context, username string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	// A submitted role is dropped, not rejected: the self-service path never
	// changes the caller's role, whatever it is.
	if req.Role != nil && entity.UserRole(*req.Role) != user.Role {
		us.log.Debug("Ignoring role change on self-service update",
			zap.String("user_id", userID.String()),
			zap.String("requested_role", *req.Role),
		)
	}

	user.Normalize()
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update profile",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("failed to update profile", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, apperr.Internal("failed to get users", err)
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, apperr.Internal("failed to count users", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (us *userService) GetByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := us.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Username == entity.MeUsername {
		return nil, apperr.Validation("username %q is reserved", entity.MeUsername)
	}

	role := entity.UserRole(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		Role:      role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}
	user.Normalize()

	if err := us.userRepo.Create(ctx, user); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, err
		}
		us.log.Error("Failed to create user",
			zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Internal("failed to create user", err)
	}

	us.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.findByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	user.Normalize()
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, err
		}
		us.log.Error("Failed to update user",
			zap.Error(err), zap.String("username", username))
		return nil, apperr.Internal("failed to update user", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) DeleteByUsername(ctx context.Context, username string) error {
	user, err := us.findByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := us.userRepo.Delete(ctx, user.ID); err != nil {
		us.log.Error("Failed to delete user",
			zap.Error(err), zap.String("username", username))
		return apperr.Internal("failed to delete user", err)
	}

	us.log.Info("User deleted",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username))
	return nil
}

func (us *userService) findByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

func (us *userService) findByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := us.userRepo.FindByUsername(ctx, username)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", username)
	}
	return user, nil
}
