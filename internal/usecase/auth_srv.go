package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/dto/response"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"
	"github.com/Alexandra1624/infra-sp2/pkg/mailer"
	"github.com/Alexandra1624/infra-sp2/pkg/token"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// SignUp creates or refreshes an identity and sends a confirmation code
	// to the given address. Calling it again with the same pair is not an
	// error: the code is simply regenerated.
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error)
	// Verify exchanges a (username, confirmation code) pair for an access token.
	Verify(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	issuer *token.Issuer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Mailer,
	issuer *token.Issuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		issuer: issuer,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign up validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Username == entity.MeUsername {
		return nil, apperr.Validation("username %q is reserved", entity.MeUsername)
	}

	byUsername, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Internal("failed to check username", err)
	}

	byEmail, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("failed to check email", err)
	}

	// The (email, username) pair is checked as a whole: re-requesting for an
	// existing pair regenerates the code, but claiming either half of
	// somebody else's identity is a conflict.
	user := byUsername
	switch {
	case byUsername == nil && byEmail == nil:
		user, err = s.createUser(ctx, req.Email, req.Username)
		if err != nil {
			return nil, err
		}
	case byUsername == nil || byEmail == nil || byUsername.ID != byEmail.ID:
		return nil, apperr.Conflict("username or email already taken")
	}

	code := uuid.NewString()
	if err := s.repo.User.SetConfirmationCode(ctx, user.ID, &code); err != nil {
		s.log.Error("Failed to store confirmation code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("failed to store confirmation code", err)
	}

	subject := "Your confirmation code"
	body := fmt.Sprintf("Your confirmation code: %s", code)
	if err := s.mail.Send(ctx, user.Email, subject, body); err != nil {
		// The identity row stays; a repeated sign-up re-issues the code.
		s.log.Error("Failed to deliver confirmation code",
			zap.Error(err), zap.String("email", user.Email))
		return nil, apperr.Delivery("failed to deliver confirmation code", err)
	}

	s.log.Info("Confirmation code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &response.SignUpResponse{
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *authService) Verify(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for verification",
			zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.Internal("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", req.Username)
	}

	if req.ConfirmationCode == "" {
		return nil, apperr.Validation("a confirmation_code is required to log in")
	}

	// Exact opaque comparison, no normalization.
	if user.ConfirmationCode == nil || *user.ConfirmationCode != req.ConfirmationCode {
		s.log.Warn("Confirmation code mismatch", zap.String("username", req.Username))
		return nil, apperr.Authentication("confirmation code is invalid")
	}

	accessToken, err := s.issuer.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("failed to issue token", err)
	}

	// Consume the code so it cannot be replayed.
	if err := s.repo.User.SetConfirmationCode(ctx, user.ID, nil); err != nil {
		s.log.Error("Failed to clear confirmation code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("failed to clear confirmation code", err)
	}

	s.log.Info("User verified",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &response.TokenResponse{Token: accessToken}, nil
}

func (s *authService) createUser(ctx context.Context, email, username string) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username: username,
		Email:    email,
		Role:     entity.RoleUser,
	}
	user.Normalize()

	if err := s.repo.User.Create(ctx, user); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			// Lost a race with a concurrent sign-up for the same identity.
			return nil, err
		}
		s.log.Error("Failed to create user",
			zap.Error(err), zap.String("email", email), zap.String("username", username))
		return nil, apperr.Internal("failed to create account", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
	)

	return user, nil
}
