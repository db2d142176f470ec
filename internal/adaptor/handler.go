package adaptor

import (
	"net/http"

	"github.com/Alexandra1624/infra-sp2/internal/access"
	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/usecase"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// principalFromContext rebuilds the caller's identity from the values the
// auth middleware stored. Requests that skipped the middleware come out
// anonymous.
func principalFromContext(r *http.Request) access.Principal {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return access.Anonymous()
	}
	username, _ := utils.GetUsernameFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())

	return access.Principal{
		ID:            userID,
		Username:      username,
		Role:          entity.UserRole(role),
		Authenticated: true,
	}
}

// paginationFromQuery parses page/per_page query parameters with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}
	return req
}

// handleServiceError maps a service error to an HTTP response by its kind.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperr.KindAuthentication:
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case apperr.KindAuthorization:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case apperr.KindDelivery:
		log.Error(operation+" failed - delivery", zap.Error(err))
		utils.ResponseBadGateway(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
