package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/internal/usecase"
	"github.com/Alexandra1624/infra-sp2/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// SignUp handles POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "sign up")
		return
	}

	utils.ResponseSuccess(w, "Confirmation code sent", response)
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Verify(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, "Token issued successfully", response)
}
