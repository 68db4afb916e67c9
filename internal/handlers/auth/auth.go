package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/dto"
	pkgauth "github.com/nexilab/agent-credit/pkg/auth"
	"github.com/nexilab/agent-credit/pkg/utils"
	"github.com/nexilab/agent-credit/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.AdminUser, error)
	Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error)
	GenerateToken(adminID string) (string, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	token, err := h.authService.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminRegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			utils.RespondWithError(w, http.StatusConflict, "Username already registered")
		case errors.Is(err, domain.ErrDuplicateEmail):
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AdminResponseDTO{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		IsActive: admin.IsActive,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := pkgauth.AdminIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	admin, err := h.authService.GetByID(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminResponseDTO{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		IsActive: admin.IsActive,
	})
}
