package cmsusers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/dto"
	"github.com/nexilab/agent-credit/pkg/utils"
	"github.com/nexilab/agent-credit/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, mobile, email, name string) (*domain.CMSUser, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.CMSUser, error)
	List(ctx context.Context, skip, limit int) ([]domain.CMSUser, int, error)
	Update(ctx context.Context, mobile, email, name string) (*domain.CMSUser, error)
	Delete(ctx context.Context, mobile string) error
}

type CMSUserHandler struct {
	userService Service
}

func New(userService Service) *CMSUserHandler {
	return &CMSUserHandler{
		userService: userService,
	}
}

func (h *CMSUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CMSUserCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), req.Mobile, req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateMobile):
			utils.RespondWithError(w, http.StatusConflict, "Mobile number already registered")
		case errors.Is(err, domain.ErrDuplicateEmail):
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCMSUserResponse(user))
}

func (h *CMSUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByMobile(r.Context(), chi.URLParam(r, "mobile"))
	if err != nil {
		respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCMSUserResponse(user))
}

func (h *CMSUserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.ParsePagination(r)

	users, total, err := h.userService.List(r.Context(), skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.CMSUsersListResponseDTO{
		Users: make([]dto.CMSUserResponseDTO, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewCMSUserResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CMSUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CMSUserUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(r.Context(), chi.URLParam(r, "mobile"), req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCMSUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrDuplicateEmail):
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCMSUserResponse(user))
}

func (h *CMSUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "mobile")); err != nil {
		respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func respondErr(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrCMSUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
