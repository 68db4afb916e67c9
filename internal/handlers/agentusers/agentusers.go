package agentusers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/dto"
	"github.com/nexilab/agent-credit/pkg/auth"
	"github.com/nexilab/agent-credit/pkg/utils"
	"github.com/nexilab/agent-credit/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, mobile, email, name string, credit decimal.Decimal) (*domain.AgentUser, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.AgentUser, error)
	GetByID(ctx context.Context, id string) (*domain.AgentUser, error)
	List(ctx context.Context, skip, limit int) ([]domain.AgentUser, int, error)
	Update(ctx context.Context, mobile, email, name string) (*domain.AgentUser, error)
	Delete(ctx context.Context, mobile string) error
}

type LedgerService interface {
	AddCredit(ctx context.Context, userID string, amount decimal.Decimal, description string, createdBy *string) (*domain.CreditEvent, error)
}

type HistoryService interface {
	UserHistory(ctx context.Context, mobile string, skip, limit int) ([]domain.CreditEvent, int, error)
}

type AgentUserHandler struct {
	userService    Service
	ledgerService  LedgerService
	historyService HistoryService
}

func New(userService Service, ledgerService LedgerService, historyService HistoryService) *AgentUserHandler {
	return &AgentUserHandler{
		userService:    userService,
		ledgerService:  ledgerService,
		historyService: historyService,
	}
}

func (h *AgentUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AgentUserCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), req.Mobile, req.Email, req.Name, req.Credit)
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
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAgentUserResponse(user))
}

func (h *AgentUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")

	user, err := h.userService.GetByMobile(r.Context(), mobile)
	if err != nil {
		respondUserErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAgentUserResponse(user))
}

func (h *AgentUserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		respondUserErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAgentUserResponse(user))
}

func (h *AgentUserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.ParsePagination(r)

	users, total, err := h.userService.List(r.Context(), skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.AgentUsersListResponseDTO{
		Users: make([]dto.AgentUserResponseDTO, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewAgentUserResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AgentUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")

	var req dto.AgentUserUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(r.Context(), mobile, req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrDuplicateEmail):
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAgentUserResponse(user))
}

func (h *AgentUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")

	if err := h.userService.Delete(r.Context(), mobile); err != nil {
		respondUserErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *AgentUserHandler) Credit(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")

	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount.IsZero() {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be non-zero")
		return
	}

	user, err := h.userService.GetByMobile(r.Context(), mobile)
	if err != nil {
		respondUserErr(w, err)
		return
	}

	createdBy := adminFromContext(r.Context())
	event, err := h.ledgerService.AddCredit(r.Context(), user.ID, req.Amount, req.Description, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInsufficientCredit):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient credit")
		case errors.Is(err, domain.ErrLockTimeout):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Account busy, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

func (h *AgentUserHandler) History(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")
	skip, limit := utils.ParsePagination(r)

	events, total, err := h.historyService.UserHistory(r.Context(), mobile, skip, limit)
	if err != nil {
		respondUserErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventsListResponse(events, total))
}

func respondUserErr(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func adminFromContext(ctx context.Context) *string {
	if id, ok := auth.AdminIDFromContext(ctx); ok {
		return &id
	}
	return nil
}
