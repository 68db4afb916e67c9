package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/dto"
	"github.com/nexilab/agent-credit/pkg/auth"
	"github.com/nexilab/agent-credit/pkg/utils"
	"github.com/nexilab/agent-credit/pkg/validate"
)

type Service interface {
	List(ctx context.Context, eventType, targetID string, skip, limit int) ([]domain.CreditEvent, int, error)
	Get(ctx context.Context, id string) (*domain.CreditEvent, error)
}

type RefundService interface {
	Refund(ctx context.Context, originalEventID, userID string, dryRun bool, createdBy *string) (*domain.CreditEvent, error)
}

type EventHandler struct {
	eventService  Service
	refundService RefundService
}

func New(eventService Service, refundService RefundService) *EventHandler {
	return &EventHandler{
		eventService:  eventService,
		refundService: refundService,
	}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.ParsePagination(r)
	eventType := r.URL.Query().Get("event_type")

	events, total, err := h.eventService.List(r.Context(), eventType, "", skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventsListResponse(events, total))
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventResponse(event))
}

func (h *EventHandler) Refund(w http.ResponseWriter, r *http.Request) {
	var req dto.RefundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var createdBy *string
	if id, ok := auth.AdminIDFromContext(r.Context()); ok {
		createdBy = &id
	}

	event, err := h.refundService.Refund(r.Context(), chi.URLParam(r, "id"), req.UserID, req.DryRun, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrAlreadyRefunded):
			utils.RespondWithError(w, http.StatusConflict, "Event already refunded")
		case errors.Is(err, domain.ErrLockTimeout):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Account busy, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.RefundResponseDTO{Success: true, Message: "Refund successful"}
	if req.DryRun {
		resp.Message = "Dry run successful"
	}
	if event != nil {
		e := dto.NewEventResponse(event)
		resp.Event = &e
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
