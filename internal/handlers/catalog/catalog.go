package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/nexilab/agent-credit/internal/domain"
	"github.com/nexilab/agent-credit/internal/dto"
	"github.com/nexilab/agent-credit/internal/service/ledgerservice"
	"github.com/nexilab/agent-credit/pkg/auth"
	"github.com/nexilab/agent-credit/pkg/utils"
	"github.com/nexilab/agent-credit/pkg/validate"
)

type Service interface {
	CreateConsumable(ctx context.Context, name string, cost decimal.Decimal, metadata map[string]any) (*domain.Consumable, error)
	GetConsumable(ctx context.Context, id string) (*domain.Consumable, error)
	ListConsumables(ctx context.Context, skip, limit int) ([]domain.Consumable, int, error)
	UpdateConsumable(ctx context.Context, id, name string, cost *decimal.Decimal, metadata map[string]any) (*domain.Consumable, error)
	DeleteConsumable(ctx context.Context, id string) error
	CreatePurchasable(ctx context.Context, name string, price, creditAmount decimal.Decimal, metadata map[string]any) (*domain.Purchasable, error)
	GetPurchasable(ctx context.Context, id string) (*domain.Purchasable, error)
	ListPurchasables(ctx context.Context, skip, limit int) ([]domain.Purchasable, int, error)
	UpdatePurchasable(ctx context.Context, id, name string, price, creditAmount *decimal.Decimal, metadata map[string]any) (*domain.Purchasable, error)
	DeletePurchasable(ctx context.Context, id string) error
}

type LedgerService interface {
	ApplyConsumable(ctx context.Context, consumableID, userID string, count int, description string, createdBy *string) (*ledgerservice.ConsumableApplication, error)
	ApplyPurchasable(ctx context.Context, purchasableID, userID string, count int, description string, createdBy *string) (*ledgerservice.PurchasableApplication, error)
}

type CatalogHandler struct {
	catalogService Service
	ledgerService  LedgerService
}

func New(catalogService Service, ledgerService LedgerService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		ledgerService:  ledgerService,
	}
}

func (h *CatalogHandler) CreateConsumable(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsumableCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Cost.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "Cost must not be negative")
		return
	}

	consumable, err := h.catalogService.CreateConsumable(r.Context(), req.Name, req.Cost, req.Metadata)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewConsumableResponse(consumable))
}

func (h *CatalogHandler) GetConsumable(w http.ResponseWriter, r *http.Request) {
	consumable, err := h.catalogService.GetConsumable(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewConsumableResponse(consumable))
}

func (h *CatalogHandler) ListConsumables(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.ParsePagination(r)

	consumables, total, err := h.catalogService.ListConsumables(r.Context(), skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.ConsumablesListResponseDTO{
		Consumables: make([]dto.ConsumableResponseDTO, 0, len(consumables)),
		Total:       total,
	}
	for i := range consumables {
		resp.Consumables = append(resp.Consumables, dto.NewConsumableResponse(&consumables[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) UpdateConsumable(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsumableUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Cost != nil && req.Cost.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "Cost must not be negative")
		return
	}

	consumable, err := h.catalogService.UpdateConsumable(r.Context(), chi.URLParam(r, "id"), req.Name, req.Cost, req.Metadata)
	if err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewConsumableResponse(consumable))
}

func (h *CatalogHandler) DeleteConsumable(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteConsumable(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) ApplyConsumable(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeApply(w, r)
	if !ok {
		return
	}

	createdBy := adminFromContext(r.Context())
	res, err := h.ledgerService.ApplyConsumable(r.Context(), chi.URLParam(r, "id"), req.UserID, req.Count, req.Description, createdBy)
	if err != nil {
		respondApplyErr(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ApplyConsumableResponseDTO{
		Success: true,
		User: dto.ApplyUserDTO{
			ID:     res.User.ID,
			Name:   res.User.Name,
			Credit: res.User.Credit,
		},
		Consumable: dto.ApplyConsumableDTO{
			ID:    res.Consumable.ID,
			Name:  res.Consumable.Name,
			Cost:  res.Consumable.Cost,
			Count: res.Count,
		},
		Event: dto.ApplyEventDTO{
			ID:              res.Event.ID,
			Amount:          res.Event.Payload.Amount,
			PreviousBalance: res.Event.Payload.PreviousBalance,
			NewBalance:      res.Event.Payload.NewBalance,
		},
	})
}

func (h *CatalogHandler) CreatePurchasable(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchasableCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Price.IsNegative() || req.CreditAmount.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "Price and credit amount must not be negative")
		return
	}

	purchasable, err := h.catalogService.CreatePurchasable(r.Context(), req.Name, req.Price, req.CreditAmount, req.Metadata)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPurchasableResponse(purchasable))
}

func (h *CatalogHandler) GetPurchasable(w http.ResponseWriter, r *http.Request) {
	purchasable, err := h.catalogService.GetPurchasable(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPurchasableResponse(purchasable))
}

func (h *CatalogHandler) ListPurchasables(w http.ResponseWriter, r *http.Request) {
	skip, limit := utils.ParsePagination(r)

	purchasables, total, err := h.catalogService.ListPurchasables(r.Context(), skip, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.PurchasablesListResponseDTO{
		Purchasables: make([]dto.PurchasableResponseDTO, 0, len(purchasables)),
		Total:        total,
	}
	for i := range purchasables {
		resp.Purchasables = append(resp.Purchasables, dto.NewPurchasableResponse(&purchasables[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) UpdatePurchasable(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchasableUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if (req.Price != nil && req.Price.IsNegative()) || (req.CreditAmount != nil && req.CreditAmount.IsNegative()) {
		utils.RespondWithError(w, http.StatusBadRequest, "Price and credit amount must not be negative")
		return
	}

	purchasable, err := h.catalogService.UpdatePurchasable(r.Context(), chi.URLParam(r, "id"), req.Name, req.Price, req.CreditAmount, req.Metadata)
	if err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPurchasableResponse(purchasable))
}

func (h *CatalogHandler) DeletePurchasable(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeletePurchasable(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) ApplyPurchasable(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeApply(w, r)
	if !ok {
		return
	}

	createdBy := adminFromContext(r.Context())
	res, err := h.ledgerService.ApplyPurchasable(r.Context(), chi.URLParam(r, "id"), req.UserID, req.Count, req.Description, createdBy)
	if err != nil {
		respondApplyErr(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ApplyPurchasableResponseDTO{
		Success: true,
		User: dto.ApplyUserDTO{
			ID:     res.User.ID,
			Name:   res.User.Name,
			Credit: res.User.Credit,
		},
		Purchasable: dto.ApplyPurchasableDTO{
			ID:           res.Purchasable.ID,
			Name:         res.Purchasable.Name,
			Price:        res.Purchasable.Price,
			CreditAmount: res.Purchasable.CreditAmount,
			Count:        res.Count,
		},
		Event: dto.ApplyEventDTO{
			ID:              res.Event.ID,
			Amount:          res.Event.Payload.Amount,
			PreviousBalance: res.Event.Payload.PreviousBalance,
			NewBalance:      res.Event.Payload.NewBalance,
		},
	})
}

func decodeApply(w http.ResponseWriter, r *http.Request) (dto.ApplyRequestDTO, bool) {
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}

func respondCatalogErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrConsumableNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Consumable not found")
	case errors.Is(err, domain.ErrPurchasableNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Purchasable not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondApplyErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrConsumableNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Consumable not found")
	case errors.Is(err, domain.ErrPurchasableNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Purchasable not found")
	case errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, ledgerservice.ErrInvalidCount):
		utils.RespondWithError(w, http.StatusBadRequest, "Count must be at least 1")
	case errors.Is(err, domain.ErrInsufficientCredit):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient credit")
	case errors.Is(err, domain.ErrLockTimeout):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Account busy, retry later")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func adminFromContext(ctx context.Context) *string {
	if id, ok := auth.AdminIDFromContext(ctx); ok {
		return &id
	}
	return nil
}
