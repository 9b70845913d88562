package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/dto"
	"github.com/rgalimov/fortuna/internal/service/approvalservice"
	"github.com/rgalimov/fortuna/internal/service/methodservice"
	"github.com/rgalimov/fortuna/internal/service/transactionservice"
	"github.com/rgalimov/fortuna/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type ApprovalService interface {
	Approve(ctx context.Context, txnID, adminID int64) (*domain.Transaction, error)
	Decline(ctx context.Context, txnID, adminID int64) (*domain.Transaction, error)
}

type MethodService interface {
	Add(ctx context.Context, adminID int64, name, details string) (*domain.PaymentMethod, error)
	Update(ctx context.Context, adminID, id int64, name, details string) (*domain.PaymentMethod, error)
	Toggle(ctx context.Context, adminID, id int64) (*domain.PaymentMethod, error)
	Delete(ctx context.Context, adminID, id int64) error
}

type AdminHandler struct {
	approvalService ApprovalService
	methodService   MethodService
}

func New(approvalService ApprovalService, methodService MethodService) *AdminHandler {
	return &AdminHandler{
		approvalService: approvalService,
		methodService:   methodService,
	}
}

// ApproveTransaction completes a pending transaction and credits the purchased
// attempts. Repeating the call on the same transaction yields 409 without a
// second credit.
func (h *AdminHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	h.finalize(w, r, h.approvalService.Approve)
}

// DeclineTransaction closes a pending transaction without crediting anything.
func (h *AdminHandler) DeclineTransaction(w http.ResponseWriter, r *http.Request) {
	h.finalize(w, r, h.approvalService.Decline)
}

func (h *AdminHandler) finalize(w http.ResponseWriter, r *http.Request,
	decide func(ctx context.Context, txnID, adminID int64) (*domain.Transaction, error),
) {
	txnID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := decide(r.Context(), txnID, req.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, approvalservice.ErrNotAdmin):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, transactionservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transactionservice.ErrAlreadyFinalized):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:        txn.ID,
		Amount:    txn.Amount,
		Attempts:  txn.Attempts,
		Status:    string(txn.Status),
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	})
}

func (h *AdminHandler) CreateMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.MethodCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := h.methodService.Add(r.Context(), req.AdminID, req.Name, req.Details)
	if err != nil {
		h.respondMethodError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, methodResponse(method))
}

func (h *AdminHandler) UpdateMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid method id")
		return
	}
	var req dto.MethodUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := h.methodService.Update(r.Context(), req.AdminID, id, req.Name, req.Details)
	if err != nil {
		h.respondMethodError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, methodResponse(method))
}

func (h *AdminHandler) ToggleMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid method id")
		return
	}
	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := h.methodService.Toggle(r.Context(), req.AdminID, id)
	if err != nil {
		h.respondMethodError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, methodResponse(method))
}

func (h *AdminHandler) DeleteMethod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid method id")
		return
	}
	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.methodService.Delete(r.Context(), req.AdminID, id); err != nil {
		h.respondMethodError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "payment method deleted"})
}

func (h *AdminHandler) respondMethodError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, methodservice.ErrNotAdmin):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, methodservice.ErrInvalidMethod):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, methodservice.ErrMethodExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, methodservice.ErrMethodNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func methodResponse(method *domain.PaymentMethod) dto.PaymentMethodResponseDTO {
	return dto.PaymentMethodResponseDTO{
		ID:      method.ID,
		Name:    method.Name,
		Details: method.Details,
	}
}
