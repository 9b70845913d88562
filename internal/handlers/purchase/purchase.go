package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/dto"
	"github.com/rgalimov/fortuna/internal/service/transactionservice"
	"github.com/rgalimov/fortuna/pkg/utils"
)

//go:generate mockgen -source=purchase.go -destination=mock_purchase.go -package=purchase

type TransactionService interface {
	Create(ctx context.Context, userID int64, amount, attempts int) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

type ApprovalService interface {
	SubmitReceipt(ctx context.Context, userID, txnID int64, receiptReference string) (*domain.Transaction, error)
}

type MethodService interface {
	ListActive(ctx context.Context) ([]domain.PaymentMethod, error)
}

type PurchaseHandler struct {
	transactionService TransactionService
	approvalService    ApprovalService
	methodService      MethodService
}

func New(transactionService TransactionService, approvalService ApprovalService, methodService MethodService) *PurchaseHandler {
	return &PurchaseHandler{
		transactionService: transactionService,
		approvalService:    approvalService,
		methodService:      methodService,
	}
}

// CreatePurchase opens a pending transaction for the requested bundle. No
// attempts are credited until an administrator approves the payment.
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := h.transactionService.Create(r.Context(), req.UserID, req.Amount, req.Attempts)
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrAmountOutOfRange),
			errors.Is(err, transactionservice.ErrInvalidAttemptCount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.PurchaseResponseDTO{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
	})
}

// SubmitReceipt attaches a payment proof to a pending transaction and forwards
// it for review.
func (h *PurchaseHandler) SubmitReceipt(w http.ResponseWriter, r *http.Request) {
	var req dto.ReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	txn, err := h.approvalService.SubmitReceipt(r.Context(), req.UserID, req.TransactionID, req.ReceiptReference)
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transactionservice.ErrAlreadyFinalized):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		TransactionID: txn.ID,
		Status:        string(txn.Status),
	})
}

func (h *PurchaseHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	txns, err := h.transactionService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(txns))
	for _, txn := range txns {
		response = append(response, dto.TransactionResponseDTO{
			ID:        txn.ID,
			Amount:    txn.Amount,
			Attempts:  txn.Attempts,
			Status:    string(txn.Status),
			CreatedAt: txn.CreatedAt,
			UpdatedAt: txn.UpdatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *PurchaseHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.methodService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(methods) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.PaymentMethodResponseDTO, 0, len(methods))
	for _, method := range methods {
		response = append(response, dto.PaymentMethodResponseDTO{
			ID:      method.ID,
			Name:    method.Name,
			Details: method.Details,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
