package spin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/dto"
	"github.com/rgalimov/fortuna/internal/service/ledgerservice"
	"github.com/rgalimov/fortuna/internal/service/spinservice"
	"github.com/rgalimov/fortuna/pkg/utils"
)

//go:generate mockgen -source=spin.go -destination=mock_spin.go -package=spin

type Service interface {
	Spin(ctx context.Context, userID int64) (*spinservice.Result, error)
	Prizes(ctx context.Context, userID int64) ([]domain.Prize, error)
	Claim(ctx context.Context, userID, prizeID int64) error
}

type SpinHandler struct {
	spinService Service
}

func New(spinService Service) *SpinHandler {
	return &SpinHandler{
		spinService: spinService,
	}
}

// Spin consumes one attempt and reports the drawn sector. A user without
// remaining attempts gets 402 and the ledger stays untouched.
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	var req dto.SpinRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.spinService.Spin(r.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInsufficientAttempts):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SpinResponseDTO{
		Segment:   result.Prize.Segment,
		Prize:     result.Prize.Label,
		Kind:      string(result.Prize.Kind),
		Value:     result.Prize.Value,
		Remaining: result.Remaining,
	})
}

func (h *SpinHandler) GetPrizes(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	prizes, err := h.spinService.Prizes(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(prizes) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.PrizeResponseDTO, 0, len(prizes))
	for _, prize := range prizes {
		response = append(response, dto.PrizeResponseDTO{
			ID:        prize.ID,
			Kind:      string(prize.Kind),
			Value:     prize.Value,
			CreatedAt: prize.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *SpinHandler) ClaimPrize(w http.ResponseWriter, r *http.Request) {
	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.spinService.Claim(r.Context(), req.UserID, req.PrizeID); err != nil {
		switch {
		case errors.Is(err, spinservice.ErrPrizeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "prize claimed"})
}
