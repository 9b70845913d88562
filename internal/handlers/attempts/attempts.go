package attempts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/dto"
	"github.com/rgalimov/fortuna/pkg/utils"
)

//go:generate mockgen -source=attempts.go -destination=mock_attempts.go -package=attempts

type Service interface {
	Get(ctx context.Context, userID int64) (*domain.Attempts, error)
}

type AttemptsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AttemptsHandler {
	return &AttemptsHandler{
		ledgerService: ledgerService,
	}
}

// GetAttempts returns the paid/used/remaining counters for a user. Unknown
// users read as a zero balance.
func (h *AttemptsHandler) GetAttempts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	attempts, err := h.ledgerService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AttemptsResponseDTO{
		Paid:      attempts.Paid,
		Used:      attempts.Used,
		Remaining: attempts.Remaining(),
	})
}
