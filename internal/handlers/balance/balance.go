package balance

import (
	"context"
	"net/http"

	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/dto"
	"github.com/numbroker/numbroker/pkg/auth"
	"github.com/numbroker/numbroker/pkg/utils"
)

type Service interface {
	Balance(ctx context.Context, userID int) (float64, error)
	History(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the balance derived from the user's transaction log.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the user's balance transactions, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:            tx.ID,
			Amount:        tx.Amount,
			Kind:          tx.Kind,
			ReservationID: tx.ReservationID,
			CreatedAt:     tx.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
