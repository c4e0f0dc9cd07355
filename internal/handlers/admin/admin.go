package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/dto"
	"github.com/numbroker/numbroker/internal/service/authservice"
	"github.com/numbroker/numbroker/internal/service/catalogservice"
	"github.com/numbroker/numbroker/internal/service/ledgerservice"
	"github.com/numbroker/numbroker/pkg/utils"
)

type LedgerService interface {
	Record(ctx context.Context, userID int, amount float64, kind string, reservationID *int) (*domain.Transaction, error)
}

type CatalogService interface {
	DeleteService(ctx context.Context, serviceID int) error
}

type AuthService interface {
	BanUser(ctx context.Context, userID int, banned bool) error
}

type AdminHandler struct {
	ledgerService  LedgerService
	catalogService CatalogService
	authService    AuthService
}

func New(ledgerService LedgerService, catalogService CatalogService, authService AuthService) *AdminHandler {
	return &AdminHandler{
		ledgerService:  ledgerService,
		catalogService: catalogService,
		authService:    authService,
	}
}

func adjustableKind(kind string) bool {
	switch kind {
	case ledgerservice.KindAdd, ledgerservice.KindDeduct, ledgerservice.KindReward:
		return true
	}
	return false
}

// AdjustBalance godoc
//
//	@Summary		Adjust a user balance
//	@Description	Add, deduct or reward balance through the ledger.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustBalanceRequestDTO	true	"Adjustment body"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/balance [post]
func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !adjustableKind(req.Kind) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported transaction kind")
		return
	}

	tx, err := h.ledgerService.Record(r.Context(), req.UserID, req.Amount, req.Kind, nil)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:        tx.ID,
		Amount:    tx.Amount,
		Kind:      tx.Kind,
		CreatedAt: tx.CreatedAt,
	})
}

// DeleteService godoc
//
//	@Summary		Force-delete a service
//	@Description	The service and its unclaimed numbers become unavailable for new reservations; pending reservations are untouched.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Service ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Service not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	if err := h.catalogService.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Service deleted"})
}

// BanUser godoc
//
//	@Summary		Ban or unban a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.BanUserRequestDTO	true	"Ban body"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.BanUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.BanUser(r.Context(), id, req.Banned); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ban flag updated"})
}
