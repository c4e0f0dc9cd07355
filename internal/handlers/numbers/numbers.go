package numbers

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
	"github.com/numbroker/numbroker/internal/service/reservationservice"
	"github.com/numbroker/numbroker/pkg/auth"
	"github.com/numbroker/numbroker/pkg/utils"
)

type ReservationService interface {
	Open(ctx context.Context, userID, serviceID int) (*domain.Reservation, error)
	Cancel(ctx context.Context, id, userID int, isAdmin bool) (*domain.Reservation, error)
	GetReservations(ctx context.Context, userID int) ([]domain.Reservation, error)
	DeliverByExternalID(ctx context.Context, provider, externalID, code string) (*domain.Reservation, error)
}

type PoolService interface {
	GetNumber(ctx context.Context, numberID int) (*domain.PoolNumber, error)
}

type CatalogService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
}

type NumbersHandler struct {
	reservationService ReservationService
	poolService        PoolService
	catalogService     CatalogService
}

func New(reservationService ReservationService, poolService PoolService, catalogService CatalogService) *NumbersHandler {
	return &NumbersHandler{
		reservationService: reservationService,
		poolService:        poolService,
		catalogService:     catalogService,
	}
}

func (h *NumbersHandler) toDTO(ctx context.Context, res *domain.Reservation) dto.ReservationResponseDTO {
	out := dto.ReservationResponseDTO{
		ID:        res.ID,
		ServiceID: res.ServiceID,
		Status:    res.Status,
		Code:      res.Code,
		Price:     res.Price,
		CreatedAt: res.CreatedAt,
		Deadline:  res.Deadline,
	}
	if number, err := h.poolService.GetNumber(ctx, res.NumberID); err == nil && number != nil {
		out.Phone = number.Phone
	}
	return out
}

// ListServices godoc
//
//	@Summary		List purchasable services
//	@Description	Active services with price, country and provider.
//	@Tags			Services
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ServiceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/services [get]
func (h *NumbersHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.ListServices(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ServiceResponseDTO, len(services))
	for i, svc := range services {
		response[i] = dto.ServiceResponseDTO{
			ID:       svc.ID,
			Code:     svc.Code,
			Name:     svc.Name,
			Country:  svc.Country,
			Provider: svc.Provider,
			Price:    svc.Price,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// OpenReservation godoc
//
//	@Summary		Buy a temporary number
//	@Description	Debit the service price and reserve an exclusive number until the deadline.
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenReservationRequestDTO	true	"Open request body"
//	@Success		200		{object}	dto.ReservationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"User is banned"
//	@Failure		409		{object}	utils.Response	"No numbers in stock"
//	@Failure		502		{object}	utils.Response	"Provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/reservations [post]
func (h *NumbersHandler) OpenReservation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.OpenReservationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.reservationService.Open(r.Context(), userID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrNoStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrProviderUnavailable), errors.Is(err, domain.ErrAuthFailed):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(r.Context(), res))
}

// GetReservations godoc
//
//	@Summary		List own reservations
//	@Description	All reservations of the authenticated user, newest first.
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Success		204	{object}	utils.Response	"No reservations"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/reservations [get]
func (h *NumbersHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	reservations, err := h.reservationService.GetReservations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	if len(reservations) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Reservations not found")
		return
	}

	response := make([]dto.ReservationResponseDTO, len(reservations))
	for i := range reservations {
		response[i] = h.toDTO(r.Context(), &reservations[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CancelReservation godoc
//
//	@Summary		Cancel a pending reservation
//	@Description	Early termination by the owner or an admin; refunds the purchase.
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		409	{object}	utils.Response	"Reservation already terminal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/reservations/{id}/cancel [post]
func (h *NumbersHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	isAdmin, _ := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	res, err := h.reservationService.Cancel(r.Context(), id, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrReservationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reservationservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(r.Context(), res))
}

// DeliverCode godoc
//
//	@Summary		Provider webhook
//	@Description	Push entry point for webhook-mode providers delivering a received code.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			provider	path		string							true	"Provider name"
//	@Param			request		body		dto.WebhookDeliverRequestDTO	true	"Delivery payload"
//	@Success		200			{object}	dto.ReservationResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"No pending reservation for number"
//	@Failure		409			{object}	utils.Response	"Reservation already terminal"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/webhook/{provider} [post]
func (h *NumbersHandler) DeliverCode(w http.ResponseWriter, r *http.Request) {
	providerName := chi.URLParam(r, "provider")

	var req dto.WebhookDeliverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ExternalNumberID == "" || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.reservationService.DeliverByExternalID(r.Context(), providerName, req.ExternalNumberID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, reservationservice.ErrReservationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(r.Context(), res))
}
