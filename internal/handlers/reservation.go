package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/zonebook/zonebook/internal/models"
	"github.com/zonebook/zonebook/internal/store"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	store  *store.ReservationStore
	logger *zap.Logger
}

func NewReservationHandler(store *store.ReservationStore, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{store: store, logger: logger}
}

type ListReservationsOutput struct {
	Body []models.Reservation
}

func (h *ReservationHandler) HandleList(ctx context.Context, input *struct{}) (*ListReservationsOutput, error) {
	reservations, err := h.store.List()
	if err != nil {
		h.logger.Error("Failed to list reservations", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to load reservations")
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	return &ListReservationsOutput{Body: reservations}, nil
}

type CreateReservationRequest struct {
	Body models.Input
}

type ReservationOutput struct {
	Body models.Reservation
}

func (h *ReservationHandler) HandleCreate(ctx context.Context, input *CreateReservationRequest) (*ReservationOutput, error) {
	// Validate before touching storage
	if bad := input.Body.Validate(); len(bad) > 0 {
		return nil, huma.Error400BadRequest(models.ValidationMessage(bad))
	}

	var reservation models.Reservation
	input.Body.Apply(&reservation)

	if err := h.store.Create(&reservation); err != nil {
		h.logger.Error("Failed to create reservation", zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to save reservation")
	}

	return &ReservationOutput{Body: reservation}, nil
}

type UpdateReservationRequest struct {
	ID   uint `path:"id" doc:"Reservation id"`
	Body models.Input
}

func (h *ReservationHandler) HandleUpdate(ctx context.Context, input *UpdateReservationRequest) (*ReservationOutput, error) {
	if bad := input.Body.Validate(); len(bad) > 0 {
		return nil, huma.Error400BadRequest(models.ValidationMessage(bad))
	}

	reservation, err := h.store.Update(input.ID, input.Body)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("Reservation not found")
		}
		h.logger.Error("Failed to update reservation", zap.Uint("id", input.ID), zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to update reservation")
	}

	return &ReservationOutput{Body: *reservation}, nil
}

type DeleteReservationRequest struct {
	ID uint `path:"id" doc:"Reservation id"`
}

type DeleteReservationOutput struct{}

func (h *ReservationHandler) HandleDelete(ctx context.Context, input *DeleteReservationRequest) (*DeleteReservationOutput, error) {
	if err := h.store.Delete(input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("Reservation not found")
		}
		h.logger.Error("Failed to delete reservation", zap.Uint("id", input.ID), zap.Error(err))
		return nil, huma.Error500InternalServerError("Failed to delete reservation")
	}
	return &DeleteReservationOutput{}, nil
}
