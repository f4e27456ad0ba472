package controllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"schedulepro-backend/docstore"
	"schedulepro-backend/scheduling"
	"schedulepro-backend/storage"
	"schedulepro-backend/utils"
)

// API exposes the scheduling core over HTTP. The core assumes serialized
// callers (single-user system, no internal locking), so every mutating
// handler takes mu for the duration of the call and every read handler
// takes the read side.
type API struct {
	mu    sync.RWMutex
	sys   *scheduling.System
	docs  *docstore.FileStore
	store storage.Store
}

func NewAPI(sys *scheduling.System, docs *docstore.FileStore, store storage.Store) *API {
	return &API{sys: sys, docs: docs, store: store}
}

// respondCoreError maps the core's error taxonomy onto HTTP statuses.
func respondCoreError(c *gin.Context, err error) {
	var vErr *scheduling.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, scheduling.ErrInvalidAmount),
		errors.Is(err, scheduling.ErrInvalidRange):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrClientNotFound),
		errors.Is(err, scheduling.ErrUnknownClient),
		errors.Is(err, scheduling.ErrUnknownSlot),
		errors.Is(err, scheduling.ErrAppointmentNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scheduling.ErrDuplicateSlot),
		errors.Is(err, scheduling.ErrSlotInUse),
		errors.Is(err, scheduling.ErrSlotAlreadyBooked),
		errors.Is(err, scheduling.ErrClientHasAppointments):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		// Includes ErrOrphanedAppointment: a data-integrity fault, not a
		// client mistake.
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
