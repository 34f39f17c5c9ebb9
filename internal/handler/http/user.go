package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionUser, ok := utils.GetSessionUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no session user in context")
		writeErrorStatus(w, r, ErrNoTokenProvided, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	targetID := chi.URLParam(r, "userID")

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorStatus(w, r, err, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, sessionUser.ID, targetID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", updatedUser.ID).Msg("user updated")

	response := models.UserResponse{Success: true, Message: "user updated", User: updatedUser}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write update response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionUser, ok := utils.GetSessionUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no session user in context")
		writeErrorStatus(w, r, ErrNoTokenProvided, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	targetID := chi.URLParam(r, "userID")

	if err := h.services.UserService.DeleteUser(ctx, sessionUser.ID, targetID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", targetID).Msg("user deleted")

	if _, err := utils.WriteJSON(w, models.Ack{Success: true, Message: "user deleted"}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write delete response")
	}
}
