package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/estate-hub/internal/logger"
	"github.com/MKhiriev/estate-hub/internal/utils"
	"github.com/MKhiriev/estate-hub/models"
)

// accessTokenCookie is the name of the http-only cookie carrying the session
// token between signin and subsequent requests.
const accessTokenCookie = "access_token"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorStatus(w, r, err, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")

	// no token at signup: the user signs in separately
	if _, err := utils.WriteJSON(w, models.Ack{Success: true, Message: "user registered"}, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write signup response")
	}
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorStatus(w, r, err, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully signed in")

	setAuthCookie(w, token)
	if _, err := utils.WriteJSON(w, models.SigninResponse{Success: true, User: foundUser}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write signin response")
	}
}

// setAuthCookie attaches the signed session token to the response as an
// http-only cookie. HttpOnly keeps the token out of reach of page scripts;
// SameSite=Lax stops the browser from attaching it to cross-site requests.
func setAuthCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	// align cookie lifetime with the token's exp claim
	if token.Token != nil {
		if expiresAt, err := token.Claims.GetExpirationTime(); err == nil && expiresAt != nil {
			cookie.Expires = expiresAt.Time
		}
	}

	http.SetCookie(w, cookie)
}
