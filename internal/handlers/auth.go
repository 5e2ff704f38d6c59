// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"skillforge/internal/auth"
	"skillforge/internal/middleware"
)

// Auth groups the login, validation, and logout endpoints.
type Auth struct {
	svc *auth.Service
}

// NewAuth creates an Auth handler group.
func NewAuth(svc *auth.Service) *Auth {
	return &Auth{svc: svc}
}

// Login checks the admin credentials and issues a bearer token. The
// endpoint is rate-limited at the router to slow down guessing.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := a.svc.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("admin logged in", "email", payload.Email)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Validate reports whether the presented token is still accepted. The
// RequireToken middleware has already rejected bad tokens by the time
// this runs, so reaching the handler means the token is good.
func (a *Auth) Validate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// Logout revokes the presented token.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.BearerToken(r); token != "" {
		a.svc.Revoke(token)
	}
	w.WriteHeader(http.StatusNoContent)
}
