// Package handlers holds the HTTP handlers of the account context.
package handlers

import (
	"errors"
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	pkgvalidator "github.com/ghuser/productcatalog/pkg/validator"
	"github.com/ghuser/productcatalog/services/account/application/dto"
	appsvcs "github.com/ghuser/productcatalog/services/account/application/services"
	"github.com/ghuser/productcatalog/services/account/domain"
)

// PostLoginHandler handles POST /auth/login requests.
type PostLoginHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services.
func NewPostLoginHandler(svc *appsvcs.Services, log logger.Logger) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, log: log}
}

// Execute exchanges a username and password for a bearer token pair.
//
//	@Summary		Log in
//	@Description	Returns an access token and an opaque refresh token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dto.TokenResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[dto.LoginRequest](w, r)
	if !ok {
		return
	}

	resp, err := h.svc.Login.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.WarnContext(r.Context(), "login rejected", "username", req.Username)
		}
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "login succeeded", "username", req.Username)
	httpx.JSON(w, http.StatusOK, resp)
}
