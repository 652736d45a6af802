package controllers

import (
	"net/http"
	"time"

	"github.com/koodakziba/koodakziba-backend/api/responses"
	"github.com/koodakziba/koodakziba-backend/api/validators"
	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	pkgauth "github.com/koodakziba/koodakziba-backend/pkg/auth"
	"github.com/koodakziba/koodakziba-backend/pkg/config"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,min=10"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token string            `json:"token"`
	User  *accounts.UserDTO `json:"user"`
}

// AuthRegister creates a customer account.
func AuthRegister(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Register(r.Context(), accounts.RegisterInput{
			Username: payload.Username,
			Email:    payload.Email,
			Password: payload.Password,
			Phone:    payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// AuthLogin checks the credentials and issues a signed access token.
func AuthLogin(svc accounts.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Authenticate(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := pkgauth.MintAccessToken(jwtCfg, time.Now(), pkgauth.AccessTokenPayload{
			UserID:   user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token"))
			return
		}

		responses.WriteSuccess(w, sessionResponse{Token: token, User: user})
	}
}

// AuthLogout acknowledges the logout. Tokens are stateless, so the client
// simply discards its copy.
func AuthLogout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "logged out"})
	}
}
