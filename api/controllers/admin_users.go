package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/koodakziba/koodakziba-backend/api/responses"
	"github.com/koodakziba/koodakziba-backend/api/validators"
	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
)

type updateUserRequest struct {
	Username string  `json:"username" validate:"required,min=2"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

func userIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "userId")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid user id")
	}
	return id, nil
}

// AdminListUsers serves the non-admin accounts.
func AdminListUsers(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		users, err := svc.ListCustomers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, users)
	}
}

// AdminUpdateUser edits an account. An omitted password keeps the stored
// hash.
func AdminUpdateUser(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		id, err := userIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.UpdateUser(r.Context(), id, accounts.UpdateUserInput{
			Username: payload.Username,
			Email:    payload.Email,
			Phone:    payload.Phone,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// AdminDeleteUser removes a customer account. Admin accounts are refused.
func AdminDeleteUser(svc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account service unavailable"))
			return
		}

		id, err := userIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteUser(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
