package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopsbuzz/shopsbuzz-backend/api/responses"
	"github.com/shopsbuzz/shopsbuzz-backend/api/validators"
	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/logger"
)

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterSubscribe acknowledges a signup with the storefront's coupon
// message. Nothing is stored; the endpoint exists for the signup form.
func NewsletterSubscribe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body newsletterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"message": "Thank you for subscribing! Your 20% off coupon is on its way.",
		})
	}
}

// PincodeCheck reports delivery availability for a pincode. Any six-digit
// numeric code is serviceable.
func PincodeCheck(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if !validPincode(code) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "pincode must be six digits"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"pincode":   code,
			"available": true,
		})
	}
}

func validPincode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
