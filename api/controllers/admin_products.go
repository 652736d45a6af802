package controllers

import (
	"net/http"

	"github.com/koodakziba/koodakziba-backend/api/responses"
	"github.com/koodakziba/koodakziba-backend/api/validators"
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
)

type productRequest struct {
	Name            string   `json:"name" validate:"required"`
	Price           int      `json:"price" validate:"gte=0"`
	Category        string   `json:"category" validate:"required"`
	AgeGroup        string   `json:"age_group"`
	Sizes           []string `json:"sizes"`
	Colors          []string `json:"colors"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Stock           int      `json:"stock" validate:"gte=0"`
	HasDiscount     bool     `json:"has_discount"`
	DiscountPercent int      `json:"discount_percent" validate:"gte=0,lte=100"`
	DiscountStart   string   `json:"discount_start"`
	DiscountEnd     string   `json:"discount_end"`
}

func (p productRequest) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:            p.Name,
		Price:           p.Price,
		Category:        p.Category,
		AgeGroup:        p.AgeGroup,
		Sizes:           p.Sizes,
		Colors:          p.Colors,
		Description:     p.Description,
		Image:           p.Image,
		Stock:           p.Stock,
		HasDiscount:     p.HasDiscount,
		DiscountPercent: p.DiscountPercent,
		DiscountStart:   p.DiscountStart,
		DiscountEnd:     p.DiscountEnd,
	}
}

// AdminCreateProduct adds a catalog product.
func AdminCreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct replaces the writable fields of a catalog product.
func AdminUpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a catalog product.
func AdminDeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
