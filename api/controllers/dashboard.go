package controllers

import (
	"net/http"

	"github.com/koodakziba/koodakziba-backend/api/responses"
	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
)

type dashboardResponse struct {
	TotalProducts      int `json:"total_products"`
	TotalUsers         int `json:"total_users"`
	DiscountedProducts int `json:"discounted_products"`
}

// AdminDashboard serves the storefront statistics.
func AdminDashboard(catalogSvc catalog.Service, accountsSvc accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalogSvc == nil || accountsSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard services unavailable"))
			return
		}

		totalProducts, discounted, err := catalogSvc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		totalUsers, err := accountsSvc.CountCustomers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dashboardResponse{
			TotalProducts:      totalProducts,
			TotalUsers:         totalUsers,
			DiscountedProducts: discounted,
		})
	}
}
