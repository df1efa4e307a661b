package controllers

import (
	"net/http"

	"github.com/emabi2002/pngsme/api/responses"
	"github.com/emabi2002/pngsme/api/validators"
	checkoutsvc "github.com/emabi2002/pngsme/internal/checkout"
	"github.com/emabi2002/pngsme/pkg/enums"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/logger"
)

type checkoutRequest struct {
	PaymentMethod    string `json:"payment_method" validate:"required"`
	DeliveryMethod   string `json:"delivery_method" validate:"required"`
	DeliveryAddress  string `json:"delivery_address" validate:"max=500"`
	DeliveryProvince string `json:"delivery_province" validate:"max=80"`
	DeliveryDistrict string `json:"delivery_district" validate:"max=80"`
	DeliveryPhone    string `json:"delivery_phone" validate:"max=32"`
	DeliveryNotes    string `json:"delivery_notes" validate:"max=1000"`
}

// Checkout converts the buyer's cart into per-seller orders.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		paymentMethod, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
			return
		}
		deliveryMethod, err := enums.ParseDeliveryMethod(payload.DeliveryMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, err.Error()))
			return
		}

		result, err := svc.Execute(r.Context(), checkoutsvc.Input{
			BuyerUserID:      userID,
			PaymentMethod:    paymentMethod,
			DeliveryMethod:   deliveryMethod,
			DeliveryAddress:  payload.DeliveryAddress,
			DeliveryProvince: payload.DeliveryProvince,
			DeliveryDistrict: payload.DeliveryDistrict,
			DeliveryPhone:    payload.DeliveryPhone,
			DeliveryNotes:    payload.DeliveryNotes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
