package controllers

import (
	"errors"
	"net/http"

	"github.com/emabi2002/pngsme/api/responses"
	"github.com/emabi2002/pngsme/api/validators"
	cartstore "github.com/emabi2002/pngsme/internal/cart"
	"github.com/emabi2002/pngsme/internal/products"
	pkgerrors "github.com/emabi2002/pngsme/pkg/errors"
	"github.com/emabi2002/pngsme/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type cartView struct {
	Items []cartstore.Item `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// GetCart returns the buyer's current cart.
func GetCart(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartView{
			Items: store.Items(r.Context(), userID),
			Total: store.Total(r.Context(), userID),
			Count: store.Count(r.Context(), userID),
		})
	}
}

// AddCartItem resolves the product and adds it to the buyer's cart.
func AddCartItem(store *cartstore.Store, productSvc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		product, err := productSvc.Get(r.Context(), productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !product.Active {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product is not available"))
			return
		}

		store.AddItem(r.Context(), userID, cartstore.Item{
			ProductID:  product.ID,
			BusinessID: product.BusinessID,
			Name:       product.Name,
			Image:      product.PrimaryImage(),
			UnitPrice:  product.Price,
			Quantity:   payload.Quantity,
		})

		responses.WriteSuccessStatus(w, http.StatusCreated, cartView{
			Items: store.Items(r.Context(), userID),
			Total: store.Total(r.Context(), userID),
			Count: store.Count(r.Context(), userID),
		})
	}
}

// UpdateCartItem sets the quantity of an existing cart entry.
func UpdateCartItem(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := pathUUID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(r.Context(), userID, productID, payload.Quantity)
		responses.WriteSuccess(w, cartView{
			Items: store.Items(r.Context(), userID),
			Total: store.Total(r.Context(), userID),
			Count: store.Count(r.Context(), userID),
		})
	}
}

// RemoveCartItem deletes a cart entry.
func RemoveCartItem(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := pathUUID(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.RemoveItem(r.Context(), userID, productID)
		responses.WriteSuccess(w, cartView{
			Items: store.Items(r.Context(), userID),
			Total: store.Total(r.Context(), userID),
			Count: store.Count(r.Context(), userID),
		})
	}
}

// ClearCart empties the buyer's cart.
func ClearCart(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store.Clear(r.Context(), userID)
		responses.WriteSuccess(w, cartView{
			Items: []cartstore.Item{},
			Total: decimal.Zero,
			Count: 0,
		})
	}
}
