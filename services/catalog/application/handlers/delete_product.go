package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// DeleteProductHandler handles DELETE /products/{id} requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given services.
func NewDeleteProductHandler(svc *appsvcs.Services, log logger.Logger) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc, log: log}
}

// Execute deletes a product together with its items.
//
//	@Summary		Delete product
//	@Tags			products
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Product ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.svc.Product.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	if !found {
		h.log.WarnContext(r.Context(), "product not found for delete", "product_id", id)
		httpx.JSONError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.log.InfoContext(r.Context(), "product deleted", "product_id", id)
	httpx.NoContent(w)
}
