package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	pkgvalidator "github.com/ghuser/productcatalog/pkg/validator"
	"github.com/ghuser/productcatalog/services/catalog/application/dto"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// PutProductHandler handles PUT /products/{id} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services, log logger.Logger) *PutProductHandler {
	return &PutProductHandler{svc: svc, log: log}
}

// Execute applies a sparse update to a product. Fields left out of the body
// keep their stored values.
//
//	@Summary		Update product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path	int						true	"Product ID"
//	@Param			request	body	dto.UpdateProductDTO	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	ValidationErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[dto.UpdateProductDTO](w, r)
	if !ok {
		return
	}

	found, err := h.svc.Product.Update(r.Context(), id, *req)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	if !found {
		h.log.WarnContext(r.Context(), "product not found for update", "product_id", id)
		httpx.JSONError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.log.InfoContext(r.Context(), "product updated", "product_id", id)
	httpx.NoContent(w)
}
