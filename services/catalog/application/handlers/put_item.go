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

// PutItemHandler handles PUT /item/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, log logger.Logger) *PutItemHandler {
	return &PutItemHandler{svc: svc, log: log}
}

// Execute applies a sparse update to an item. Moving it to another
// product requires that product to exist.
//
//	@Summary		Update item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path	int						true	"Item ID"
//	@Param			request	body	dto.UpdateItemDTO	true	"Fields to change"
//	@Success		204
//	@Failure		400	{object}	ValidationErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/item/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[dto.UpdateItemDTO](w, r)
	if !ok {
		return
	}

	found, err := h.svc.Item.Update(r.Context(), id, *req)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	if !found {
		h.log.WarnContext(r.Context(), "item not found for update", "item_id", id)
		httpx.JSONError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.log.InfoContext(r.Context(), "item updated", "item_id", id)
	httpx.NoContent(w)
}
