package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// DeleteItemHandler handles DELETE /item/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, log: log}
}

// Execute deletes an item.
//
//	@Summary		Delete item
//	@Tags			items
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/item/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.svc.Item.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	if !found {
		h.log.WarnContext(r.Context(), "item not found for delete", "item_id", id)
		httpx.JSONError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.log.InfoContext(r.Context(), "item deleted", "item_id", id)
	httpx.NoContent(w)
}
