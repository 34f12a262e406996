package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// GetItemHandler handles GET /item/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{svc: svc, log: log}
}

// Execute returns one item with its owning product name.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	dto.ItemDTO
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/item/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, found, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	if !found {
		h.log.WarnContext(r.Context(), "item not found", "item_id", id)
		httpx.JSONError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.log.InfoContext(r.Context(), "item retrieved", "item_id", id)
	httpx.JSON(w, http.StatusOK, item)
}
