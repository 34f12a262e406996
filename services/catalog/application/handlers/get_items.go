package handlers

import (
	"net/http"

	"github.com/ghuser/productcatalog/pkg/errhttp"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// GetItemsHandler handles GET /item requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, log logger.Logger) *GetItemsHandler {
	return &GetItemsHandler{svc: svc, log: log}
}

// Execute lists every item.
//
//	@Summary		List items
//	@Description	Returns every item with the name of its product
//	@Tags			items
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ItemDTO
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/item [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.GetAll(r.Context())
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}
	h.log.InfoContext(r.Context(), "items listed", "count", len(items))
	httpx.JSON(w, http.StatusOK, items)
}
