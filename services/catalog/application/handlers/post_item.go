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

// PostItemHandler handles POST /item requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item and answers with the re-read row.
//
//	@Summary		Create item
//	@Description	Creates an item under an existing product. An unknown product_id is rejected with 400
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateItemDTO	true	"Item creation request"
//	@Success		201		{object}	dto.ItemDTO
//	@Header			201		{string}	Location	"/api/item/{id}"
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/item [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[dto.CreateItemDTO](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), *req)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "item created", "item_id", item.ID)
	httpx.Created(w, itemLocation(item.ID), item)
}
