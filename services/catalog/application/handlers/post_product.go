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

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services, log logger.Logger) *PostProductHandler {
	return &PostProductHandler{svc: svc, log: log}
}

// Execute creates a new product.
//
//	@Summary		Create product
//	@Description	Creates a product stamped with the caller as its creator
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateProductDTO	true	"Product creation request"
//	@Success		201		{object}	dto.ProductDTO
//	@Header			201		{string}	Location	"/api/products/{id}"
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[dto.CreateProductDTO](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Create(r.Context(), *req)
	if err != nil {
		errhttp.WriteError(r.Context(), w, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "product created", "product_id", product.ID)
	httpx.Created(w, productLocation(product.ID), product)
}
