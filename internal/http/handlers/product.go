package handlers

import (
	"github.com/compravenda/api/internal/http/response"
	"github.com/compravenda/api/internal/repository"
	"github.com/compravenda/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns a page of the catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("busca"),
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct returns one product with its review aggregates.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.ProductService.Detail(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, detail)
}

// CreateProduct adds a product to the catalog.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados do produto inválidos.")
		return
	}
	product, err := h.ProductService.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct saves product fields.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados do produto inválidos.")
		return
	}
	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

// DeleteProduct removes a product from the catalog.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListProductRatings returns a product's ratings.
func (h *Handler) ListProductRatings(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ratings, err := h.ReviewService.ListRatings(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, ratings)
}

// CreateProductRating attaches a rating to a product.
func (h *Handler) CreateProductRating(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input service.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados da avaliação inválidos.")
		return
	}
	rating, err := h.ReviewService.AddRating(uid, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, rating)
}

// CreateProductComment attaches a comment to a product.
func (h *Handler) CreateProductComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var input service.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados do comentário inválidos.")
		return
	}
	comment, err := h.ReviewService.AddComment(uid, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, comment)
}
