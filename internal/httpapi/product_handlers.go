package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anukriti-backend/internal/model"
	"anukriti-backend/internal/store"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.stores.Catalog.Products(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(200, products)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.stores.Catalog.Product(c.Request.Context(), c.Param("productId"))
	if err == store.ErrNotFound {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, product)
}

type productRequest struct {
	Title         string         `json:"title" binding:"required"`
	Description   string         `json:"description"`
	OriginalPrice float64        `json:"original_price" binding:"required"`
	SalePrice     *float64       `json:"sale_price"`
	ImageURL      string         `json:"image_url"`
	Category      model.Category `json:"category" binding:"required"`
	Stock         int            `json:"stock"`
}

func (r *productRequest) validate() string {
	if r.OriginalPrice <= 0 {
		return "original_price must be positive"
	}
	if r.SalePrice != nil && *r.SalePrice >= r.OriginalPrice {
		return "sale_price must be below original_price"
	}
	if !model.ValidCategory(r.Category) {
		return "category must be Book, Magazine or Novel"
	}
	if r.Stock < 0 {
		return "stock must not be negative"
	}
	return ""
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if reason := req.validate(); reason != "" {
		c.JSON(400, gin.H{"error": reason})
		return
	}
	product := &model.Product{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		OriginalPrice: req.OriginalPrice,
		SalePrice:     req.SalePrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Stock:         req.Stock,
	}
	if err := s.stores.Catalog.InsertProduct(c.Request.Context(), product); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if reason := req.validate(); reason != "" {
		c.JSON(400, gin.H{"error": reason})
		return
	}
	product := &model.Product{
		ID:            c.Param("productId"),
		Title:         req.Title,
		Description:   req.Description,
		OriginalPrice: req.OriginalPrice,
		SalePrice:     req.SalePrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Stock:         req.Stock,
	}
	if err := s.stores.Catalog.UpdateProduct(c.Request.Context(), product); err != nil {
		if err == store.ErrNotFound {
			c.JSON(404, gin.H{"error": "Product not found"})
			return
		}
		s.writeError(c, err)
		return
	}
	c.JSON(200, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	err := s.stores.Catalog.DeleteProduct(c.Request.Context(), c.Param("productId"))
	if err == store.ErrNotFound {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Product deleted successfully"})
}
