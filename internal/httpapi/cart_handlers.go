package httpapi

import (
	"github.com/gin-gonic/gin"

	"anukriti-backend/internal/auth"
)

func (s *Server) getCart(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	cart, err := s.cart.Cart(c.Request.Context(), identity.UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, cart)
}

func (s *Server) addToCart(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	cart, err := s.cart.AddItem(c.Request.Context(), identity.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, cart)
}

func (s *Server) updateCartItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	cart, err := s.cart.SetQuantity(c.Request.Context(), identity.UserID, c.Param("productId"), req.Quantity)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, cart)
}

func (s *Server) removeCartItem(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	cart, err := s.cart.RemoveItem(c.Request.Context(), identity.UserID, c.Param("productId"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, cart)
}
