package httpapi

import (
	"github.com/gin-gonic/gin"

	"anukriti-backend/internal/auth"
	"anukriti-backend/internal/model"
)

func (s *Server) placeOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	var req struct {
		ShippingAddress model.ShippingAddress `json:"shipping_address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	order, err := s.checkout.PlaceOrder(c.Request.Context(), identity.UserID, req.ShippingAddress)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, order)
}

func (s *Server) listOrders(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	orders, err := s.orders.OrdersForUser(c.Request.Context(), identity.UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(200, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	order, err := s.orders.Order(c.Request.Context(), identity, c.Param("orderId"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, order)
}

func (s *Server) listAllOrders(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	orders, err := s.orders.AllOrders(c.Request.Context(), identity)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(200, orders)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	var req struct {
		Status model.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	order, err := s.orders.SetStatus(c.Request.Context(), identity, c.Param("orderId"), req.Status)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, order)
}
