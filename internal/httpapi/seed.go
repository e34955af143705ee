package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anukriti-backend/internal/auth"
	"anukriti-backend/internal/model"
)

func (s *Server) submitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	msg := &model.ContactMessage{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.stores.Contacts.InsertContact(c.Request.Context(), msg); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Message sent successfully"})
}

// initData seeds the default admin account and a sample catalog when the
// database is empty. Safe to call repeatedly.
func (s *Server) initData(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.seedAdmin(ctx); err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.seedProducts(ctx); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Data initialized successfully"})
}

func (s *Server) seedAdmin(ctx context.Context) error {
	exists, err := s.stores.Users.AdminExists(ctx)
	if err != nil || exists {
		return err
	}
	hashed, err := auth.HashPassword("Admin@123")
	if err != nil {
		return err
	}
	return s.stores.Users.InsertUser(ctx, &model.User{
		ID:           uuid.NewString(),
		Username:     "Admin",
		Email:        "admin@anukriti.com",
		MobileNumber: "9876543210",
		Password:     hashed,
		Role:         model.RoleAdmin,
	})
}

func (s *Server) seedProducts(ctx context.Context) error {
	existing, err := s.stores.Catalog.Products(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, p := range sampleProducts() {
		product := p
		product.ID = uuid.NewString()
		if err := s.stores.Catalog.InsertProduct(ctx, &product); err != nil {
			return err
		}
	}
	return nil
}

func price(v float64) *float64 { return &v }

func sampleProducts() []model.Product {
	return []model.Product{
		{
			Title:         "चाँद गोधूलि का",
			Description:   "एक मनमोहक कविता संग्रह जो जीवन की सुंदरता और प्रकृति के रंगों को समेटता है।",
			OriginalPrice: 150.00,
			SalePrice:     price(75.00),
			ImageURL:      "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=600&fit=crop",
			Category:      model.CategoryBook,
			Stock:         100,
		},
		{
			Title:         "साहित्य सरिता",
			Description:   "हिंदी साहित्य की गहराइयों में डूबने वाली मासिक पत्रिका।",
			OriginalPrice: 80.00,
			ImageURL:      "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400&h=600&fit=crop",
			Category:      model.CategoryMagazine,
			Stock:         200,
		},
		{
			Title:         "रंगीन यादें",
			Description:   "जीवन की छोटी-छोटी यादों का खूबसूरत संग्रह।",
			OriginalPrice: 200.00,
			SalePrice:     price(150.00),
			ImageURL:      "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=600&fit=crop",
			Category:      model.CategoryNovel,
			Stock:         50,
		},
		{
			Title:         "काव्य कुंज",
			Description:   "आधुनिक हिंदी कविताओं का समृद्ध संकलन।",
			OriginalPrice: 120.00,
			ImageURL:      "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400&h=600&fit=crop",
			Category:      model.CategoryBook,
			Stock:         75,
		},
		{
			Title:         "आत्मकथा: एक सफर",
			Description:   "एक प्रेरणादायक आत्मकथा जो जीवन के संघर्षों और सफलता की कहानी बयान करती है।",
			OriginalPrice: 250.00,
			SalePrice:     price(200.00),
			ImageURL:      "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400&h=600&fit=crop",
			Category:      model.CategoryBook,
			Stock:         60,
		},
		{
			Title:         "यात्रा वृत्तांत",
			Description:   "भारत और विदेशों की यात्राओं के रोचक अनुभव।",
			OriginalPrice: 180.00,
			ImageURL:      "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400&h=600&fit=crop",
			Category:      model.CategoryBook,
			Stock:         80,
		},
	}
}
