package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anukriti-backend/internal/auth"
	"anukriti-backend/internal/model"
	"anukriti-backend/internal/store"
)

type signupRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password" binding:"required"`
}

type userResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	Role         string `json:"role"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		Role:         u.Role,
	}
}

func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if req.Email == "" && req.MobileNumber == "" {
		c.JSON(400, gin.H{"error": "Either email or mobile number is required"})
		return
	}

	for _, identifier := range []string{req.Email, req.MobileNumber} {
		if identifier == "" {
			continue
		}
		if _, err := s.stores.Users.UserByIdentifier(c.Request.Context(), identifier); err == nil {
			c.JSON(400, gin.H{"error": "User already exists"})
			return
		} else if err != store.ErrNotFound {
			s.writeError(c, err)
			return
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     hashed,
		Role:         model.RoleUser,
	}
	if err := s.stores.Users.InsertUser(c.Request.Context(), user); err != nil {
		s.writeError(c, err)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"message":      "User created successfully",
		"access_token": token,
		"user":         toUserResponse(user),
	})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}

	user, err := s.stores.Users.UserByIdentifier(c.Request.Context(), req.Identifier)
	if err == store.ErrNotFound {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user":         toUserResponse(user),
	})
}

func (s *Server) me(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	user, err := s.stores.Users.User(c.Request.Context(), identity.UserID)
	if err == store.ErrNotFound {
		c.JSON(401, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(200, toUserResponse(user))
}
