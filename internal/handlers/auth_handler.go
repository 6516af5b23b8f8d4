package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Jeffry-N/Beiruti-Fade/internal/domain/account"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
	"github.com/Jeffry-N/Beiruti-Fade/internal/httpresp"
	ucAccount "github.com/Jeffry-N/Beiruti-Fade/internal/usecase/account"
)

type AuthHandler struct {
	signup *ucAccount.Signup
	login  *ucAccount.Login
}

func NewAuthHandler(
	signup *ucAccount.Signup,
	login *ucAccount.Login,
) *AuthHandler {
	return &AuthHandler{
		signup: signup,
		login:  login,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is missing required fields.")
		return
	}

	kind, err := domain.ParseKind(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := h.signup.Execute(c.Request.Context(), ucAccount.SignupInput{
		Kind:     kind,
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":      id,
		"message": "Registration successful",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is missing required fields.")
		return
	}

	kind, err := domain.ParseKind(req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.login.Execute(c.Request.Context(), kind, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, profile)
}
