package controllers

import (
	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.Register(&in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(body.Email, body.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := h.Svc.GetProfile(uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, user)
}
