package controllers

import (
	"github.com/Fer-Urbina/LittleLemon/pkg/resp"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}
