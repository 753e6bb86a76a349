package controllers

import (
	"errors"

	"github.com/Fer-Urbina/LittleLemon/pkg/resp"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /get-cart-items
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	items, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /add-to-cart
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"message": "item added to cart"})
}

// DELETE /delete-cart-item
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
