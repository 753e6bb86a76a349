package controllers

import (
	"errors"

	"github.com/Fer-Urbina/LittleLemon/pkg/resp"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /create-order checks out the caller's cart.
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	order, err := h.Svc.Checkout(uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrCheckoutConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /get-customer-orders returns own orders, or all of them for managers.
func (h *OrderController) ListForCustomer(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForCustomer(uid, utils.CurrentRole(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
