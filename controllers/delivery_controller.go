package controllers

import (
	"errors"
	"strconv"

	"github.com/Fer-Urbina/LittleLemon/pkg/resp"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"github.com/gin-gonic/gin"
)

type DeliveryController struct{ Svc *services.OrderService }

func NewDeliveryController(s *services.OrderService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// GET /get-orders-for-delivery lists orders assigned to the caller.
func (h *DeliveryController) ListAssigned(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	orders, err := h.Svc.ListForDelivery(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /mark-order-as-delivered/:order_id, assignee only.
func (h *DeliveryController) MarkDelivered(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id, _ := strconv.Atoi(c.Param("order_id"))
	order, err := h.Svc.MarkDelivered(uint(id), uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "you are not assigned to this order")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
