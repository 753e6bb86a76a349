package controllers

import (
	"errors"
	"strconv"

	"github.com/Fer-Urbina/LittleLemon/pkg/resp"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/gin-gonic/gin"
)

// ManagerController groups the workflow endpoints behind manager/admin roles.
type ManagerController struct{ Svc *services.OrderService }

func NewManagerController(s *services.OrderService) *ManagerController {
	return &ManagerController{Svc: s}
}

type usernameReq struct {
	Username string `json:"username" binding:"required"`
}

// POST /groups/manager/user (admin)
func (h *ManagerController) PromoteToManager(c *gin.Context) {
	var req usernameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "username not provided")
		return
	}
	if err := h.Svc.GrantManagerRole(req.Username); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user added to manager group"})
}

// POST /assign-to-delivery-crew (manager)
func (h *ManagerController) AssignToDeliveryCrew(c *gin.Context) {
	var req usernameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "username not provided")
		return
	}
	if err := h.Svc.GrantDeliveryRole(req.Username); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user assigned to delivery crew"})
}

// GET /assign-order-to-delivery/:order_id lets a manager inspect before assigning.
func (h *ManagerController) OrderDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))
	order, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /assign-order-to-delivery/:order_id (manager)
func (h *ManagerController) AssignOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))
	var req usernameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "username not provided")
		return
	}
	if err := h.Svc.AssignOrder(uint(id), req.Username); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order or delivery person not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order assigned to delivery person"})
}
