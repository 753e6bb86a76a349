package controllers

import (
	"errors"
	"strconv"

	"github.com/Fer-Urbina/LittleLemon/pkg/resp"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

// ----- Categories -----

// GET /category, GET /get-all-categories
func (h *CatalogController) ListCategories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

type categoryIn struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// POST /category (manager)
func (h *CatalogController) CreateCategory(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(req.Slug, req.Title)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /category/:id (manager)
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "category not found")
		case errors.Is(err, services.ErrCategoryInUse):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.NoContent(c)
}

// ----- Menu items -----

// GET /menu-items  ?category=&to_price=&search=&ordering=&page=&perpage=
func (h *CatalogController) ListMenuItems(c *gin.Context) {
	f := repository.MenuItemFilter{
		CategoryTitle: c.Query("category"),
		Search:        c.Query("search"),
		Ordering:      c.Query("ordering"),
	}
	if v := c.Query("to_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "to_price must be a number")
			return
		}
		f.ToPrice = &d
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PerPage, _ = strconv.Atoi(c.Query("perpage"))

	items, err := h.Svc.ListMenuItems(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /get-all-menu-items
func (h *CatalogController) ListAllMenuItems(c *gin.Context) {
	items, err := h.Svc.ListAllMenuItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu-items (manager)
func (h *CatalogController) CreateMenuItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.CreateMenuItem(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, m)
}

// GET /menu-items/:id
func (h *CatalogController) GetMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Svc.GetMenuItem(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// PUT /menu-items/:id (manager)
func (h *CatalogController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.UpdateMenuItem(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, m)
}

// DELETE /menu-items/:id (manager)
func (h *CatalogController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteMenuItem(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /update-item-of-the-day/:id (manager)
func (h *CatalogController) UpdateItemOfTheDay(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.MarkItemOfTheDay(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item of the day updated"})
}
