package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type MenuController struct {
	Svc        *services.MenuService
	Popularity *services.PopularityService
}

func NewMenuController(s *services.MenuService, p *services.PopularityService) *MenuController {
	return &MenuController{Svc: s, Popularity: p}
}

// GET /restaurants/:id/menu
func (h *MenuController) ListForRestaurant(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := h.Svc.ListForRestaurant(c.Request.Context(), uint(restID))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu-items/:id/popularity?date=2025-08-30
// Without a date the current UTC day is used.
func (h *MenuController) Popular(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if _, err := h.Svc.GetItem(uint(itemID)); err != nil {
		respondErr(c, err)
		return
	}

	asOf := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		asOf = parsed
	}
	hot, err := h.Popularity.IsMostlyOrdered(uint(itemID), asOf)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"menuItemId": itemID, "mostlyOrdered": hot})
}

// ----- Owner management -----

// POST /partner/restaurants/:id/menu
func (h *MenuController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(c.Request.Context(), uid, uint(restID), &in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/restaurants/:id/menu/:itemId
func (h *MenuController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err1 := strconv.ParseUint(c.Param("id"), 10, 64)
	itemID, err2 := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err1 != nil || err2 != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(c.Request.Context(), uid, uint(restID), uint(itemID), &in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /partner/restaurants/:id/menu/:itemId
func (h *MenuController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err1 := strconv.ParseUint(c.Param("id"), 10, 64)
	itemID, err2 := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err1 != nil || err2 != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.DeleteItem(c.Request.Context(), uid, uint(restID), uint(itemID)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
