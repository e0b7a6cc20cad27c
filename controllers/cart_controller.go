package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, subtotal, err := h.Svc.Get(uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

type addToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"omitempty,min=1"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req addToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}
	if err := h.Svc.AddItem(uid, req.MenuItemID, req.Qty); err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "item added to cart"})
}

// PATCH /cart/items/:id — qty of 0 removes the line
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQuantity(uid, uint(itemID), *body.Qty); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart updated"})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.Svc.RemoveItem(uid, uint(itemID)); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed"})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
