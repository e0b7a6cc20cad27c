package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders — checkout the whole cart; one order per restaurant
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	placed, err := h.Svc.PlaceFromCart(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "order placed successfully", "orders": placed})
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.DetailForUser(uid, uint(orderID))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, detail)
}
