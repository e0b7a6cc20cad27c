package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"justeat-backend/entity"
	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type OwnerOrderController struct{ Svc *services.OrderService }

func NewOwnerOrderController(s *services.OrderService) *OwnerOrderController {
	return &OwnerOrderController{Svc: s}
}

// GET /partner/restaurants/:id/orders?status=&page=&limit=
func (h *OwnerOrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := entity.OrderStatus(c.Query("status"))

	out, err := h.Svc.ListForRestaurant(uid, uint(restID), status, page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/restaurants/:id/orders/:oid
func (h *OwnerOrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err1 := strconv.ParseUint(c.Param("id"), 10, 64)
	orderID, err2 := strconv.ParseUint(c.Param("oid"), 10, 64)
	if err1 != nil || err2 != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	detail, err := h.Svc.DetailForRestaurant(uid, uint(restID), uint(orderID))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /partner/orders/:id/status
func (h *OwnerOrderController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateStatus(uid, uint(orderID), body.Status); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order status updated"})
}
