package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants?search=
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.List(c.Query("search"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Svc.Detail(uint(id))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /partner/restaurants
func (h *RestaurantController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rests, err := h.Svc.ListForOwner(uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rests)
}

// POST /partner/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var in services.RestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.Create(uid, &in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, rest)
}
