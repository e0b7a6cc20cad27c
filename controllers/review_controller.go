package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"justeat-backend/pkg/resp"
	"justeat-backend/services"
	"justeat-backend/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var in services.ReviewIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Create(uid, &in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /restaurants/:id/reviews?limit=
func (h *ReviewController) ListForRestaurant(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.Svc.ListForRestaurant(uint(restID), limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}
