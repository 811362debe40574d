package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/repository"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Service: s}
}

// GET /reservations?status=&date=&customer_phone=
func (rc *ReservationController) List(c *gin.Context) {
	f := repository.ReservationFilter{
		Status:        strings.ToUpper(c.Query("status")),
		Date:          c.Query("date"),
		CustomerPhone: c.Query("customer_phone"),
	}
	reservations, err := rc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reservations)
}

// GET /reservations/:id
func (rc *ReservationController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	res, err := rc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, res)
}

// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req services.ReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := rc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, res)
}

// PUT /reservations/:id
func (rc *ReservationController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.ReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := rc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, res)
}

// DELETE /reservations/:id
func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reservation deleted"})
}

// POST /reservations/:id/cancel
func (rc *ReservationController) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	res, err := rc.Service.Cancel(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, res)
}

// POST /reservations/:id/complete
func (rc *ReservationController) Complete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	res, err := rc.Service.Complete(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, res)
}

// GET /reservations/today
func (rc *ReservationController) Today(c *gin.Context) {
	reservations, err := rc.Service.Today()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reservations)
}

// GET /reservations/upcoming
func (rc *ReservationController) Upcoming(c *gin.Context) {
	reservations, err := rc.Service.Upcoming()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reservations)
}
