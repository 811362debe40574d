package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/repository"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// GET /payments?payment_status=&payment_method=&date=
func (pc *PaymentController) List(c *gin.Context) {
	f := repository.PaymentFilter{
		Status: strings.ToUpper(c.Query("payment_status")),
		Method: strings.ToUpper(c.Query("payment_method")),
		Date:   c.Query("date"),
	}
	payments, err := pc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /payments/:id
func (pc *PaymentController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	p, err := pc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /payments
func (pc *PaymentController) Create(c *gin.Context) {
	var req services.CreatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /payments/:id
func (pc *PaymentController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /payments/:id
func (pc *PaymentController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := pc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "payment deleted"})
}

// POST /payments/:id/complete_payment  {"transaction_id": "..."}
func (pc *PaymentController) Complete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.Service.Complete(id, body.TransactionID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /payments/:id/refund
func (pc *PaymentController) Refund(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	p, err := pc.Service.Refund(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /payments/today
func (pc *PaymentController) Today(c *gin.Context) {
	payments, err := pc.Service.Today()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /payments/summary?date=
func (pc *PaymentController) Summary(c *gin.Context) {
	summary, err := pc.Service.Summary(c.Query("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, summary)
}
