package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/repository"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// GET /orders?status=&table=&date=
func (oc *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status: strings.ToUpper(c.Query("status")),
		Date:   c.Query("date"),
	}
	if v := c.Query("table"); v != "" {
		tableID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid table filter")
			return
		}
		f.TableID = uint(tableID)
	}
	orders, err := oc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	order, err := oc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// PUT /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := oc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// PATCH /orders/:id/update_status  {"status": "..."}
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.UpdateStatus(id, strings.ToUpper(body.Status))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/add_item
func (oc *OrderController) AddItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.OrderItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := oc.Service.AddItem(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /orders/:id/remove_item  {"item_id": n}
func (oc *OrderController) RemoveItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body struct {
		ItemID uint `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.RemoveItem(id, body.ItemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item removed successfully"})
}

// GET /orders/active
func (oc *OrderController) Active(c *gin.Context) {
	orders, err := oc.Service.Active()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/today
func (oc *OrderController) Today(c *gin.Context) {
	orders, err := oc.Service.Today()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}
