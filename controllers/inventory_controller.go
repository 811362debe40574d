package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type InventoryController struct {
	Service *services.InventoryService
}

func NewInventoryController(s *services.InventoryService) *InventoryController {
	return &InventoryController{Service: s}
}

// GET /inventory
func (ic *InventoryController) List(c *gin.Context) {
	items, err := ic.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /inventory/:id
func (ic *InventoryController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := ic.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /inventory
func (ic *InventoryController) Create(c *gin.Context) {
	var req services.InventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /inventory/:id
func (ic *InventoryController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.InventoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /inventory/:id
func (ic *InventoryController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := ic.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "inventory item deleted"})
}

// GET /inventory/low_stock
func (ic *InventoryController) LowStock(c *gin.Context) {
	items, err := ic.Service.LowStock()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /inventory/:id/update_quantity  {"quantity_change": n}
func (ic *InventoryController) UpdateQuantity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body struct {
		QuantityChange int `json:"quantity_change"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.UpdateQuantity(id, body.QuantityChange)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /inventory/:id/restock  {"quantity": n}
func (ic *InventoryController) Restock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ic.Service.Restock(id, body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}
