package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Service: s}
}

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/:id
func (tc *TableController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	t, err := tc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /tables
func (tc *TableController) Create(c *gin.Context) {
	var req services.TableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, t)
}

// PUT /tables/:id
func (tc *TableController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.TableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := tc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "table deleted"})
}

// GET /tables/available
func (tc *TableController) Available(c *gin.Context) {
	tables, err := tc.Service.Available()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/by_capacity?min_capacity=
func (tc *TableController) ByCapacity(c *gin.Context) {
	min, _ := strconv.Atoi(c.DefaultQuery("min_capacity", "1"))
	tables, err := tc.Service.ByMinCapacity(min)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /tables/:id/mark_available
func (tc *TableController) MarkAvailable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	t, err := tc.Service.MarkAvailable(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /tables/:id/mark_unavailable
func (tc *TableController) MarkUnavailable(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	t, err := tc.Service.MarkUnavailable(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, t)
}
