package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/repository"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /menu?category=&available=
func (mc *MenuController) List(c *gin.Context) {
	f := repository.MenuFilter{Category: c.Query("category")}
	if v := c.Query("available"); v != "" {
		available := v == "true"
		f.Available = &available
	}
	items, err := mc.Service.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := mc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := mc.Service.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// GET /menu/categories
func (mc *MenuController) Categories(c *gin.Context) {
	categories, err := mc.Service.Categories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /menu/available
func (mc *MenuController) Available(c *gin.Context) {
	items, err := mc.Service.Available()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}
