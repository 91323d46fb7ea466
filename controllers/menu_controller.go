package controllers

import (
	"github.com/1997mahesh/dfcorner/pkg/resp"
	"github.com/1997mahesh/dfcorner/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu (public)
func (m *MenuController) GetMenu(c *gin.Context) {
	view, err := m.Svc.GetMenu()
	if err != nil {
		resp.ServerError(c, "load menu failed")
		return
	}
	resp.OK(c, view)
}
