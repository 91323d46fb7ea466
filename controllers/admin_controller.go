package controllers

import (
	"github.com/1997mahesh/dfcorner/pkg/resp"
	"github.com/1997mahesh/dfcorner/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.StatsService
}

func NewAdminController(svc *services.StatsService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admin/stats — the role gate lives in the route middleware, so a
// non-admin caller never reaches the aggregation queries.
func (a *AdminController) Stats(c *gin.Context) {
	stats, err := a.Svc.Stats()
	if err != nil {
		resp.ServerError(c, "load stats failed")
		return
	}
	resp.OK(c, stats)
}
