package controllers

import (
	"errors"
	"strconv"

	"github.com/1997mahesh/dfcorner/pkg/resp"
	"github.com/1997mahesh/dfcorner/services"
	"github.com/1997mahesh/dfcorner/utils"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest mirrors the checkout payload: totalAmount is the
// client's figure and is stored as submitted.
type PlaceOrderRequest struct {
	Items       []services.CartLine `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64             `json:"totalAmount" binding:"required"`
	Address     string              `json:"address" binding:"required"`
}

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (o *OrderController) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := o.Svc.Place(utils.CurrentUserID(c), req.Items, req.TotalAmount, req.Address)
	switch {
	case err == nil:
		resp.OK(c, res)
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidQuantity):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, services.ErrOrderPlacement.Error())
	}
}

// GET /orders/my
func (o *OrderController) ListMy(c *gin.Context) {
	orders, err := o.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, "list orders failed")
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (o *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := o.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.NotFound(c, services.ErrOrderNotFound.Error())
		return
	}
	resp.OK(c, detail)
}
