package services

import (
	"github.com/1997mahesh/dfcorner/entity"
	"github.com/1997mahesh/dfcorner/pkg/metrics"
	"github.com/1997mahesh/dfcorner/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

// CartLine is one checkout line. Price is the client's snapshot of the
// menu price at add-to-cart time and is stored as submitted; the server
// does not reprice against the catalog.
type CartLine struct {
	MenuItemID     uint    `json:"id" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required"`
	Price          float64 `json:"price"`
	Customizations string  `json:"customizations"`
}

type PlaceOrderRes struct {
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

// Place commits one order plus its line items as a single transaction.
// Any insert failure rolls back the whole checkout.
func (s *OrderService) Place(userID uint, lines []CartLine, totalAmount float64, address string) (*PlaceOrderRes, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	var out PlaceOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:        userID,
			TotalAmount:   totalAmount,
			Status:        "placed",
			PaymentStatus: "pending",
			Address:       address,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:        order.ID,
				MenuItemID:     l.MenuItemID,
				Quantity:       l.Quantity,
				Price:          l.Price,
				Customizations: l.Customizations,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = PlaceOrderRes{OrderID: order.ID, Status: order.Status}
		return nil
	})
	if err != nil {
		return nil, ErrOrderPlacement
	}

	metrics.OrdersPlaced.Inc()
	return &out, nil
}

// ListForUser returns the caller's order history, newest first.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

type OrderDetail struct {
	ID            uint               `json:"id"`
	TotalAmount   float64            `json:"totalAmount"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
	Address       string             `json:"address"`
	Items         []entity.OrderItem `json:"items"`
}

// DetailForUser loads one order with items, owner-scoped.
func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return &OrderDetail{
		ID:            o.ID,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Address:       o.Address,
		Items:         o.OrderItems,
	}, nil
}
