package repository

import (
	"github.com/1997mahesh/dfcorner/entity"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// TotalSalesPaid sums total_amount over paid orders. Nothing transitions
// payment_status off "pending" yet, so this is zero until payment capture
// is wired up.
func (r *StatsRepository) TotalSalesPaid() (float64, error) {
	var total float64
	err := r.DB.Model(&entity.Order{}).
		Where("payment_status = ?", "paid").
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *StatsRepository) CountOrders() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountCustomers() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("role = ?", "customer").Count(&count).Error
	return count, err
}
