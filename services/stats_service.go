package services

import (
	"github.com/1997mahesh/dfcorner/repository"
)

type StatsService struct {
	Repo *repository.StatsRepository
}

func NewStatsService(repo *repository.StatsRepository) *StatsService {
	return &StatsService{Repo: repo}
}

type Stats struct {
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int64   `json:"totalOrders"`
	TotalUsers  int64   `json:"totalUsers"`
}

// Stats aggregates the admin dashboard numbers. Read-only.
func (s *StatsService) Stats() (*Stats, error) {
	sales, err := s.Repo.TotalSalesPaid()
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.CountOrders()
	if err != nil {
		return nil, err
	}
	users, err := s.Repo.CountCustomers()
	if err != nil {
		return nil, err
	}
	return &Stats{TotalSales: sales, TotalOrders: orders, TotalUsers: users}, nil
}
