package service

import (
	"context"
	"time"

	"github.com/alhuzaifa/tailor-api/internal/calculator"
	"github.com/alhuzaifa/tailor-api/internal/domain/entity"
	"github.com/alhuzaifa/tailor-api/internal/domain/repository"
)

const urgentPreviewSize = 5

// DashboardService aggregates shop-wide counters for the landing page
type DashboardService struct {
	billRepo       repository.BillRepository
	workerRepo     repository.WorkerRepository
	alterationRepo repository.AlterationRepository
	now            func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	billRepo repository.BillRepository,
	workerRepo repository.WorkerRepository,
	alterationRepo repository.AlterationRepository,
) *DashboardService {
	return &DashboardService{
		billRepo:       billRepo,
		workerRepo:     workerRepo,
		alterationRepo: alterationRepo,
		now:            time.Now,
	}
}

// DashboardStats is the shop overview snapshot.
type DashboardStats struct {
	TotalBills       int     `json:"totalBills"`
	UndeliveredBills int     `json:"undeliveredBills"`
	UrgentBills      int     `json:"urgentBills"`
	DeliveredBills   int     `json:"deliveredBills"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalOutstanding float64 `json:"totalOutstanding"`

	PendingAlterations int `json:"pendingAlterations"`
	Workers            int `json:"workers"`

	UrgentPreview []entity.Bill `json:"urgentPreview"`
}

// Stats walks the ledger and counts bills per derived tag, plus the
// money booked and still owed.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	bills, err := s.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &DashboardStats{TotalBills: len(bills), UrgentPreview: []entity.Bill{}}
	for _, bill := range bills {
		facts := billFacts(&bill)
		if calculator.IsDelivered(facts) {
			stats.DeliveredBills++
		} else {
			stats.UndeliveredBills++
			if calculator.IsUrgent(facts, now) {
				stats.UrgentBills++
				if len(stats.UrgentPreview) < urgentPreviewSize {
					stats.UrgentPreview = append(stats.UrgentPreview, bill)
				}
			}
		}
		stats.TotalRevenue += bill.TotalAmount
		if balance := bill.TotalAmount - bill.AdvancePayment; balance > 0 {
			stats.TotalOutstanding += balance
		}
	}
	stats.TotalRevenue = calculator.Round2(stats.TotalRevenue)
	stats.TotalOutstanding = calculator.Round2(stats.TotalOutstanding)

	alterations, err := s.alterationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range alterations {
		if !a.IsReady {
			stats.PendingAlterations++
		}
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Workers = len(workers)

	return stats, nil
}
