package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/medantra/hospital-api/internal/domain/entity"
)

// BillRepository defines the interface for bill persistence. Create calls
// persist the header and its items in one transaction.
type BillRepository interface {
	CreateOPBill(ctx context.Context, bill *entity.OPBill) error
	CreateIPBill(ctx context.Context, bill *entity.IPBill) error
	GetOPBillByID(ctx context.Context, id uuid.UUID) (*entity.OPBill, error)
	GetIPBillByID(ctx context.Context, id uuid.UUID) (*entity.IPBill, error)
	// ListOPBillsBetween returns OP bills dated in [start, end] with patient
	// and doctor preloaded, newest first. ListIPBillsBetween is the IP twin.
	ListOPBillsBetween(ctx context.Context, start, end time.Time) ([]entity.OPBill, error)
	ListIPBillsBetween(ctx context.Context, start, end time.Time) ([]entity.IPBill, error)
	CountOPBillsOn(ctx context.Context, day time.Time) (int64, error)
	CountIPBillsOn(ctx context.Context, day time.Time) (int64, error)
	// SumNetAmountsOn returns the OP and IP net revenue for a calendar day,
	// with null nets counted as zero.
	SumNetAmountsOn(ctx context.Context, day time.Time) (opNet, ipNet float64, err error)
}
