package repository

import (
	"context"
	"time"

	"github.com/medantra/hospital-api/internal/domain/entity"
)

// ParticularItemFilter selects bill items for the particulars report. Exactly
// one of Name or ParticularID is set: Name matches case-insensitively as a
// substring, ParticularID resolves through the charge master and matches the
// item text exactly.
type ParticularItemFilter struct {
	Name         string
	ParticularID *uint
	Start        time.Time
	End          time.Time
}

// ReportRepository defines the item-level queries behind the particulars
// report and its autocomplete.
type ReportRepository interface {
	// ListMatchingOPItems returns matching OP bill items with the bill, its
	// patient and the item's doctor preloaded, ordered by bill date descending.
	ListMatchingOPItems(ctx context.Context, filter *ParticularItemFilter) ([]entity.OPBillItem, error)
	// ListMatchingIPItems returns matching IP bill items with the bill, its
	// patient and its doctor preloaded, ordered by bill date descending.
	ListMatchingIPItems(ctx context.Context, filter *ParticularItemFilter) ([]entity.IPBillItem, error)
	// DistinctOPParticulars returns distinct OP item names containing the
	// search text. DistinctIPParticulars is the IP twin.
	DistinctOPParticulars(ctx context.Context, search string) ([]string, error)
	DistinctIPParticulars(ctx context.Context, search string) ([]string, error)
}
