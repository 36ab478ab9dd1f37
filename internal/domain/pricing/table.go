package pricing

import (
	"errors"
	"sync"

	"crane_fmv/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrInvalidPrice      = errors.New("price must be positive")
)

// DefaultPrices is the catalogue price per tier, in USD.
var DefaultPrices = map[entities.ReportType]decimal.Decimal{
	entities.ReportTypeSpotCheck:    decimal.NewFromInt(250),
	entities.ReportTypeProfessional: decimal.NewFromInt(995),
	entities.ReportTypeFleet:        decimal.NewFromInt(1495),
}

// Table maps a report tier to its price. It is loaded once at startup and
// changes only through Update; reports keep the price they were created with.
type Table struct {
	mu     sync.RWMutex
	prices map[entities.ReportType]decimal.Decimal
}

// NewTable builds a table holding every tier. Tiers missing from prices fall
// back to DefaultPrices.
func NewTable(prices map[entities.ReportType]decimal.Decimal) (*Table, error) {
	t := &Table{prices: make(map[entities.ReportType]decimal.Decimal, len(entities.ReportTypes))}
	for _, rt := range entities.ReportTypes {
		p, ok := prices[rt]
		if !ok {
			p = DefaultPrices[rt]
		}
		if !p.IsPositive() {
			return nil, ErrInvalidPrice
		}
		t.prices[rt] = p
	}
	for rt := range prices {
		if _, ok := t.prices[rt]; !ok {
			return nil, ErrUnknownReportType
		}
	}
	return t, nil
}

func (t *Table) Lookup(rt entities.ReportType) (decimal.Decimal, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.prices[rt]
	if !ok {
		return decimal.Decimal{}, ErrUnknownReportType
	}
	return p, nil
}

func (t *Table) Update(rt entities.ReportType, price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.prices[rt]; !ok {
		return ErrUnknownReportType
	}
	t.prices[rt] = price
	return nil
}

// Snapshot returns a copy of the current prices.
func (t *Table) Snapshot() map[entities.ReportType]decimal.Decimal {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[entities.ReportType]decimal.Decimal, len(t.prices))
	for k, v := range t.prices {
		out[k] = v
	}
	return out
}
