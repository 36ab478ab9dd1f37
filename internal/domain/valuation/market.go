package valuation

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// MarketData supplies the pricing inputs the evaluator scores against. A
// snapshot is taken once per evaluation run so every asset of a report is
// priced against the same figures.
type MarketData interface {
	Snapshot(ctx context.Context) (MarketSnapshot, error)
}

// MarketSnapshot is an immutable set of market figures.
type MarketSnapshot struct {
	ID                 string
	ValuePerTon        map[string]decimal.Decimal
	DefaultValuePerTon decimal.Decimal
	RegionFactors      map[string]float64
}

// valuePerTon resolves a manufacturer against the snapshot. The bool is false
// when the default figure had to be used. When several catalogue names occur
// in the manufacturer, the longest wins and ties go to the lexically smallest,
// so "Terex Demag" always resolves to "demag".
func (s MarketSnapshot) valuePerTon(manufacturer string) (decimal.Decimal, bool) {
	m := strings.ToLower(strings.TrimSpace(manufacturer))
	if v, ok := s.ValuePerTon[m]; ok {
		return v, true
	}
	best := ""
	for name := range s.ValuePerTon {
		if name == "" || !strings.Contains(m, name) {
			continue
		}
		if best == "" || len(name) > len(best) || (len(name) == len(best) && name < best) {
			best = name
		}
	}
	if best != "" {
		return s.ValuePerTon[best], true
	}
	return s.DefaultValuePerTon, false
}

func (s MarketSnapshot) regionFactor(location string) float64 {
	loc := strings.ToUpper(location)
	if f, ok := s.RegionFactors[loc]; ok {
		return f
	}
	if i := strings.IndexAny(loc, "-_"); i > 0 {
		if f, ok := s.RegionFactors[loc[:i]]; ok {
			return f
		}
	}
	return 1.0
}

// StaticMarket serves a fixed snapshot.
type StaticMarket struct {
	snapshot MarketSnapshot
}

func NewStaticMarket(snapshot MarketSnapshot) *StaticMarket {
	return &StaticMarket{snapshot: snapshot}
}

func (m *StaticMarket) Snapshot(context.Context) (MarketSnapshot, error) {
	return m.snapshot, nil
}

// DefaultSnapshot holds the reference new-machine value per rated ton for the
// common all-terrain and crawler crane manufacturers, in USD.
func DefaultSnapshot() MarketSnapshot {
	return MarketSnapshot{
		ID: "static-2026.10",
		ValuePerTon: map[string]decimal.Decimal{
			"liebherr":  decimal.NewFromInt(16500),
			"demag":     decimal.NewFromInt(15000),
			"tadano":    decimal.NewFromInt(14500),
			"grove":     decimal.NewFromInt(13500),
			"manitowoc": decimal.NewFromInt(13500),
			"kobelco":   decimal.NewFromInt(12500),
			"terex":     decimal.NewFromInt(12000),
			"link-belt": decimal.NewFromInt(12000),
			"sany":      decimal.NewFromInt(9000),
			"xcmg":      decimal.NewFromInt(8500),
			"zoomlion":  decimal.NewFromInt(8500),
		},
		DefaultValuePerTon: decimal.NewFromInt(10000),
		RegionFactors: map[string]float64{
			"US": 1.00,
			"CA": 0.98,
			"DE": 1.05,
			"NL": 1.04,
			"EU": 1.04,
			"GB": 1.02,
			"UK": 1.02,
			"AE": 1.08,
			"SA": 1.07,
			"AU": 1.04,
			"BR": 0.92,
			"IN": 0.88,
		},
	}
}
