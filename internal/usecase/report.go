package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// Economics holds the fixed per-unit numbers behind the profit projection.
type Economics struct {
	UnitPrice    int
	UnitCost     int
	ProfitTarget int
}

// DefaultEconomics mirrors the reseller's standing assumptions in BDT.
var DefaultEconomics = Economics{UnitPrice: 650, UnitCost: 520, ProfitTarget: 25000}

// BuildReport projects revenue and profit for a batch on the given date.
// Pure and total: the empty batch yields zero revenue and profit, with the
// orders-needed figure computed from the same formula.
func BuildReport(batch model.OrderBatch, date time.Time, econ Economics) model.PerformanceReport {
	count := len(batch)
	revenue := count * econ.UnitPrice
	cost := count * econ.UnitCost
	profit := revenue - cost

	return model.PerformanceReport{
		Date:                  date,
		OrderCount:            count,
		Revenue:               revenue,
		Cost:                  cost,
		Profit:                profit,
		OrdersNeededForTarget: ordersNeeded(profit, econ),
	}
}

// ordersNeeded returns the smallest non-negative N such that
// profit + N*(price-cost) >= target.
func ordersNeeded(profit int, econ Economics) int {
	if profit >= econ.ProfitTarget {
		return 0
	}
	margin := econ.UnitPrice - econ.UnitCost
	if margin <= 0 {
		return 0
	}
	shortfall := econ.ProfitTarget - profit
	return (shortfall + margin - 1) / margin
}

// RenderReport formats the report as the operator-facing text block.
func RenderReport(report model.PerformanceReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n\n", report.Date.Format("2006-01-02"))
	b.WriteString("Performance Report:\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "Total Orders: %d\n", report.OrderCount)
	fmt.Fprintf(&b, "Expected Revenue: %d BDT\n", report.Revenue)
	fmt.Fprintf(&b, "Estimated Profit: %d BDT\n\n", report.Profit)
	b.WriteString("To reach the daily profit target:\n")
	fmt.Fprintf(&b, "Additional orders needed: %d\n", report.OrdersNeededForTarget)

	return b.String()
}
