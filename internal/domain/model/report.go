package model

import "time"

// PerformanceReport projects revenue and profit for one batch using fixed
// per-unit economics. Derived, never persisted.
type PerformanceReport struct {
	Date                  time.Time `json:"date"`
	OrderCount            int       `json:"order_count"`
	Revenue               int       `json:"revenue"`
	Cost                  int       `json:"cost"`
	Profit                int       `json:"profit"`
	OrdersNeededForTarget int       `json:"orders_needed_for_target"`
}

// NormalizationResult bundles everything one normalization run produces.
type NormalizationResult struct {
	Batch    OrderBatch
	Sizes    SizeSummary
	Summary  string
	Warnings []string
}
