package dto

import "github.com/f1rstgear/gearflow/internal/domain/model"

// ReportRequest drives report generation. Orders, when present, is raw
// order JSON that replaces the held batch; Date defaults to today.
type ReportRequest struct {
	Date   string `json:"date,omitempty"`
	Orders string `json:"orders,omitempty"`
}

// ReportResponse returns the computed projection and its rendered form.
type ReportResponse struct {
	Report model.PerformanceReport `json:"report"`
	Text   string                  `json:"text"`
}
