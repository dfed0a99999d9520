package dto

import "github.com/f1rstgear/gearflow/internal/domain/model"

// ProcessRequest carries the raw chat text to normalize.
type ProcessRequest struct {
	Text string `json:"text"`
}

// ProcessResponse returns the normalized batch and its derived artifacts.
type ProcessResponse struct {
	Orders   model.OrderBatch  `json:"orders"`
	Sizes    model.SizeSummary `json:"sizes"`
	Summary  string            `json:"summary"`
	Warnings []string          `json:"warnings,omitempty"`
}

// ProcessErrorResponse reports a failed normalization. The summary field
// carries whatever partial output survived the failure.
type ProcessErrorResponse struct {
	Error   string `json:"error"`
	Summary string `json:"summary,omitempty"`
}

// PushResponse returns the location of the freshly written spreadsheet tab.
type PushResponse struct {
	URL string `json:"url"`
}
