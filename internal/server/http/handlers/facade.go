package handlers

import (
	"context"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(ctx context.Context, password string) (string, error)
	ParseToken(token string) (int64, error)
	AuthEnabled() bool
}

// OrderFacade encapsulates batch intake and export operations exposed via HTTP.
type OrderFacade interface {
	ProcessOrders(ctx context.Context, operatorID int64, raw string) (*model.NormalizationResult, error)
	ExportExcel(operatorID int64) ([]byte, error)
	ExportJSON(operatorID int64) (string, error)
	PushToSheet(ctx context.Context, operatorID int64, label time.Time) (string, error)
}

// ReportFacade provides performance report operations.
type ReportFacade interface {
	GenerateReport(ctx context.Context, operatorID int64, jsonText string, date time.Time) (model.PerformanceReport, string, error)
	Report(operatorID int64) (*model.PerformanceReport, string)
}

// IntakeFacade aggregates the full set of operations used across handlers.
type IntakeFacade interface {
	AuthFacade
	OrderFacade
	ReportFacade
}
