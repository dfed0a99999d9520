package test

import (
	"context"
	"sync"
	"time"

	"github.com/f1rstgear/gearflow/internal/domain/model"
)

// NormalizerStub returns canned normalization results.
type NormalizerStub struct {
	Result      *model.NormalizationResult
	Err         error
	NormalizeFn func(context.Context, string) (*model.NormalizationResult, error)

	mu    sync.Mutex
	Calls []string
}

// Normalize records the raw input and returns the configured result.
func (s *NormalizerStub) Normalize(ctx context.Context, raw string) (*model.NormalizationResult, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, raw)
	s.mu.Unlock()
	if s.NormalizeFn != nil {
		return s.NormalizeFn(ctx, raw)
	}
	if s.Err != nil {
		return s.Result, s.Err
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &model.NormalizationResult{}, nil
}

// PusherStub simulates the spreadsheet collaborator.
type PusherStub struct {
	URL    string
	Err    error
	PushFn func(context.Context, model.OrderBatch, time.Time) (string, error)

	mu      sync.Mutex
	Batches []model.OrderBatch
}

// Push records the batch and returns the configured URL.
func (s *PusherStub) Push(ctx context.Context, batch model.OrderBatch, label time.Time) (string, error) {
	s.mu.Lock()
	s.Batches = append(s.Batches, batch)
	s.mu.Unlock()
	if s.PushFn != nil {
		return s.PushFn(ctx, batch, label)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.URL != "" {
		return s.URL, nil
	}
	return "https://sheet.example/tab", nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	Enabled        bool
	AuthenticateFn func(context.Context, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Authenticate returns a token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for the authenticated operator.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// AuthEnabled reports configured enforcement mode.
func (s AuthFacadeStub) AuthEnabled() bool {
	return s.Enabled
}

// OrderFacadeStub provides controllable behaviour for intake endpoints.
type OrderFacadeStub struct {
	ProcessFn func(context.Context, int64, string) (*model.NormalizationResult, error)
	ExcelFn   func(int64) ([]byte, error)
	JSONFn    func(int64) (string, error)
	PushFn    func(context.Context, int64, time.Time) (string, error)
}

// ProcessOrders delegates to the override or returns a single-record batch.
func (s OrderFacadeStub) ProcessOrders(ctx context.Context, operatorID int64, raw string) (*model.NormalizationResult, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, operatorID, raw)
	}
	return &model.NormalizationResult{
		Batch:   model.OrderBatch{{Invoice: "FGRB0001", Name: "stub", Amount: 650}},
		Sizes:   model.SizeSummary{"M": 1},
		Summary: "Size\tQuantity\nM\t1\nTotal\t1",
	}, nil
}

// ExportExcel returns preconfigured workbook bytes.
func (s OrderFacadeStub) ExportExcel(operatorID int64) ([]byte, error) {
	if s.ExcelFn != nil {
		return s.ExcelFn(operatorID)
	}
	return []byte("xlsx"), nil
}

// ExportJSON returns preconfigured order JSON.
func (s OrderFacadeStub) ExportJSON(operatorID int64) (string, error) {
	if s.JSONFn != nil {
		return s.JSONFn(operatorID)
	}
	return "[]", nil
}

// PushToSheet returns a preconfigured tab URL.
func (s OrderFacadeStub) PushToSheet(ctx context.Context, operatorID int64, label time.Time) (string, error) {
	if s.PushFn != nil {
		return s.PushFn(ctx, operatorID, label)
	}
	return "https://sheet.example/tab", nil
}

// ReportFacadeStub simulates report operations.
type ReportFacadeStub struct {
	GenerateFn func(context.Context, int64, string, time.Time) (model.PerformanceReport, string, error)
	ReportFn   func(int64) (*model.PerformanceReport, string)
}

// GenerateReport delegates to the override or returns a fixed projection.
func (s ReportFacadeStub) GenerateReport(ctx context.Context, operatorID int64, jsonText string, date time.Time) (model.PerformanceReport, string, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, operatorID, jsonText, date)
	}
	return model.PerformanceReport{OrderCount: 1, Revenue: 650, Cost: 520, Profit: 130}, "report", nil
}

// Report returns the last stored projection.
func (s ReportFacadeStub) Report(operatorID int64) (*model.PerformanceReport, string) {
	if s.ReportFn != nil {
		return s.ReportFn(operatorID)
	}
	return nil, ""
}

// IntakeFacadeStub aggregates facade dependencies for HTTP layer tests.
type IntakeFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ReportFacadeStub
}
