package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/domain/model"
	"github.com/f1rstgear/gearflow/internal/export"
	"github.com/f1rstgear/gearflow/internal/storage/memory"
	"github.com/f1rstgear/gearflow/internal/usecase"
)

// SheetPusher is the external spreadsheet collaborator as the facade sees it.
type SheetPusher interface {
	Push(ctx context.Context, batch model.OrderBatch, label time.Time) (string, error)
}

// IntakeFacade aggregates the order-intake operations behind a single
// surface for the HTTP handlers. Each operation is synchronous and fully
// replaces whatever session state it owns.
type IntakeFacade struct {
	auth       *usecase.AuthUseCase
	normalizer usecase.Normalizer
	summarizer *usecase.RuleNormalizer
	econ       usecase.Economics
	sessions   memory.Store
	pusher     SheetPusher
}

// NewIntakeFacade constructs IntakeFacade.
func NewIntakeFacade(
	auth *usecase.AuthUseCase,
	normalizer usecase.Normalizer,
	econ usecase.Economics,
	sessions memory.Store,
	pusher SheetPusher,
) *IntakeFacade {
	return &IntakeFacade{
		auth:       auth,
		normalizer: normalizer,
		summarizer: usecase.NewRuleNormalizer(econ.UnitPrice, nil),
		econ:       econ,
		sessions:   sessions,
		pusher:     pusher,
	}
}

// Authenticate validates the operator password and returns a session token.
func (f *IntakeFacade) Authenticate(ctx context.Context, password string) (string, error) {
	return f.auth.Authenticate(ctx, password)
}

// ParseToken extracts the operator ID from a session token.
func (f *IntakeFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// AuthEnabled reports whether an operator credential is configured.
func (f *IntakeFacade) AuthEnabled() bool {
	return f.auth.Enabled()
}

// ProcessOrders normalizes raw chat text into a batch and replaces the
// operator's held batch on success. On failure the session is untouched; a
// partial result (such as the oracle's summary) may accompany the error.
func (f *IntakeFacade) ProcessOrders(ctx context.Context, operatorID int64, raw string) (*model.NormalizationResult, error) {
	result, err := f.normalizer.Normalize(ctx, raw)
	if err != nil {
		return result, err
	}

	jsonText, merr := json.MarshalIndent(result.Batch, "", "  ")
	if merr != nil {
		return nil, fmt.Errorf("encode batch: %w", merr)
	}

	f.sessions.ReplaceBatch(operatorID, result.Batch, string(jsonText), result.Sizes, result.Summary)
	return result, nil
}

// GenerateReport computes the performance projection. When jsonText is
// non-empty it is decoded, sanitized, and becomes the new session batch;
// otherwise the held batch is used. A decode failure leaves every piece of
// session state, including any previously generated report, intact.
func (f *IntakeFacade) GenerateReport(_ context.Context, operatorID int64, jsonText string, date time.Time) (model.PerformanceReport, string, error) {
	var batch model.OrderBatch

	if jsonText != "" {
		records, err := usecase.DecodeBatch(jsonText)
		if err != nil {
			return model.PerformanceReport{}, "", err
		}
		sanitized, _ := usecase.SanitizeBatch(records, f.econ.UnitPrice)
		batch = sanitized

		sizes := f.summarizer.Summarize(batch)
		f.sessions.ReplaceBatch(operatorID, batch, jsonText, sizes, "")
	} else {
		session := f.sessions.Get(operatorID)
		if len(session.Batch) == 0 {
			return model.PerformanceReport{}, "", domainErrors.ErrNoSession
		}
		batch = session.Batch
	}

	report := usecase.BuildReport(batch, date, f.econ)
	text := usecase.RenderReport(report)
	f.sessions.ReplaceReport(operatorID, report, text)

	return report, text, nil
}

// Report returns the last generated report for the operator, if any.
func (f *IntakeFacade) Report(operatorID int64) (*model.PerformanceReport, string) {
	session := f.sessions.Get(operatorID)
	return session.Report, session.ReportText
}

// ExportExcel renders the held batch as an xlsx workbook.
func (f *IntakeFacade) ExportExcel(operatorID int64) ([]byte, error) {
	session := f.sessions.Get(operatorID)
	if len(session.Batch) == 0 {
		return nil, domainErrors.ErrNoSession
	}
	return export.Excel(session.Batch)
}

// ExportJSON returns the held batch as order JSON.
func (f *IntakeFacade) ExportJSON(operatorID int64) (string, error) {
	session := f.sessions.Get(operatorID)
	if len(session.Batch) == 0 {
		return "", domainErrors.ErrNoSession
	}
	if session.JSON != "" {
		return session.JSON, nil
	}
	data, err := json.MarshalIndent(session.Batch, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode batch: %w", err)
	}
	return string(data), nil
}

// PushToSheet writes the held batch to the shared spreadsheet as a new tab.
// Failures here never disturb the session: export and report stay available.
func (f *IntakeFacade) PushToSheet(ctx context.Context, operatorID int64, label time.Time) (string, error) {
	session := f.sessions.Get(operatorID)
	if len(session.Batch) == 0 {
		return "", domainErrors.ErrNoSession
	}
	return f.pusher.Push(ctx, session.Batch, label)
}
