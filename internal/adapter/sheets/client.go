package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/domain/model"
	"github.com/f1rstgear/gearflow/internal/export"
)

// Pusher writes one batch to a shared spreadsheet as a brand-new tab.
type Pusher interface {
	Push(ctx context.Context, batch model.OrderBatch, label time.Time) (string, error)
}

// Client pushes batches to a Google spreadsheet using a service account.
// Every push creates one fresh tab; existing tabs are never touched.
type Client struct {
	credentialsFile string
	spreadsheetID   string
	logger          *slog.Logger

	// newService is swappable in tests
	newService func(ctx context.Context) (*sheetsapi.Service, error)
}

// NewClient builds a sheets client. Credentials are read lazily on push so
// the service boots without the spreadsheet integration configured.
func NewClient(credentialsFile, spreadsheetID string, logger *slog.Logger) *Client {
	c := &Client{
		credentialsFile: credentialsFile,
		spreadsheetID:   spreadsheetID,
		logger:          logger,
	}
	c.newService = func(ctx context.Context) (*sheetsapi.Service, error) {
		return sheetsapi.NewService(ctx,
			option.WithCredentialsFile(c.credentialsFile),
			option.WithScopes(sheetsapi.SpreadsheetsScope),
		)
	}
	return c
}

// Push creates a tab named after the label timestamp and writes the batch
// into it, header row first. Returns the URL of the new tab.
func (c *Client) Push(ctx context.Context, batch model.OrderBatch, label time.Time) (string, error) {
	if c.credentialsFile == "" || c.spreadsheetID == "" {
		return "", fmt.Errorf("%w: spreadsheet integration is not configured", domainErrors.ErrSpreadsheetAuth)
	}

	svc, err := c.newService(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrSpreadsheetAuth, err)
	}

	// full date-time in the title keeps pushes from colliding
	title := "Orders_" + label.Format("20060102_150405")

	addResp, err := svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return "", c.wrapAPIError("add sheet", err)
	}

	values := make([][]interface{}, 0, len(batch)+1)
	header := make([]interface{}, len(export.Columns))
	for i, col := range export.Columns {
		header[i] = col
	}
	values = append(values, header)
	for _, rec := range batch {
		values = append(values, []interface{}{rec.Invoice, rec.Name, rec.Address, rec.Phone, rec.Amount, rec.Note})
	}

	writeRange := fmt.Sprintf("'%s'!A1", title)
	_, err = svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return "", c.wrapAPIError("write rows", err)
	}

	var gid int64
	if len(addResp.Replies) > 0 && addResp.Replies[0].AddSheet != nil && addResp.Replies[0].AddSheet.Properties != nil {
		gid = addResp.Replies[0].AddSheet.Properties.SheetId
	}

	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", c.spreadsheetID, gid)
	c.logger.Info("batch pushed to spreadsheet", slog.String("tab", title), slog.Int("rows", len(batch)))
	return url, nil
}

func (c *Client) wrapAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		c.logger.Error("sheets request failed", slog.String("op", op), slog.Int("status", apiErr.Code))
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return fmt.Errorf("%w: %v", domainErrors.ErrSpreadsheetAuth, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", domainErrors.ErrSpreadsheetWrite, op, err)
}
