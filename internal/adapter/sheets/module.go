package sheets

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/f1rstgear/gearflow/internal/config"
)

// Module exposes the spreadsheet pusher to the fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(func(c *Client) Pusher { return c }),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) *Client {
	return NewClient(p.Config.SheetsCredentialsFile, p.Config.SpreadsheetID, p.Logger)
}
