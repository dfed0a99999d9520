package oracle

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/f1rstgear/gearflow/internal/config"
	"github.com/f1rstgear/gearflow/internal/usecase"
)

// Module exposes the Gemini oracle client to the fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(func(c *Client) usecase.OracleClient { return c }),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) *Client {
	return NewClient(p.Config.GeminiAPIKey, p.Config.GeminiModel, p.Logger)
}
