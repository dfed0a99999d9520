package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/f1rstgear/gearflow/internal/adapter/sheets"
	"github.com/f1rstgear/gearflow/internal/app"
	"github.com/f1rstgear/gearflow/internal/config"
	"github.com/f1rstgear/gearflow/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		NormalizerMode:  config.NormalizerRule,
		UnitPrice:       650,
		UnitCost:        520,
		ProfitTarget:    25000,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pusherStub := &test.PusherStub{}

	var facade *app.IntakeFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(sheets.Pusher(pusherStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected intake facade instance")
	}
}
