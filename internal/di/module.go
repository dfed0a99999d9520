package di

import (
	"go.uber.org/fx"

	"github.com/f1rstgear/gearflow/internal/adapter/oracle"
	"github.com/f1rstgear/gearflow/internal/adapter/sheets"
	"github.com/f1rstgear/gearflow/internal/app"
	"github.com/f1rstgear/gearflow/internal/config"
	"github.com/f1rstgear/gearflow/internal/logger"
	"github.com/f1rstgear/gearflow/internal/pkg/auth"
	"github.com/f1rstgear/gearflow/internal/server/http/handlers"
	"github.com/f1rstgear/gearflow/internal/server/http/router"
	"github.com/f1rstgear/gearflow/internal/storage/memory"
	"github.com/f1rstgear/gearflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		oracle.Module,
		sheets.Module,
		usecase.Module,
		fx.Provide(func(pusher sheets.Pusher) app.SheetPusher { return pusher }),
		fx.Provide(func(facade *app.IntakeFacade) handlers.IntakeFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
