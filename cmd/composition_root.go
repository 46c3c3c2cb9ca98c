package cmd

import (
	"log/slog"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/storage"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *storage.GormUnitOfWorkFactory
	catalog    *menu.Catalog
	log        *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, catalog *menu.Catalog, log *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: storage.NewGormUnitOfWorkFactory(gormDB).WithLogger(log),
		catalog:    catalog,
		log:        log,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSetSettingCommandHandler() commands.SetSettingCommandHandler {
	var f commands.SettingUoWFactory = FuncSettingUoWFactory(func() commands.SettingUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewSetSettingCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingQueryHandler() queries.GetSettingQueryHandler {
	return queries.NewGetSettingQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		SetSetting:        c.CreateSetSettingCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetSetting:        c.CreateGetSettingQueryHandler(),
		GetMenu:           c.CreateGetMenuQueryHandler(),
	}
}

// CreateRouter wires the HTTP server with a metrics registry of its own.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	metrics := httpadapter.NewMetrics(httpadapter.NewRegistry())
	server := httpadapter.NewServer(c.CreateHandlers(), metrics, c.log)
	return httpadapter.NewRouter(server, metrics, c.log)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettingUoWFactory func() commands.SettingUoW

func (f FuncSettingUoWFactory) Create() commands.SettingUoW {
	return f()
}
