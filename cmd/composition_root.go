package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.ShipmentCache
	notifier   ports.OrderStatusNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cache ports.ShipmentCache,
	notifier ports.OrderStatusNotifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRecomputeOrderStatusCommandHandler() commands.RecomputeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeOrderStatusCommandHandler(f, services.NewOrderStatusPolicy(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	recomputer := c.CreateRecomputeOrderStatusCommandHandler()
	return commands.NewCreateShipmentCommandHandler(f, &recomputer, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	recomputer := c.CreateRecomputeOrderStatusCommandHandler()
	return commands.NewUpdateShipmentCommandHandler(f, &recomputer, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderShipmentsQueryHandler() queries.GetOrderShipmentsQueryHandler {
	return queries.NewGetOrderShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerShipmentsQueryHandler() queries.GetSellerShipmentsQueryHandler {
	return queries.NewGetSellerShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShipmentOrdersQueryHandler() queries.GetActiveShipmentOrdersQueryHandler {
	return queries.NewGetActiveShipmentOrdersQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
