package cmd

import (
	"log/slog"
	"time"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/tariffrepo"
	"shipping/internal/adapters/out/postgres/userrepo"
	redisadapter "shipping/internal/adapters/out/redis"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	users      ports.UserDirectory
	tariffs    ports.TariffRepository
	calculator services.PriceCalculator
	publisher  *kafka.OrderStatusPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var tariffs ports.TariffRepository = tariffrepo.NewGormTariffRepository(gormDB)
	if config.RedisAddr != "" {
		tariffs = redisadapter.NewTariffCache(
			tariffs,
			redisadapter.NewClient(config.RedisAddr),
			time.Duration(config.TariffCacheTTLSeconds)*time.Second,
			logger,
		)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		users:      userrepo.NewGormUserDirectory(gormDB),
		tariffs:    tariffs,
		calculator: services.NewPriceCalculator(
			kernel.MoneyFromCents(config.BasePriceCents),
			decimal.RequireFromString(config.WeightCoefficient),
		),
		publisher: kafka.NewOrderStatusPublisher(
			[]string{config.KafkaHost},
			config.KafkaOrderChangedTopic,
			logger,
		),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.users, c.tariffs, c.calculator)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(
		f,
		c.users,
		services.NewSettlement(),
		commands.CollectorConfig{
			AccountID: c.config.CollectorCardID,
			ExpMonth:  int(c.config.CollectorCardExpMonth),
			ExpYear:   int(c.config.CollectorCardExpYear),
			Code:      c.config.CollectorCardCode,
		},
		c.publisher,
	)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.tariffs, c.publisher)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateReceiveOrderCommandHandler() commands.ReceiveOrderCommandHandler {
	return commands.NewReceiveOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateArchiveReceivedOrdersCommandHandler() commands.ArchiveReceivedOrdersCommandHandler {
	retention := time.Duration(c.config.OrderRetentionHours) * time.Hour
	return commands.NewArchiveReceivedOrdersCommandHandler(c.orderUoWFactory(), retention, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCardCommandHandler() commands.RegisterCardCommandHandler {
	return commands.NewRegisterCardCommandHandler(c.accountUoWFactory(), c.users)
}

func (c *CompositionRoot) CreateTopUpCardCommandHandler() commands.TopUpCardCommandHandler {
	return commands.NewTopUpCardCommandHandler(c.accountUoWFactory(), c.users)
}

func (c *CompositionRoot) CreateRemoveCardCommandHandler() commands.RemoveCardCommandHandler {
	var f commands.CardUoWFactory = FuncCardUoWFactory(func() commands.CardUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCardCommandHandler(f, c.users)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserPaymentsQueryHandler() queries.GetUserPaymentsQueryHandler {
	return queries.NewGetUserPaymentsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every endpoint handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreatePayOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateReceiveOrderCommandHandler(),
		c.CreateArchiveOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateRegisterCardCommandHandler(),
		c.CreateTopUpCardCommandHandler(),
		c.CreateRemoveCardCommandHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetUserPaymentsQueryHandler(),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateArchiveReceivedOrdersCommandHandler(), c.logger)
}

// Close releases outbound connections held by the root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCardUoWFactory func() commands.CardUoW

func (f FuncCardUoWFactory) Create() commands.CardUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
