package cmd

import (
	"log/slog"
	"time"

	"ordering/internal/adapters/observability"
	"ordering/internal/adapters/out/mail"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/lifecycle"
	"ordering/internal/core/application/notifications"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "ordering/lifecycle"

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	clock      func() time.Time
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	tracerProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		tracer:     tracerProvider.Tracer(instrumentationName),
		meter:      meterProvider.Meter(instrumentationName),
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

func (c *CompositionRoot) CreateMessageSender() ports.MessageSender {
	return mail.NewLogSender(c.logger)
}

func (c *CompositionRoot) CreateNotificationDispatcher() *notifications.Dispatcher {
	var f notifications.RepositoriesFactory = FuncNotificationRepositoriesFactory(func() notifications.Repositories {
		return c.uowFactory.Create()
	})
	return notifications.NewDispatcher(
		f,
		c.CreateMessageSender(),
		notifications.Properties{
			Enabled:                 c.config.NotifyEnabled,
			FromAddress:             c.config.NotifyFromAddress,
			CopyApproversOnCreation: c.config.NotifyCopyApproversOnCreation,
		},
		c.clock,
		c.logger,
	)
}

// CreateLifecycleEngine wires the command and query handlers over PostgreSQL
// and wraps the result with tracing, metrics and structured logging.
func (c *CompositionRoot) CreateLifecycleEngine() lifecycle.Engine {
	var orderUoWs commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	var repos queries.RepositoriesFactory = FuncQueryRepositoriesFactory(func() queries.Repositories {
		return c.uowFactory.Create()
	})

	handlers := lifecycle.NewHandlers(orderUoWs, repos, c.CreateNotificationDispatcher(), c.clock)
	return observability.New(
		lifecycle.NewService(handlers),
		observability.WithLogger(c.logger),
		observability.WithTracer(c.tracer),
		observability.WithMeter(c.meter),
	)
}

func (c *CompositionRoot) CreatePruneNotificationLogsCommandHandler() commands.PruneNotificationLogsCommandHandler {
	var f commands.NotificationLogUoWFactory = FuncNotificationLogUoWFactory(func() commands.NotificationLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPruneNotificationLogsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePruneNotificationLogsCommandHandler(),
		c.config.NotificationRetention(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationLogUoWFactory func() commands.NotificationLogUoW

func (f FuncNotificationLogUoWFactory) Create() commands.NotificationLogUoW {
	return f()
}

type FuncQueryRepositoriesFactory func() queries.Repositories

func (f FuncQueryRepositoriesFactory) Create() queries.Repositories {
	return f()
}

type FuncNotificationRepositoriesFactory func() notifications.Repositories

func (f FuncNotificationRepositoriesFactory) Create() notifications.Repositories {
	return f()
}
