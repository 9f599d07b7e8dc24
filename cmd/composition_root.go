package cmd

import (
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/observability"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const instrumentationName = "fulfillment"

// CompositionRoot wires adapters, handlers and jobs. Every handler shares the
// same unit-of-work factory.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  commands.UoWFactory
	fulfillment commands.FulfillmentService
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, instruments *telemetry.Instruments) (*CompositionRoot, error) {
	selector, err := services.NewCourierSelector(config.FanOutLimit)
	if err != nil {
		return nil, err
	}

	uowFactory := commands.UoWFactoryFrom(postgres.NewGormUnitOfWorkFactory(gormDB))
	logger := instruments.Logger

	core := commands.NewFulfillment(uowFactory, selector, config.RetryPolicy(), logger.With("component", "fulfillment"))
	decorated := observability.New(core,
		observability.WithLogger(logger),
		observability.WithTracer(instruments.Tracer(instrumentationName)),
		observability.WithMeter(instruments.Meter(instrumentationName)),
	)

	return &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  uowFactory,
		fulfillment: decorated,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) FulfillmentService() commands.FulfillmentService {
	return c.fulfillment
}

func (c *CompositionRoot) CreateRegisterBusinessCommandHandler() *commands.RegisterBusinessCommandHandler {
	return commands.NewRegisterBusinessCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() *commands.AddProductCommandHandler {
	return commands.NewAddProductCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() *commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierNotificationsQueryHandler() queries.GetCourierNotificationsQueryHandler {
	return queries.NewGetCourierNotificationsQueryHandler(c.gormDB)
}

// HTTPServer builds the Echo instance with every route mounted.
func (c *CompositionRoot) HTTPServer() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		Fulfillment:      c.fulfillment,
		RegisterBusiness: c.CreateRegisterBusinessCommandHandler(),
		CreateCourier:    c.CreateCreateCourierCommandHandler(),
		AddProduct:       c.CreateAddProductCommandHandler(),
		AddCartItem:      c.CreateAddCartItemCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetInbox:         c.CreateGetCourierNotificationsQueryHandler(),
	})
	return httpadapter.NewEcho(server, c.logger)
}

func (c *CompositionRoot) JobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.fulfillment, jobs.Settings{
		FanOutRetrySchedule:        c.config.FanOutRetrySchedule,
		FanOutRetryBatch:           c.config.FanOutRetryBatch,
		NotificationTTL:            c.config.NotificationTTL,
		NotificationExpirySchedule: c.config.NotificationExpirySchedule,
	}, c.logger)
}
