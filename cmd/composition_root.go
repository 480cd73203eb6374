package cmd

import (
	"log/slog"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/adapters/out/memory/catalog"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/report"

	"github.com/go-faster/errors"
)

// CompositionRoot owns every long-lived component. Nothing in the core is a
// package-level singleton; all of it is built here once per process.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	board    *report.NoticeBoard
	reporter report.Reporter

	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	catalog    *catalog.Catalog
	ids        *kernel.Sequence

	validator *services.OrderValidator
	facade    *services.OrderFacade
	payments  *services.PaymentProcessor
}

func NewCompositionRoot(cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	products, err := catalog.NewDefaultCatalog()
	if err != nil {
		return nil, errors.Wrap(err, "build catalog")
	}

	board := report.NewNoticeBoard(cfg.NoticeTTL)
	reporter := report.Multi(report.NewSlogReporter(logger), board)
	store := memory.NewStore()

	return &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		board:      board,
		reporter:   reporter,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		catalog:    products,
		ids:        kernel.NewSequence(cfg.FirstOrderID),
		validator:  services.NewOrderValidator(reporter),
		facade:     services.NewOrderFacade(reporter),
		payments:   services.NewPaymentProcessor(reporter),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// NoticeBoard holds the transient messages reported by the core.
func (c *CompositionRoot) NoticeBoard() *report.NoticeBoard {
	return c.board
}

func (c *CompositionRoot) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.catalog, c.ids, c.validator, c.facade, c.payments)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uowFactory, c.facade)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetSystemStatusQueryHandler() queries.GetSystemStatusQueryHandler {
	return queries.NewGetSystemStatusQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.board,
		c.CreateGetSystemStatusQueryHandler(),
		jobs.Schedules{
			NoticeSweep:   c.cfg.Jobs.SweepSchedule,
			StatusSummary: c.cfg.Jobs.SummarySchedule,
		},
		c.logger,
	)
}
