package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpin "lifecycle/internal/adapters/in/http"
	"lifecycle/internal/adapters/out/postgres"
	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/expense"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/services"
	"lifecycle/internal/jobs"
)

type CompositionRoot struct {
	config          Config
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	builder         services.SnapshotBuilder
	defaultCurrency kernel.Currency
}

// NewCompositionRoot fails for an unknown bucket mapping version or default
// currency, so a misconfigured process does not start.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	mapping, err := expense.BucketMappingByVersion(config.BucketMappingVersion)
	if err != nil {
		return CompositionRoot{}, err
	}

	calculator, err := services.NewProfitCalculator(mapping)
	if err != nil {
		return CompositionRoot{}, err
	}

	currency := kernel.DefaultCurrency()
	if config.DefaultCurrency != "" {
		if currency, err = kernel.NewCurrency(config.DefaultCurrency); err != nil {
			return CompositionRoot{}, fmt.Errorf("DEFAULT_CURRENCY: %w", err)
		}
	}

	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		builder:         services.NewSnapshotBuilder(calculator),
		defaultCurrency: currency,
	}, nil
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfigureLifecycleCommandHandler() commands.ConfigureLifecycleCommandHandler {
	return commands.NewConfigureLifecycleCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateTransitionStatusCommandHandler() commands.TransitionStatusCommandHandler {
	return commands.NewTransitionStatusCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateAddMilestoneCommandHandler() commands.AddMilestoneCommandHandler {
	return commands.NewAddMilestoneCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMilestoneCommandHandler() commands.UpdateMilestoneCommandHandler {
	return commands.NewUpdateMilestoneCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMilestoneCommandHandler() commands.RemoveMilestoneCommandHandler {
	return commands.NewRemoveMilestoneCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateSetMilestoneStatusCommandHandler() commands.SetMilestoneStatusCommandHandler {
	return commands.NewSetMilestoneStatusCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateAppendExpenseCommandHandler() commands.AppendExpenseCommandHandler {
	var f commands.ExpenseUoWFactory = FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendExpenseCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readerFactory())
}

func (c *CompositionRoot) CreateGetOrderLifecycleQueryHandler() queries.GetOrderLifecycleQueryHandler {
	return queries.NewGetOrderLifecycleQueryHandler(c.readerFactory(), c.builder)
}

func (c *CompositionRoot) CreateListExpensesQueryHandler() queries.ListExpensesQueryHandler {
	return queries.NewListExpensesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.readerFactory(), c.builder)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	registerOrder := c.CreateRegisterOrderCommandHandler()
	configure := c.CreateConfigureLifecycleCommandHandler()
	transition := c.CreateTransitionStatusCommandHandler()
	addMilestone := c.CreateAddMilestoneCommandHandler()
	updateMilestone := c.CreateUpdateMilestoneCommandHandler()
	removeMilestone := c.CreateRemoveMilestoneCommandHandler()
	setMilestoneStatus := c.CreateSetMilestoneStatusCommandHandler()
	appendExpense := c.CreateAppendExpenseCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		RegisterOrder:      &registerOrder,
		ConfigureLifecycle: &configure,
		TransitionStatus:   &transition,
		AddMilestone:       &addMilestone,
		UpdateMilestone:    &updateMilestone,
		RemoveMilestone:    &removeMilestone,
		SetMilestoneStatus: &setMilestoneStatus,
		AppendExpense:      &appendExpense,
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderLifecycle:  c.CreateGetOrderLifecycleQueryHandler(),
		ListExpenses:       c.CreateListExpensesQueryHandler(),
		Dashboard:          c.CreateGetDashboardQueryHandler(),
	}, c.defaultCurrency)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDashboardQueryHandler(), c.config.ReportSchedule, logger)
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readerFactory() queries.ReaderFactory {
	return FuncReaderFactory(func() queries.Reader {
		return c.uowFactory.CreateGorm()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}

type FuncReaderFactory func() queries.Reader

func (f FuncReaderFactory) Create() queries.Reader {
	return f()
}
