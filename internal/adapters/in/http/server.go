package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"lifecycle/internal/adapters/out/xlsx"
	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/lifecycle"
	"lifecycle/internal/core/domain/services"
	"lifecycle/internal/generated/servers"
	"lifecycle/internal/pkg/errs"
)

// CommandHandler runs one write use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler runs one read use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// DashboardHandler builds the dashboard and exposes the snapshots behind it
// for the spreadsheet export.
type DashboardHandler interface {
	QueryHandler[queries.GetDashboardQuery, services.Dashboard]
	Snapshots(ctx context.Context, query queries.GetDashboardQuery) ([]services.LifecycleSnapshot, error)
}

// Handlers groups the use cases the HTTP server delegates to.
type Handlers struct {
	RegisterOrder      CommandHandler[commands.RegisterOrderCommand]
	ConfigureLifecycle CommandHandler[commands.ConfigureLifecycleCommand]
	TransitionStatus   CommandHandler[commands.TransitionStatusCommand]
	AddMilestone       CommandHandler[commands.AddMilestoneCommand]
	UpdateMilestone    CommandHandler[commands.UpdateMilestoneCommand]
	RemoveMilestone    CommandHandler[commands.RemoveMilestoneCommand]
	SetMilestoneStatus CommandHandler[commands.SetMilestoneStatusCommand]
	AppendExpense      CommandHandler[commands.AppendExpenseCommand]

	GetOrder          QueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetOrderLifecycle QueryHandler[queries.GetOrderLifecycleQuery, services.LifecycleSnapshot]
	ListExpenses      QueryHandler[queries.ListExpensesQuery, []queries.ListExpensesQueryResponse]
	Dashboard         DashboardHandler
}

// Server implements servers.ServerInterface on top of the lifecycle use cases.
// Every write answers with the state recomputed after the write.
type Server struct {
	handlers        Handlers
	defaultCurrency kernel.Currency
	now             func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. Orders registered without a currency
// get defaultCurrency.
func NewServer(handlers Handlers, defaultCurrency kernel.Currency) *Server {
	return &Server{
		handlers:        handlers,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// RegisterOrder godoc
//
//	@Summary	Register a sales order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		servers.NewOrder	true	"Order"
//	@Success	201		{object}	servers.Order
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/orders [post]
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var body servers.RegisterOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	currency := s.defaultCurrency
	if body.Currency != nil {
		c, err := kernel.NewCurrency(*body.Currency)
		if err != nil {
			return err
		}
		currency = c
	}

	totalAmount, err := toStoredAmount("total amount", body.TotalAmount.Decimal)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterOrderCommand(
		orderID,
		body.OrderNo,
		deref(body.CustomerName),
		totalAmount,
		currency,
		deref(body.SalesStatus),
	)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder godoc
//
//	@Summary	Read a registered order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"	format(uuid)
//	@Success	200		{object}	servers.Order
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// GetOrderLifecycle godoc
//
//	@Summary	Lifecycle snapshot of an order, recomputed on every call
//	@Tags		lifecycle
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"	format(uuid)
//	@Success	200		{object}	servers.LifecycleSnapshot
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle [get]
func (s *Server) GetOrderLifecycle(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}
	return s.respondSnapshot(ctx, http.StatusOK, orderID)
}

// ConfigureLifecycle godoc
//
//	@Summary	Create or fully replace the lifecycle configuration
//	@Tags		lifecycle
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string						true	"Order id"	format(uuid)
//	@Param		body	body		servers.LifecycleSettings	true	"Settings"
//	@Success	200		{object}	servers.LifecycleSnapshot
//	@Failure	400		{object}	servers.Error
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle [put]
func (s *Server) ConfigureLifecycle(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}

	var body servers.ConfigureLifecycleJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	settings, err := toSettings(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfigureLifecycleCommand(orderID, settings)
	if err != nil {
		return err
	}

	if err = s.handlers.ConfigureLifecycle.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSnapshot(ctx, http.StatusOK, orderID)
}

// TransitionStatus godoc
//
//	@Summary	Move the order to another lifecycle status
//	@Tags		lifecycle
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string					true	"Order id"	format(uuid)
//	@Param		body	body		servers.StatusChange	true	"Target status"
//	@Success	200		{object}	servers.LifecycleSnapshot
//	@Failure	404		{object}	servers.Error
//	@Failure	422		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle/status [put]
func (s *Server) TransitionStatus(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}

	var body servers.TransitionStatusJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	target, err := lifecycle.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionStatusCommand(orderID, target)
	if err != nil {
		return err
	}

	if err = s.handlers.TransitionStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSnapshot(ctx, http.StatusOK, orderID)
}

// AddMilestone godoc
//
//	@Summary	Append a payment milestone
//	@Tags		milestones
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string					true	"Order id"	format(uuid)
//	@Param		body	body		servers.NewMilestone	true	"Milestone"
//	@Success	201		{object}	servers.LifecycleSnapshot
//	@Failure	400		{object}	servers.Error
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle/milestones [post]
func (s *Server) AddMilestone(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}

	var body servers.AddMilestoneJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	amount, err := toAmountSpec(body.Amount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddMilestoneCommand(orderID, kernel.NewUUID(), body.Name, amount, deref(body.DueCondition))
	if err != nil {
		return err
	}

	if err = s.handlers.AddMilestone.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSnapshot(ctx, http.StatusCreated, orderID)
}

// UpdateMilestone godoc
//
//	@Summary	Change fields of one milestone
//	@Tags		milestones
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path		string					true	"Order id"		format(uuid)
//	@Param		milestoneId	path		string					true	"Milestone id"	format(uuid)
//	@Param		body		body		servers.MilestonePatch	true	"Fields to change"
//	@Success	200			{object}	servers.LifecycleSnapshot
//	@Failure	400			{object}	servers.Error
//	@Failure	404			{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle/milestones/{milestoneId} [patch]
func (s *Server) UpdateMilestone(ctx echo.Context, orderId servers.OrderId, milestoneId servers.MilestoneId) error {
	orderID, milestoneID, err := toIDs(orderId, milestoneId)
	if err != nil {
		return err
	}

	var body servers.UpdateMilestoneJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	patch, err := toMilestonePatch(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMilestoneCommand(orderID, milestoneID, patch)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateMilestone.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSnapshot(ctx, http.StatusOK, orderID)
}

// RemoveMilestone godoc
//
//	@Summary	Remove one milestone
//	@Tags		milestones
//	@Produce	json
//	@Param		orderId		path		string	true	"Order id"		format(uuid)
//	@Param		milestoneId	path		string	true	"Milestone id"	format(uuid)
//	@Success	200			{object}	servers.LifecycleSnapshot
//	@Failure	404			{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle/milestones/{milestoneId} [delete]
func (s *Server) RemoveMilestone(ctx echo.Context, orderId servers.OrderId, milestoneId servers.MilestoneId) error {
	orderID, milestoneID, err := toIDs(orderId, milestoneId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveMilestoneCommand(orderID, milestoneID)
	if err != nil {
		return err
	}

	if err = s.handlers.RemoveMilestone.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSnapshot(ctx, http.StatusOK, orderID)
}

// SetMilestoneStatus godoc
//
//	@Summary	Mark a milestone paid or pending
//	@Tags		milestones
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path		string							true	"Order id"		format(uuid)
//	@Param		milestoneId	path		string							true	"Milestone id"	format(uuid)
//	@Param		body		body		servers.MilestoneStatusChange	true	"Status"
//	@Success	200			{object}	servers.LifecycleSnapshot
//	@Failure	400			{object}	servers.Error
//	@Failure	404			{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle/milestones/{milestoneId}/status [put]
func (s *Server) SetMilestoneStatus(ctx echo.Context, orderId servers.OrderId, milestoneId servers.MilestoneId) error {
	orderID, milestoneID, err := toIDs(orderId, milestoneId)
	if err != nil {
		return err
	}

	var body servers.SetMilestoneStatusJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	status, err := lifecycle.ParseMilestoneStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetMilestoneStatusCommand(orderID, milestoneID, status)
	if err != nil {
		return err
	}

	if err = s.handlers.SetMilestoneStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSnapshot(ctx, http.StatusOK, orderID)
}

// AppendExpense godoc
//
//	@Summary	Record an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string				true	"Order id"	format(uuid)
//	@Param		body	body		servers.NewExpense	true	"Expense"
//	@Success	201		{object}	servers.Expense
//	@Failure	400		{object}	servers.Error
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/expenses [post]
func (s *Server) AppendExpense(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}

	var body servers.AppendExpenseJSONRequestBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	details, err := toExpenseDetails(body)
	if err != nil {
		return err
	}

	expenseID := kernel.NewUUID()
	cmd, err := commands.NewAppendExpenseCommand(expenseID, orderID, details)
	if err != nil {
		return err
	}

	if err = s.handlers.AppendExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	expenses, err := s.listExpenses(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}
	for _, e := range expenses {
		if e.ID.IsEqual(expenseID) {
			return ctx.JSON(http.StatusCreated, toExpenseResponse(e))
		}
	}
	return errs.NewObjectNotFoundError("expense", expenseID.String())
}

// ListExpenses godoc
//
//	@Summary	Expense ledger of an order, oldest first
//	@Tags		expenses
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"	format(uuid)
//	@Success	200		{array}		servers.Expense
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/expenses [get]
func (s *Server) ListExpenses(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}

	expenses, err := s.listExpenses(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	response := make([]servers.Expense, len(expenses))
	for i, e := range expenses {
		response[i] = toExpenseResponse(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard godoc
//
//	@Summary	Portfolio totals by lifecycle status
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	servers.Dashboard
//	@Router		/api/v1/dashboard [get]
func (s *Server) GetDashboard(ctx echo.Context) error {
	dashboard, err := s.handlers.Dashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// ExportDashboard godoc
//
//	@Summary	Dashboard and every order snapshot as a spreadsheet
//	@Tags		dashboard
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}	binary
//	@Router		/api/v1/dashboard/export [get]
func (s *Server) ExportDashboard(ctx echo.Context) error {
	snapshots, err := s.handlers.Dashboard.Snapshots(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}

	f, err := xlsx.DashboardWorkbook(services.FoldDashboard(snapshots), snapshots)
	if err != nil {
		return err
	}
	return sendWorkbook(ctx, f, xlsx.DashboardFilename(s.now()))
}

// ExportOrderLifecycle godoc
//
//	@Summary	Lifecycle snapshot and expense ledger as a spreadsheet
//	@Tags		lifecycle
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		orderId	path	string	true	"Order id"	format(uuid)
//	@Success	200		{file}	binary
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/lifecycle/export [get]
func (s *Server) ExportOrderLifecycle(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toID(orderId)
	if err != nil {
		return err
	}

	snapshot, err := s.snapshot(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	expenses, err := s.listExpenses(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}

	f, err := xlsx.SnapshotWorkbook(snapshot, expenses)
	if err != nil {
		return err
	}
	return sendWorkbook(ctx, f, xlsx.SnapshotFilename(snapshot.Order.OrderNo()))
}

func (s *Server) respondOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(code, toOrderResponse(o))
}

func (s *Server) respondSnapshot(ctx echo.Context, code int, orderID kernel.UUID) error {
	snapshot, err := s.snapshot(ctx.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toSnapshotResponse(snapshot))
}

func (s *Server) snapshot(ctx context.Context, orderID kernel.UUID) (services.LifecycleSnapshot, error) {
	query, err := queries.NewGetOrderLifecycleQuery(orderID)
	if err != nil {
		return services.LifecycleSnapshot{}, err
	}
	return s.handlers.GetOrderLifecycle.Handle(ctx, query)
}

func (s *Server) listExpenses(ctx context.Context, orderID kernel.UUID) ([]queries.ListExpensesQueryResponse, error) {
	query, err := queries.NewListExpensesQuery(orderID)
	if err != nil {
		return nil, err
	}
	return s.handlers.ListExpenses.Handle(ctx, query)
}

// bindBody decodes the JSON body and runs the echo Validator over it.
func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

func sendWorkbook(ctx echo.Context, f *excelize.File, filename string) error {
	defer func() {
		_ = f.Close()
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, xlsx.ContentType, buf.Bytes())
}
