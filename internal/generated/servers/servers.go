// Package servers holds the HTTP contract of the lifecycle API: wire types,
// the echo server interface and route registration. It mirrors
// openapi.yaml, which is embedded and served by GetSwagger.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Defines values for AmountSpecKind.
const (
	Percentage AmountSpecKind = "percentage"
	Value      AmountSpecKind = "value"
)

// Defines values for MilestoneStatus.
const (
	Paid    MilestoneStatus = "paid"
	Pending MilestoneStatus = "pending"
)

// AmountSpecKind defines model for AmountSpec.Kind.
type AmountSpecKind string

// MilestoneStatus defines model for MilestoneStatus.
type MilestoneStatus string

// Money is a decimal amount carried as a JSON number.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d for the wire.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// UnmarshalJSON accepts numbers and quoted numbers.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AmountSpec defines model for AmountSpec.
type AmountSpec struct {
	Kind  AmountSpecKind `json:"kind" validate:"required,oneof=percentage value"`
	Value Money          `json:"value"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	OrderNo      string  `json:"orderNo" validate:"required,max=64"`
	CustomerName *string `json:"customerName,omitempty"`
	TotalAmount  Money   `json:"totalAmount"`
	Currency     *string `json:"currency,omitempty" validate:"omitempty,len=3,uppercase"`
	SalesStatus  *string `json:"salesStatus,omitempty"`
}

// Order defines model for Order.
type Order struct {
	Id           openapi_types.UUID `json:"id"`
	OrderNo      string             `json:"orderNo"`
	CustomerName string             `json:"customerName"`
	TotalAmount  Money              `json:"totalAmount"`
	Currency     string             `json:"currency"`
	SalesStatus  string             `json:"salesStatus"`
}

// MilestoneInput defines model for MilestoneInput.
type MilestoneInput struct {
	Id           *openapi_types.UUID `json:"id,omitempty"`
	Name         string              `json:"name" validate:"required"`
	Amount       AmountSpec          `json:"amount"`
	DueCondition *string             `json:"dueCondition,omitempty"`
	Status       *MilestoneStatus    `json:"status,omitempty" validate:"omitempty,oneof=pending paid"`
}

// LifecycleSettings defines model for LifecycleSettings.
type LifecycleSettings struct {
	PurchaseBudget        AmountSpec          `json:"purchaseBudget"`
	ExecutionBudget       AmountSpec          `json:"executionBudget"`
	TargetProfit          AmountSpec          `json:"targetProfit"`
	PaymentMilestones     *[]MilestoneInput   `json:"paymentMilestones,omitempty" validate:"omitempty,dive"`
	CreditPeriodDays      *int                `json:"creditPeriodDays,omitempty" validate:"omitempty,gte=0"`
	ProjectType           *string             `json:"projectType,omitempty"`
	EstimatedDeliveryDate *openapi_types.Date `json:"estimatedDeliveryDate,omitempty"`
	Notes                 *string             `json:"notes,omitempty"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status" validate:"required"`
}

// NewMilestone defines model for NewMilestone.
type NewMilestone struct {
	Name         string     `json:"name" validate:"required"`
	Amount       AmountSpec `json:"amount"`
	DueCondition *string    `json:"dueCondition,omitempty"`
}

// MilestonePatch defines model for MilestonePatch.
type MilestonePatch struct {
	Name         *string     `json:"name,omitempty" validate:"omitempty,min=1"`
	Amount       *AmountSpec `json:"amount,omitempty"`
	DueCondition *string     `json:"dueCondition,omitempty"`
}

// MilestoneStatusChange defines model for MilestoneStatusChange.
type MilestoneStatusChange struct {
	Status MilestoneStatus `json:"status" validate:"required,oneof=pending paid"`
}

// NewExpense defines model for NewExpense.
type NewExpense struct {
	Category    string             `json:"category" validate:"required"`
	Description string             `json:"description" validate:"required"`
	Amount      Money              `json:"amount"`
	Date        openapi_types.Date `json:"date"`
	Vendor      *string            `json:"vendor,omitempty"`
	ReferenceNo *string            `json:"referenceNo,omitempty"`
}

// Expense defines model for Expense.
type Expense struct {
	Id          openapi_types.UUID `json:"id"`
	OrderId     openapi_types.UUID `json:"orderId"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Amount      Money              `json:"amount"`
	Date        openapi_types.Date `json:"date"`
	Vendor      *string            `json:"vendor,omitempty"`
	ReferenceNo *string            `json:"referenceNo,omitempty"`
	Approved    bool               `json:"approved"`
}

// Milestone defines model for Milestone.
type Milestone struct {
	Id             openapi_types.UUID `json:"id"`
	Name           string             `json:"name"`
	Amount         AmountSpec         `json:"amount"`
	ResolvedAmount Money              `json:"resolvedAmount"`
	DueCondition   string             `json:"dueCondition"`
	Status         MilestoneStatus    `json:"status"`
}

// Financials defines model for Financials.
type Financials struct {
	OrderValue       Money `json:"orderValue"`
	PurchaseTarget   Money `json:"purchaseTarget"`
	ExecutionTarget  Money `json:"executionTarget"`
	ProfitTarget     Money `json:"profitTarget"`
	PurchaseActual   Money `json:"purchaseActual"`
	ExecutionActual  Money `json:"executionActual"`
	TotalCost        Money `json:"totalCost"`
	ActualProfit     Money `json:"actualProfit"`
	ProfitMargin     Money `json:"profitMargin"`
	PurchaseSavings  Money `json:"purchaseSavings"`
	ExecutionSavings Money `json:"executionSavings"`
}

// LifecycleSnapshot defines model for LifecycleSnapshot.
type LifecycleSnapshot struct {
	Order                 Order               `json:"order"`
	Status                string              `json:"status"`
	PurchaseBudget        AmountSpec          `json:"purchaseBudget"`
	ExecutionBudget       AmountSpec          `json:"executionBudget"`
	TargetProfit          AmountSpec          `json:"targetProfit"`
	CreditPeriodDays      int                 `json:"creditPeriodDays"`
	ProjectType           string              `json:"projectType"`
	EstimatedDeliveryDate *openapi_types.Date `json:"estimatedDeliveryDate,omitempty"`
	Notes                 string              `json:"notes"`
	Financials            Financials          `json:"financials"`
	PaymentMilestones     []Milestone         `json:"paymentMilestones"`
	ScheduledTotal        Money               `json:"scheduledTotal"`
	PaidMilestoneTotal    Money               `json:"paidMilestoneTotal"`
	PendingMilestoneTotal Money               `json:"pendingMilestoneTotal"`
	UnscheduledAmount     Money               `json:"unscheduledAmount"`
	ExpenseCount          int                 `json:"expenseCount"`
}

// StatusTotals defines model for StatusTotals.
type StatusTotals struct {
	Status           string `json:"status"`
	Orders           int    `json:"orders"`
	OrderValue       Money  `json:"orderValue"`
	TotalCost        Money  `json:"totalCost"`
	ActualProfit     Money  `json:"actualProfit"`
	PurchaseSavings  Money  `json:"purchaseSavings"`
	ExecutionSavings Money  `json:"executionSavings"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	ByStatus     []StatusTotals `json:"byStatus"`
	Total        StatusTotals   `json:"total"`
	ProfitMargin Money          `json:"profitMargin"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// MilestoneId defines model for MilestoneId.
type MilestoneId = openapi_types.UUID

// RegisterOrderJSONRequestBody defines body for RegisterOrder for application/json ContentType.
type RegisterOrderJSONRequestBody = NewOrder

// ConfigureLifecycleJSONRequestBody defines body for ConfigureLifecycle for application/json ContentType.
type ConfigureLifecycleJSONRequestBody = LifecycleSettings

// TransitionStatusJSONRequestBody defines body for TransitionStatus for application/json ContentType.
type TransitionStatusJSONRequestBody = StatusChange

// AddMilestoneJSONRequestBody defines body for AddMilestone for application/json ContentType.
type AddMilestoneJSONRequestBody = NewMilestone

// UpdateMilestoneJSONRequestBody defines body for UpdateMilestone for application/json ContentType.
type UpdateMilestoneJSONRequestBody = MilestonePatch

// SetMilestoneStatusJSONRequestBody defines body for SetMilestoneStatus for application/json ContentType.
type SetMilestoneStatusJSONRequestBody = MilestoneStatusChange

// AppendExpenseJSONRequestBody defines body for AppendExpense for application/json ContentType.
type AppendExpenseJSONRequestBody = NewExpense

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get portfolio totals by lifecycle status
	// (GET /api/v1/dashboard)
	GetDashboard(ctx echo.Context) error
	// Dashboard and every order snapshot as a spreadsheet
	// (GET /api/v1/dashboard/export)
	ExportDashboard(ctx echo.Context) error
	// Register a sales order
	// (POST /api/v1/orders)
	RegisterOrder(ctx echo.Context) error
	// Read a registered order
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Expense ledger of an order, oldest first
	// (GET /api/v1/orders/{orderId}/expenses)
	ListExpenses(ctx echo.Context, orderId OrderId) error
	// Record an expense
	// (POST /api/v1/orders/{orderId}/expenses)
	AppendExpense(ctx echo.Context, orderId OrderId) error
	// Lifecycle snapshot of an order
	// (GET /api/v1/orders/{orderId}/lifecycle)
	GetOrderLifecycle(ctx echo.Context, orderId OrderId) error
	// Create or fully replace the lifecycle configuration
	// (PUT /api/v1/orders/{orderId}/lifecycle)
	ConfigureLifecycle(ctx echo.Context, orderId OrderId) error
	// Lifecycle snapshot as a spreadsheet
	// (GET /api/v1/orders/{orderId}/lifecycle/export)
	ExportOrderLifecycle(ctx echo.Context, orderId OrderId) error
	// Append a payment milestone
	// (POST /api/v1/orders/{orderId}/lifecycle/milestones)
	AddMilestone(ctx echo.Context, orderId OrderId) error
	// Remove one milestone
	// (DELETE /api/v1/orders/{orderId}/lifecycle/milestones/{milestoneId})
	RemoveMilestone(ctx echo.Context, orderId OrderId, milestoneId MilestoneId) error
	// Change fields of one milestone
	// (PATCH /api/v1/orders/{orderId}/lifecycle/milestones/{milestoneId})
	UpdateMilestone(ctx echo.Context, orderId OrderId, milestoneId MilestoneId) error
	// Mark a milestone paid or pending
	// (PUT /api/v1/orders/{orderId}/lifecycle/milestones/{milestoneId}/status)
	SetMilestoneStatus(ctx echo.Context, orderId OrderId, milestoneId MilestoneId) error
	// Move the order to another lifecycle status
	// (PUT /api/v1/orders/{orderId}/lifecycle/status)
	TransitionStatus(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	return w.Handler.GetDashboard(ctx)
}

// ExportDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) ExportDashboard(ctx echo.Context) error {
	return w.Handler.ExportDashboard(ctx)
}

// RegisterOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterOrder(ctx echo.Context) error {
	return w.Handler.RegisterOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

// ListExpenses converts echo context to params.
func (w *ServerInterfaceWrapper) ListExpenses(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ListExpenses(ctx, orderId)
}

// AppendExpense converts echo context to params.
func (w *ServerInterfaceWrapper) AppendExpense(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AppendExpense(ctx, orderId)
}

// GetOrderLifecycle converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderLifecycle(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderLifecycle(ctx, orderId)
}

// ConfigureLifecycle converts echo context to params.
func (w *ServerInterfaceWrapper) ConfigureLifecycle(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfigureLifecycle(ctx, orderId)
}

// ExportOrderLifecycle converts echo context to params.
func (w *ServerInterfaceWrapper) ExportOrderLifecycle(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ExportOrderLifecycle(ctx, orderId)
}

// AddMilestone converts echo context to params.
func (w *ServerInterfaceWrapper) AddMilestone(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddMilestone(ctx, orderId)
}

// RemoveMilestone converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveMilestone(ctx echo.Context) error {
	orderId, milestoneId, err := bindMilestonePath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveMilestone(ctx, orderId, milestoneId)
}

// UpdateMilestone converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateMilestone(ctx echo.Context) error {
	orderId, milestoneId, err := bindMilestonePath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateMilestone(ctx, orderId, milestoneId)
}

// SetMilestoneStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetMilestoneStatus(ctx echo.Context) error {
	orderId, milestoneId, err := bindMilestonePath(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetMilestoneStatus(ctx, orderId, milestoneId)
}

// TransitionStatus converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionStatus(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.TransitionStatus(ctx, orderId)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindMilestonePath(ctx echo.Context) (OrderId, MilestoneId, error) {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return orderId, MilestoneId{}, err
	}
	milestoneId, err := bindPathUUID(ctx, "milestoneId")
	return orderId, milestoneId, err
}

// EchoRouter is an interface that matches both echo.Echo and echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/api/v1/dashboard/export", wrapper.ExportDashboard)
	router.POST(baseURL+"/api/v1/orders", wrapper.RegisterOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/expenses", wrapper.ListExpenses)
	router.POST(baseURL+"/api/v1/orders/:orderId/expenses", wrapper.AppendExpense)
	router.GET(baseURL+"/api/v1/orders/:orderId/lifecycle", wrapper.GetOrderLifecycle)
	router.PUT(baseURL+"/api/v1/orders/:orderId/lifecycle", wrapper.ConfigureLifecycle)
	router.GET(baseURL+"/api/v1/orders/:orderId/lifecycle/export", wrapper.ExportOrderLifecycle)
	router.POST(baseURL+"/api/v1/orders/:orderId/lifecycle/milestones", wrapper.AddMilestone)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/lifecycle/milestones/:milestoneId", wrapper.RemoveMilestone)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/lifecycle/milestones/:milestoneId", wrapper.UpdateMilestone)
	router.PUT(baseURL+"/api/v1/orders/:orderId/lifecycle/milestones/:milestoneId/status", wrapper.SetMilestoneStatus)
	router.PUT(baseURL+"/api/v1/orders/:orderId/lifecycle/status", wrapper.TransitionStatus)
}

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document embedded in this package.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
