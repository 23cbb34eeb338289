// Package xlsx renders lifecycle snapshots and the portfolio dashboard as
// Excel workbooks.
package xlsx

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/services"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	DashboardSheet  = "Dashboard"
	OrdersSheet     = "Orders"
	SummarySheet    = "Summary"
	MilestonesSheet = "Milestones"
	ExpensesSheet   = "Expenses"
)

var dashboardHeaders = []string{
	"Status", "Orders", "Order Value", "Total Cost", "Actual Profit", "Purchase Savings", "Execution Savings",
}

var orderHeaders = []string{
	"Order No", "Customer", "Currency", "Status", "Project Type", "Order Value",
	"Purchase Target", "Purchase Actual", "Execution Target", "Execution Actual",
	"Total Cost", "Actual Profit", "Profit Margin %", "Paid Milestones", "Pending Milestones", "Expenses",
}

var milestoneHeaders = []string{"Name", "Amount", "Resolved Amount", "Due Condition", "Status"}

var expenseHeaders = []string{"Date", "Category", "Description", "Amount", "Vendor", "Reference No", "Approved"}

// DashboardWorkbook writes the per status totals and one row per order
// snapshot. Callers must Close the returned file.
func DashboardWorkbook(dashboard services.Dashboard, snapshots []services.LifecycleSnapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	w, err := newWorkbook(f, DashboardSheet)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	dash := w.sheet(DashboardSheet)
	dash.header(dashboardHeaders)
	row := 2
	for _, t := range dashboard.ByStatus {
		dash.row(row, statusTotalsRow(t.Status.String(), t)...)
		row++
	}
	dash.row(row, statusTotalsRow("Total", dashboard.Total)...)
	dash.style(row, len(dashboardHeaders), w.summaryStyle)
	dash.row(row+1, "Profit Margin %", "", money(dashboard.ProfitMargin))
	dash.widths(18, 8, 16, 16, 16, 16, 18)

	orders := w.addSheet(OrdersSheet)
	orders.header(orderHeaders)
	for i, s := range snapshots {
		orders.row(i+2,
			s.Order.OrderNo(),
			s.Order.CustomerName(),
			s.Order.Currency().Code(),
			s.Config.Status().String(),
			string(s.Config.ProjectType()),
			money(s.Financials.OrderValue),
			money(s.Financials.PurchaseTarget),
			money(s.Financials.PurchaseActual),
			money(s.Financials.ExecutionTarget),
			money(s.Financials.ExecutionActual),
			money(s.Financials.TotalCost),
			money(s.Financials.ActualProfit),
			money(s.Financials.ProfitMargin),
			money(s.Schedule.PaidTotal),
			money(s.Schedule.PendingTotal),
			s.ExpenseCount,
		)
	}
	orders.widths(14, 24, 9, 13, 20, 14, 15, 15, 16, 16, 14, 14, 15, 15, 17, 9)

	if w.err != nil {
		_ = f.Close()
		return nil, w.err
	}
	return f, nil
}

// SnapshotWorkbook writes one order: its financial summary, the resolved
// payment plan and the expense ledger. Callers must Close the returned file.
func SnapshotWorkbook(s services.LifecycleSnapshot, expenses []queries.ListExpensesQueryResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	w, err := newWorkbook(f, SummarySheet)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	summary := w.sheet(SummarySheet)
	fin := s.Financials
	lines := [][]any{
		{"Order No", s.Order.OrderNo()},
		{"Customer", s.Order.CustomerName()},
		{"Currency", s.Order.Currency().Code()},
		{"Status", s.Config.Status().String()},
		{"Project Type", string(s.Config.ProjectType())},
		{"Credit Period Days", s.Config.CreditPeriodDays()},
		{"Estimated Delivery", deliveryDate(s)},
		{"Order Value", money(fin.OrderValue)},
		{"Purchase Budget", s.Config.PurchaseBudget().String()},
		{"Purchase Target", money(fin.PurchaseTarget)},
		{"Purchase Actual", money(fin.PurchaseActual)},
		{"Purchase Savings", money(fin.PurchaseSavings)},
		{"Execution Budget", s.Config.ExecutionBudget().String()},
		{"Execution Target", money(fin.ExecutionTarget)},
		{"Execution Actual", money(fin.ExecutionActual)},
		{"Execution Savings", money(fin.ExecutionSavings)},
		{"Target Profit", s.Config.TargetProfit().String()},
		{"Profit Target", money(fin.ProfitTarget)},
		{"Total Cost", money(fin.TotalCost)},
		{"Actual Profit", money(fin.ActualProfit)},
		{"Profit Margin %", money(fin.ProfitMargin)},
		{"Scheduled Total", money(s.Schedule.ScheduledTotal)},
		{"Unscheduled Amount", money(s.Schedule.UnscheduledAmount)},
		{"Notes", s.Config.Notes()},
	}
	for i, line := range lines {
		summary.row(i+1, line...)
		summary.style(i+1, 1, w.summaryStyle)
	}
	summary.widths(22, 30)

	plan := w.addSheet(MilestonesSheet)
	plan.header(milestoneHeaders)
	for i, m := range s.Schedule.Milestones {
		plan.row(i+2, m.Name, m.Amount.String(), money(m.ResolvedAmount), m.DueCondition, m.Status.String())
	}
	last := len(s.Schedule.Milestones) + 2
	plan.row(last, "Total", "", money(s.Schedule.ScheduledTotal))
	plan.style(last, len(milestoneHeaders), w.summaryStyle)
	plan.widths(24, 12, 16, 30, 10)

	ledger := w.addSheet(ExpensesSheet)
	ledger.header(expenseHeaders)
	total := decimal.Zero
	for i, e := range expenses {
		ledger.row(i+2, e.Date.Format(time.DateOnly), e.Category, e.Description, money(e.Amount),
			e.Vendor, e.ReferenceNo, e.Approved)
		total = total.Add(e.Amount)
	}
	last = len(expenses) + 2
	ledger.row(last, "Total", "", "", money(total))
	ledger.style(last, len(expenseHeaders), w.summaryStyle)
	ledger.widths(12, 18, 30, 14, 20, 16, 10)

	if w.err != nil {
		_ = f.Close()
		return nil, w.err
	}
	return f, nil
}

// DashboardFilename names the dashboard export after the day it was taken.
func DashboardFilename(now time.Time) string {
	return fmt.Sprintf("lifecycle_dashboard_%s.xlsx", now.Format("20060102"))
}

// SnapshotFilename names an order export after the order number, keeping
// only characters that are safe in a Content-Disposition header.
func SnapshotFilename(orderNo string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, orderNo)
	return fmt.Sprintf("lifecycle_%s.xlsx", safe)
}

func statusTotalsRow(label string, t services.StatusTotals) []any {
	return []any{
		label,
		t.Orders,
		money(t.OrderValue),
		money(t.TotalCost),
		money(t.ActualProfit),
		money(t.PurchaseSavings),
		money(t.ExecutionSavings),
	}
}

func deliveryDate(s services.LifecycleSnapshot) string {
	if d := s.Config.EstimatedDeliveryDate(); d != nil {
		return d.Format(time.DateOnly)
	}
	return ""
}

// money converts to a float for numeric spreadsheet cells.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// workbook keeps the first write error so that rendering code stays linear.
type workbook struct {
	f            *excelize.File
	headerStyle  int
	summaryStyle int
	err          error
}

func newWorkbook(f *excelize.File, firstSheet string) (*workbook, error) {
	if err := f.SetSheetName("Sheet1", firstSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	return &workbook{f: f, headerStyle: headerStyle, summaryStyle: summaryStyle}, nil
}

func (w *workbook) sheet(name string) sheet {
	return sheet{w: w, name: name}
}

func (w *workbook) addSheet(name string) sheet {
	if w.err == nil {
		_, w.err = w.f.NewSheet(name)
	}
	return w.sheet(name)
}

type sheet struct {
	w    *workbook
	name string
}

func (s sheet) header(titles []string) {
	values := make([]any, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	s.row(1, values...)
	s.style(1, len(titles), s.w.headerStyle)
}

func (s sheet) row(row int, values ...any) {
	for i, v := range values {
		if s.w.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			s.w.err = err
			return
		}
		s.w.err = s.w.f.SetCellValue(s.name, cell, v)
	}
}

func (s sheet) style(row, columns, styleID int) {
	if s.w.err != nil {
		return
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		s.w.err = err
		return
	}
	last, err := excelize.CoordinatesToCellName(columns, row)
	if err != nil {
		s.w.err = err
		return
	}
	s.w.err = s.w.f.SetCellStyle(s.name, first, last, styleID)
}

func (s sheet) widths(widths ...float64) {
	for i, width := range widths {
		if s.w.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			s.w.err = err
			return
		}
		s.w.err = s.w.f.SetColWidth(s.name, col, col, width)
	}
}
