// Package export renders dashboard snapshots as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/pos-dashboard/backend/internal/application/usecase/dashboard"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names, in workbook order.
const (
	SheetSummary   = "Summary"
	SheetWeekly    = "Weekly"
	SheetStatus    = "Status"
	SheetEmployees = "Employees"
	SheetCustomers = "Customers"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// FileName returns the attachment name for a snapshot generated at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("dashboard-%s.xlsx", t.Format("2006-01-02"))
}

// WriteSnapshot writes the snapshot as an XLSX workbook to w.
func WriteSnapshot(w io.Writer, snapshot *dashboard.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetSummary); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{SheetWeekly, SheetStatus, SheetEmployees, SheetCustomers} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	sheets := map[string][][]any{
		SheetSummary:   summaryRows(snapshot),
		SheetWeekly:    weeklyRows(snapshot),
		SheetStatus:    statusRows(snapshot),
		SheetEmployees: employeeRows(snapshot),
		SheetCustomers: customerRows(snapshot),
	}
	for sheet, rows := range sheets {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func amount(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func summaryRows(s *dashboard.Snapshot) [][]any {
	rows := [][]any{{"Label", "Value"}}
	for _, item := range s.Summary {
		rows = append(rows, []any{item.Label, amount(item.Value)})
	}
	rows = append(rows,
		[]any{},
		[]any{"This month orders", s.Monthly.ThisMonthOrders},
		[]any{"Orders today", s.Weekly.RevenueStats.TotalOrders},
		[]any{"Estimated profit today", amount(s.Weekly.RevenueStats.EstimatedProfit)},
		[]any{"Advanced money today", amount(s.Weekly.RevenueStats.AdvancedMoney)},
		[]any{"Generated at", s.GeneratedAt.Format(time.RFC3339)},
	)
	return rows
}

func weeklyRows(s *dashboard.Snapshot) [][]any {
	rows := [][]any{{"Day", "Orders", "Date"}}
	for _, day := range s.Weekly.WeeklyOrders {
		date := ""
		if day.Date != nil {
			date = day.Date.Format("2006-01-02")
		}
		rows = append(rows, []any{day.Day, day.Orders, date})
	}
	return rows
}

func statusRows(s *dashboard.Snapshot) [][]any {
	rows := [][]any{{"Status", "Orders", "Amount"}}
	for _, row := range s.Weekly.NewOrderUpdates {
		rows = append(rows, []any{string(row.Status), row.Orders, amount(row.Amount)})
	}
	return rows
}

func employeeRows(s *dashboard.Snapshot) [][]any {
	rows := [][]any{{"Username", "Name", "Services", "Amount"}}
	for _, emp := range s.Monthly.Top5Employees {
		rows = append(rows, []any{emp.Username, emp.Name, emp.Services, amount(emp.Amount)})
	}
	return rows
}

func customerRows(s *dashboard.Snapshot) [][]any {
	rows := [][]any{{"Name", "Debit", "Credit", "Balance"}}
	for _, c := range s.Other.Top5Customers {
		rows = append(rows, []any{c.Name, amount(c.Debit), amount(c.Credit), amount(c.Balance)})
	}
	rows = append(rows, []any{}, []any{"Customer", "Orders"})
	for _, c := range s.Other.Top5CustomersByOrder {
		rows = append(rows, []any{c.Username, c.Orders})
	}
	return rows
}
