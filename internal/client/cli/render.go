package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (a *App) section(title string) {
	fmt.Fprintln(a.out, titleStyle.Render(title))
}

func (a *App) ok(format string, args ...any) {
	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf(format, args...)))
}

func (a *App) table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, mutedStyle.Render("(none)"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(a.out, t.Render())
}

// counts prints "KEY n" pairs in key order on one line.
func (a *App) counts(label string, m map[string]int) {
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, fmt.Sprintf("%s %d", k, m[k]))
	}
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	fmt.Fprintf(a.out, "%s: %s\n", label, strings.Join(parts, ", "))
}

func qty(n models.Number) string {
	return fmt.Sprintf("%g", n.Float())
}

func cropRows(crops []models.Crop) [][]string {
	rows := make([][]string, 0, len(crops))
	for _, c := range crops {
		rows = append(rows, []string{
			c.CropID.String(), c.CropName, c.CropType, qty(c.Quantity),
			views.FormatPrice(c.Price.Float()), c.Status, c.BatchID,
		})
	}
	return rows
}

var cropHeaders = []string{"ID", "Name", "Type", "Qty", "Price", "Status", "Batch"}

func batchRows(batches []models.Batch) [][]string {
	rows := make([][]string, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, []string{
			b.BatchID, b.CropType, qty(b.TotalQuantity), b.Status,
			views.Confidence(b.AvgQualityScore.Float()), views.FormatDate(b.HarvestDate.Time),
		})
	}
	return rows
}

var batchHeaders = []string{"Batch", "Crop", "Qty", "Status", "Grade", "Harvested"}

func orderRows(orders []models.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderID.String(), o.BatchID, qty(o.Quantity),
			views.FormatPrice(o.TotalAmount.Float()), o.Status, views.FormatDate(o.ExpectedDelivery.Time),
		})
	}
	return rows
}

var orderHeaders = []string{"Order", "Batch", "Qty", "Total", "Status", "ETA"}

func orderDetailRows(orders []models.OrderDetails) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderID.String(), o.CropName, qty(o.Quantity), views.FormatPrice(o.TotalAmount.Float()),
			o.Status, o.FarmerName, views.FormatDate(o.CreatedAt.Time),
		})
	}
	return rows
}

var orderDetailHeaders = []string{"Order", "Crop", "Qty", "Total", "Status", "Farmer", "Placed"}

func ticketRows(tickets []models.Ticket) [][]string {
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			t.ID.String(), t.TicketID, t.Subject, t.Priority, t.Status, views.FormatDate(t.CreatedAt.Time),
		})
	}
	return rows
}

var ticketHeaders = []string{"ID", "Code", "Subject", "Priority", "Status", "Opened"}
