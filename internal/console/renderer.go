// Package console renders the admin screens as plain text: the dashboard,
// the product management grid, the publisher lane board and the inventory
// table. It only talks to the catalog service and owns no state of its own.
package console

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/ports"
)

// publisherLanes are the drop targets of the publisher board, in display
// order. rejected has no lane; it is a terminal sink.
var publisherLanes = []domain.Status{
	domain.StatusDraft,
	domain.StatusPendingApproval,
	domain.StatusApproved,
	domain.StatusPublished,
}

type Renderer struct {
	catalog ports.CatalogService
	out     io.Writer
}

func New(catalog ports.CatalogService, out io.Writer) *Renderer {
	return &Renderer{catalog: catalog, out: out}
}

// Header prints the signed-in user line shown above every screen.
func (r *Renderer) Header(user domain.User) {
	fmt.Fprintf(r.out, "[%s] %s (%s)\n", user.Avatar, user.Name, user.Role.Display())
}

// Dashboard renders the stat cards and the low-stock warning table.
func (r *Renderer) Dashboard(ctx context.Context) error {
	stats, err := r.catalog.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "== Dashboard ==")
	fmt.Fprintf(r.out, "Total Products: %d\n", stats.TotalProducts)
	fmt.Fprintf(r.out, "Low Stock Items: %d\n", stats.LowStock)
	fmt.Fprintf(r.out, "Out of Stock: %d\n", stats.OutOfStock)
	fmt.Fprintf(r.out, "Pending Approvals: %d\n", stats.PendingApproval)

	report, err := r.catalog.LowStockReport(ctx)
	if err != nil {
		return err
	}
	if len(report) == 0 {
		return nil
	}

	fmt.Fprintln(r.out, "\nLow Stock Products:")
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tSKU\tSTOCK\tSTATUS")
	for _, p := range report {
		fmt.Fprintf(w, "%s\t%s\t%d units\t%s\n", p.Name, p.SKU, p.Stock, p.StockLevel().Display())
	}
	return w.Flush()
}

// Products renders the management grid. An empty filter shows the whole
// catalog; otherwise only products in that lifecycle state.
func (r *Renderer) Products(ctx context.Context, filter domain.Status) error {
	var (
		products []domain.Product
		err      error
	)
	if filter == "" {
		products, err = r.catalog.Products(ctx)
	} else {
		products, err = r.catalog.ProductsByStatus(ctx, filter)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "== Product Management ==")
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tPRICE\tSTATUS\tSKU\tICON")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t$%s\t%s\t%s\t%s\n",
			p.Name, p.Price.StringFixed(2), p.Status.Display(), p.SKU, domain.CategoryIcon(p.Category))
	}
	return w.Flush()
}

// Publisher renders the four-lane board. Staff only.
func (r *Renderer) Publisher(ctx context.Context, viewer domain.User) error {
	if !viewer.Role.IsStaff() {
		return domain.ErrForbidden
	}

	fmt.Fprintln(r.out, "== Product Publisher ==")
	for _, lane := range publisherLanes {
		products, err := r.catalog.ProductsByStatus(ctx, lane)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "[%s]\n", lane.Display())
		for _, p := range products {
			fmt.Fprintf(r.out, "  %s (SKU: %s)\n", p.Name, p.SKU)
		}
	}
	return nil
}

// Inventory renders the stock table with health badges. Staff only.
func (r *Renderer) Inventory(ctx context.Context, viewer domain.User) error {
	if !viewer.Role.IsStaff() {
		return domain.ErrForbidden
	}

	products, err := r.catalog.Products(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "== Inventory Management ==")
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tSKU\tSTOCK\tTHRESHOLD\tSTATUS")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%d units\t%d units\t%s\n",
			p.Name, p.SKU, p.Stock, p.LowStockThreshold, p.StockLevel().Display())
	}
	return w.Flush()
}
