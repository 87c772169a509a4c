package domain

import "github.com/shopspring/decimal"

// Status represents the publishing lifecycle state of a product.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusPublished       Status = "published"
	StatusRejected        Status = "rejected"
)

// validTransitions encodes the intended forward publishing pipeline.
// rejected is a terminal sink reachable only from pending_approval.
var validTransitions = map[Status][]Status{
	StatusDraft:           {StatusPendingApproval},
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusPublished},
}

// CanTransitionTo reports whether moving from s to next follows the
// intended pipeline. The catalog service only enforces this in strict mode;
// the store itself accepts any status overwrite.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// Display returns the label shown on product cards and publisher lanes.
func (s Status) Display() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusPendingApproval:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusPublished:
		return "Published"
	case StatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// StockLevel is the derived health label of a product's stock. It is
// computed from stock and threshold, never stored.
type StockLevel string

const (
	StockHealthy StockLevel = "healthy"
	StockLow     StockLevel = "low_stock"
	StockOut     StockLevel = "out_of_stock"
)

// Display returns the badge text for a stock level.
func (l StockLevel) Display() string {
	switch l {
	case StockHealthy:
		return "Healthy"
	case StockLow:
		return "Low Stock"
	case StockOut:
		return "Out of Stock"
	default:
		return string(l)
	}
}

// ClassifyStock maps stock against its low-stock threshold:
//
//	stock == 0                  → out_of_stock
//	0 < stock <= threshold      → low_stock
//	stock > threshold           → healthy
//
// Pure and total over the non-negative integer domain.
func ClassifyStock(stock, threshold int) StockLevel {
	switch {
	case stock == 0:
		return StockOut
	case stock <= threshold:
		return StockLow
	default:
		return StockHealthy
	}
}

// Product is a catalog record. Stock is always non-negative.
type Product struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	SKU               string          `json:"sku"`
	Status            Status          `json:"status"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	Category          string          `json:"category"`
}

// StockLevel classifies the product's current stock health.
func (p Product) StockLevel() StockLevel {
	return ClassifyStock(p.Stock, p.LowStockThreshold)
}

// CategoryIcon maps a product category to its display icon name.
func CategoryIcon(category string) string {
	switch category {
	case "electronics":
		return "laptop"
	case "fashion":
		return "tshirt"
	case "home":
		return "home"
	case "sports":
		return "futbol"
	default:
		return "box"
	}
}
