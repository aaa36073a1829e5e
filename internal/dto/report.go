package dto

import (
	"time"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
)

// Report output formats accepted by the export pipeline. Empty means JSON.
const (
	FormatJSON  = "json"
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// ReportRequest carries the already-authorized parameters of one report
// generation. Dates are raw YYYY-MM-DD strings; the service validates them
// before any I/O.
type ReportRequest struct {
	Scope      domain.ShopScope
	StartDate  string
	EndDate    string
	CustomerID string
	Format     string
}

// ReportTransaction is one transaction row in the JSON report contract,
// decorated with the presentation type label and a formatted date.
type ReportTransaction struct {
	TransactionID   string     `json:"transactionID"`
	ShopID          string     `json:"shopID"`
	CustomerID      string     `json:"customerID"`
	TransactionType string     `json:"transactionType"`
	TotalAmount     float64    `json:"totalAmount"`
	Payable         float64    `json:"payable"`
	Receivable      float64    `json:"receivable"`
	Category        string     `json:"category"`
	Description     string     `json:"description,omitempty"`
	Date            time.Time  `json:"date"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	ImageURL        string     `json:"imageURL,omitempty"`
	Type            string     `json:"type"`
	FormattedDate   string     `json:"formattedDate"`
}

// ReportMetadata echoes the window the report covers.
type ReportMetadata struct {
	DateRange        DateRange `json:"dateRange"`
	TransactionCount int       `json:"transactionCount"`
	CustomerID       string    `json:"customerId,omitempty"`
	ShopID           string    `json:"shopId"`
}

// DateRange holds the resolved window bounds as YYYY-MM-DD strings.
type DateRange struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ReportResponse is the JSON-mode report contract. Amounts are rounded to
// two decimals at this boundary only.
type ReportResponse struct {
	TotalReceivables float64              `json:"totalReceivables"`
	TotalPayables    float64              `json:"totalPayables"`
	Balance          float64              `json:"balance"`
	OpeningBalance   float64              `json:"openingBalance"`
	CategorySummary  map[string]float64   `json:"categorySummary"`
	Transactions     []ReportTransaction  `json:"transactions"`
	Alerts           []string             `json:"alerts,omitempty"`
	Metadata         ReportMetadata       `json:"metadata"`
}

// ReportArtifact references an uploaded report document.
type ReportArtifact struct {
	URL string `json:"url"`
}

// ReportResult is the outcome of one pipeline run: exactly one of Response
// (json mode) or Artifact (pdf/excel mode) is set.
type ReportResult struct {
	Response *ReportResponse `json:"response,omitempty"`
	Artifact *ReportArtifact `json:"artifact,omitempty"`
}

// ToReportResponse converts a domain aggregate into the JSON contract.
func ToReportResponse(agg domain.ReportAggregate) *ReportResponse {
	categories := make(map[string]float64, len(agg.CategorySummary))
	for _, ct := range agg.CategorySummary {
		categories[ct.Category] = ct.Amount.Round(2).InexactFloat64()
	}

	txns := make([]ReportTransaction, 0, len(agg.Transactions))
	for _, t := range agg.Transactions {
		txns = append(txns, ReportTransaction{
			TransactionID:   t.TransactionID,
			ShopID:          t.ShopID,
			CustomerID:      t.CustomerID,
			TransactionType: string(t.TransactionType),
			TotalAmount:     t.TotalAmount.Round(2).InexactFloat64(),
			Payable:         t.Payable.Round(2).InexactFloat64(),
			Receivable:      t.Receivable.Round(2).InexactFloat64(),
			Category:        t.Category,
			Description:     t.Description,
			Date:            t.Date,
			DueDate:         t.DueDate,
			ImageURL:        t.ImageURL,
			Type:            t.TypeLabel(),
			FormattedDate:   t.Date.UTC().Format("2006-01-02"),
		})
	}

	meta := ReportMetadata{
		TransactionCount: agg.Meta.TransactionCount,
		CustomerID:       agg.Meta.CustomerID,
		ShopID:           agg.Meta.ShopScope,
	}
	if agg.Meta.StartDate != nil {
		meta.DateRange.StartDate = agg.Meta.StartDate.UTC().Format("2006-01-02")
	}
	if agg.Meta.EndDate != nil {
		meta.DateRange.EndDate = agg.Meta.EndDate.UTC().Format("2006-01-02")
	}

	return &ReportResponse{
		TotalReceivables: agg.TotalReceivables.Round(2).InexactFloat64(),
		TotalPayables:    agg.TotalPayables.Round(2).InexactFloat64(),
		Balance:          agg.Balance.Round(2).InexactFloat64(),
		OpeningBalance:   agg.OpeningBalance.Round(2).InexactFloat64(),
		CategorySummary:  categories,
		Transactions:     txns,
		Alerts:           agg.Alerts,
		Metadata:         meta,
	}
}
