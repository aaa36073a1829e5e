package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
)

func renderFixture() Document {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	agg := domain.ReportAggregate{
		TotalReceivables: decimal.NewFromInt(500),
		TotalPayables:    decimal.NewFromInt(200),
		OpeningBalance:   decimal.NewFromInt(1000),
		Balance:          decimal.NewFromInt(1300),
		CategorySummary: []domain.CategoryTotal{
			{Category: "Sales", Amount: decimal.NewFromInt(500)},
			{Category: "Supplies", Amount: decimal.NewFromInt(-200)},
		},
		Transactions: []domain.Transaction{
			{
				TransactionID:   "txn-1",
				CustomerID:      "cust-1",
				TransactionType: domain.Receivable,
				TotalAmount:     decimal.NewFromInt(500),
				Description:     "invoice",
				Category:        "Sales",
				Date:            start,
			},
			{
				TransactionID:   "txn-2",
				CustomerID:      "cust-2",
				TransactionType: domain.Payable,
				TotalAmount:     decimal.NewFromInt(200),
				Description:     "restock",
				Category:        "Supplies",
				Date:            end,
			},
		},
		Meta: domain.ReportMeta{StartDate: &start, EndDate: &end},
	}
	return BuildSummaryDocument(agg, "Summary Report", Options{
		SiteName:      "Karachi General Store",
		Currency:      "PKR",
		CustomerNames: map[string]string{"cust-1": "Ahmed", "cust-2": "Bilal"},
		Meta:          agg.Meta,
	})
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(renderFixture())

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderExcelRoundTrip(t *testing.T) {
	data, err := RenderExcel(renderFixture())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	var cells []string
	for _, row := range rows {
		cells = append(cells, row...)
	}
	assert.Contains(t, cells, "Karachi General Store")
	assert.Contains(t, cells, "Summary Report")
	assert.Contains(t, cells, "Closing Balance")
	assert.Contains(t, cells, "PKR 1,300.00")
	assert.Contains(t, cells, "Supplies")
	assert.Contains(t, cells, "Ahmed")
	assert.Contains(t, cells, "Bilal")
}

func TestRenderExcelSingleSheet(t *testing.T) {
	data, err := RenderExcel(renderFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())
}
