package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
)

const descriptionMaxLen = 10

// Options carries the presentation inputs a document embeds. Logo bytes
// are resolved by the caller before layout; a nil Logo falls back to the
// site name in text.
type Options struct {
	SiteName      string
	Currency      string
	CustomerLabel string
	CustomerNames map[string]string
	Logo          []byte
	Meta          domain.ReportMeta
}

var summaryColumns = []Column{
	{Title: "Type", Span: 1, Align: AlignCenter},
	{Title: "Date", Span: 2, Align: AlignLeft},
	{Title: "Customer", Span: 3, Align: AlignLeft},
	{Title: "Description", Span: 2, Align: AlignLeft},
	{Title: "Category", Span: 2, Align: AlignLeft},
	{Title: "Amount", Span: 2, Align: AlignRight},
}

var categoryColumns = []Column{
	{Title: "Category", Span: 8, Align: AlignLeft},
	{Title: "Total", Span: 4, Align: AlignRight},
}

var statementColumns = []Column{
	{Title: "Type", Span: 1, Align: AlignCenter},
	{Title: "Date", Span: 2, Align: AlignLeft},
	{Title: "Customer", Span: 2, Align: AlignLeft},
	{Title: "Description", Span: 2, Align: AlignLeft},
	{Title: "Category", Span: 2, Align: AlignLeft},
	{Title: "Amount", Span: 1, Align: AlignRight},
	{Title: "Balance", Span: 2, Align: AlignRight},
}

// BuildSummaryDocument lays out the period summary report: company header,
// balance summary band, per-category totals and the transaction table.
func BuildSummaryDocument(agg domain.ReportAggregate, title string, opts Options) Document {
	doc := newDocument(title, opts)

	doc.Rows = append(doc.Rows, summaryBand(agg, opts.Currency)...)
	doc.Rows = append(doc.Rows, spacer(4))

	if len(agg.CategorySummary) > 0 {
		doc.Rows = append(doc.Rows, sectionTitle("Category Summary"))
		doc.Rows = table(doc.Rows, categoryColumns, func(emit func([]string, []*RGB, bool)) {
			for _, ct := range agg.CategorySummary {
				emit(
					[]string{ct.Category, utils.FormatAmount(ct.Amount, opts.Currency)},
					[]*RGB{nil, signColor(ct.Amount)},
					false,
				)
			}
		})
		doc.Rows = append(doc.Rows, spacer(4))
	}

	doc.Rows = append(doc.Rows, sectionTitle("Transactions"))
	doc.Rows = table(doc.Rows, summaryColumns, func(emit func([]string, []*RGB, bool)) {
		for _, txn := range agg.Transactions {
			emit(transactionValues(txn, opts), transactionColors(txn), false)
		}
	})
	return doc
}

// BuildStatementDocument lays out the daily statement: the summary header
// plus a ledger table opening with a highlighted opening balance row and
// carrying a running balance column.
func BuildStatementDocument(agg domain.ReportAggregate, lines []domain.LedgerLine, title string, opts Options) Document {
	doc := newDocument(title, opts)

	doc.Rows = append(doc.Rows, summaryBand(agg, opts.Currency)...)
	doc.Rows = append(doc.Rows, spacer(4))

	doc.Rows = append(doc.Rows, sectionTitle("Ledger"))
	doc.Rows = table(doc.Rows, statementColumns, func(emit func([]string, []*RGB, bool)) {
		emit(
			[]string{"", "", "Opening Balance", "", "", "", utils.FormatAmount(agg.OpeningBalance, opts.Currency)},
			[]*RGB{nil, nil, nil, nil, nil, nil, signColor(agg.OpeningBalance)},
			true,
		)
		for _, line := range lines {
			txn := line.Transaction
			amount := line.Credit
			color := &colorCredit
			if txn.TransactionType == domain.Payable {
				amount = line.Debit
				color = &colorDebit
			}
			emit(
				[]string{
					txn.TypeLabel(),
					txn.Date.Format("2006-01-02"),
					customerName(opts, txn.CustomerID),
					utils.TruncateDescription(txn.Description, descriptionMaxLen),
					txn.CategoryOrDefault(),
					utils.FormatNumber(amount),
					utils.FormatAmount(line.RunningBalance, opts.Currency),
				},
				[]*RGB{nil, nil, nil, nil, nil, color, signColor(line.RunningBalance)},
				false,
			)
		}
	})
	return doc
}

func newDocument(title string, opts Options) Document {
	doc := Document{
		Title:         title,
		SiteName:      opts.SiteName,
		Currency:      opts.Currency,
		CustomerLabel: opts.CustomerLabel,
		Logo:          opts.Logo,
	}

	head := Row{Height: 16, Kind: KindBand}
	if len(opts.Logo) > 0 {
		head.Cells = []Cell{
			{Image: opts.Logo, Span: 3},
			{Text: opts.SiteName, Span: 9, Align: AlignRight, Bold: true, Size: 14},
		}
	} else {
		head.Cells = []Cell{
			{Text: opts.SiteName, Span: 12, Align: AlignCenter, Bold: true, Size: 16},
		}
	}
	doc.Rows = append(doc.Rows, head)

	doc.Rows = append(doc.Rows, Row{Height: 9, Kind: KindBand, Cells: []Cell{
		{Text: title, Span: 12, Align: AlignCenter, Bold: true, Size: 12},
	}})

	subtitle := rangeLabel(opts.Meta)
	if opts.CustomerLabel != "" {
		subtitle = opts.CustomerLabel + "  |  " + subtitle
	}
	doc.Rows = append(doc.Rows, Row{Height: 6, Kind: KindBand, Cells: []Cell{
		{Text: subtitle, Span: 12, Align: AlignCenter, Size: 9},
	}})
	doc.Rows = append(doc.Rows, spacer(4))
	return doc
}

func summaryBand(agg domain.ReportAggregate, currency string) []Row {
	rows := []Row{
		summaryLine("Opening Balance", agg.OpeningBalance, currency, false),
		summaryLine("Total Receivables", agg.TotalReceivables, currency, false),
		summaryLine("Total Payables", agg.TotalPayables.Neg(), currency, false),
		summaryLine("Closing Balance", agg.Balance, currency, true),
	}
	for _, alert := range agg.Alerts {
		rows = append(rows, Row{Height: 6, Kind: KindBand, Cells: []Cell{
			{Text: alert, Span: 12, Align: AlignCenter, Size: 9, Color: &colorDebit},
		}})
	}
	return rows
}

func summaryLine(label string, amount decimal.Decimal, currency string, highlight bool) Row {
	row := Row{Height: 7, Kind: KindBand, Cells: []Cell{
		{Text: label, Span: 8, Align: AlignLeft, Bold: highlight, Size: 10},
		{Text: utils.FormatAmount(amount, currency), Span: 4, Align: AlignRight, Bold: highlight, Size: 10, Color: signColor(amount)},
	}}
	if highlight {
		fill := fillHighlight
		row.Fill = &fill
	}
	return row
}

func sectionTitle(text string) Row {
	return Row{Height: 8, Kind: KindBand, Cells: []Cell{
		{Text: text, Span: 12, Align: AlignLeft, Bold: true, Size: 11},
	}}
}

func spacer(height float64) Row {
	return Row{Height: height, Kind: KindSpacer, Cells: []Cell{{Span: 12}}}
}

func transactionValues(txn domain.Transaction, opts Options) []string {
	return []string{
		txn.TypeLabel(),
		txn.Date.Format("2006-01-02"),
		customerName(opts, txn.CustomerID),
		utils.TruncateDescription(txn.Description, descriptionMaxLen),
		txn.CategoryOrDefault(),
		utils.FormatNumber(txn.TotalAmount),
	}
}

func transactionColors(txn domain.Transaction) []*RGB {
	color := &colorCredit
	if txn.TransactionType == domain.Payable {
		color = &colorDebit
	}
	return []*RGB{nil, nil, nil, nil, nil, color}
}

func customerName(opts Options, customerID string) string {
	if customerID == "" {
		return "-"
	}
	if name, ok := opts.CustomerNames[customerID]; ok && name != "" {
		return name
	}
	return customerID
}

func signColor(amount decimal.Decimal) *RGB {
	switch {
	case amount.IsNegative():
		return &colorDebit
	case amount.IsPositive():
		return &colorCredit
	default:
		return nil
	}
}

func rangeLabel(meta domain.ReportMeta) string {
	const layout = "2006-01-02"
	switch {
	case meta.StartDate != nil && meta.EndDate != nil:
		return fmt.Sprintf("%s to %s", meta.StartDate.Format(layout), meta.EndDate.Format(layout))
	case meta.StartDate != nil:
		return "From " + meta.StartDate.Format(layout)
	case meta.EndDate != nil:
		return "Until " + meta.EndDate.Format(layout)
	default:
		return "All time"
	}
}
