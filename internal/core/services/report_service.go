package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/render"
	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
	"github.com/dukaanbook/dukaanbook_backend/internal/utils/accounting"
)

const (
	contentTypePDF   = "application/pdf"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	allShopsSiteName = "All Shops"
)

// reportService is the report export pipeline: validate the window, resolve
// the opening balance, fetch and aggregate transactions, then either return
// the aggregate as JSON or render a document, upload it and return its URL.
type reportService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	settingRepo  portsrepo.SettingRepositoryFacade
	balances     portssvc.BalanceResolverSvc
	blobs        portssvc.BlobStore
	images       portssvc.ImageFetcher
}

// NewReportService creates the report pipeline service.
func NewReportService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	settingRepo portsrepo.SettingRepositoryFacade,
	balances portssvc.BalanceResolverSvc,
	blobs portssvc.BlobStore,
	images portssvc.ImageFetcher,
) portssvc.ReportSvcFacade {
	return &reportService{
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
		settingRepo:  settingRepo,
		balances:     balances,
		blobs:        blobs,
		images:       images,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// GenerateSummaryReport produces the period summary report.
func (s *reportService) GenerateSummaryReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error) {
	return s.generate(ctx, req, false)
}

// GenerateDailyStatement produces the statement variant with the opening
// balance row and a per-row running balance.
func (s *reportService) GenerateDailyStatement(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error) {
	return s.generate(ctx, req, true)
}

func (s *reportService) generate(ctx context.Context, req dto.ReportRequest, statement bool) (*dto.ReportResult, error) {
	// All parameter validation happens before any repository call.
	start, end, err := parseWindow(req)
	if err != nil {
		return nil, err
	}
	format := req.Format
	if format == "" {
		format = dto.FormatJSON
	}
	switch format {
	case dto.FormatJSON, dto.FormatPDF, dto.FormatExcel:
	default:
		return nil, fmt.Errorf("%w: unsupported report format %q", apperrors.ErrValidation, req.Format)
	}

	opening, err := s.balances.ResolveOpeningBalance(ctx, req.Scope, req.CustomerID, start)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindForReport(ctx, portsrepo.TransactionFilter{
		Scope:      req.Scope,
		CustomerID: req.CustomerID,
		From:       start,
		To:         end,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for report",
			slog.String("scope", req.Scope.String()))
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	agg := accounting.Aggregate(txns, opening, domain.ReportMeta{
		StartDate:  start,
		EndDate:    end,
		CustomerID: req.CustomerID,
		ShopScope:  req.Scope.String(),
	})

	if format == dto.FormatJSON {
		return &dto.ReportResult{Response: dto.ToReportResponse(agg)}, nil
	}

	doc, err := s.buildDocument(ctx, req, agg, statement)
	if err != nil {
		return nil, err
	}

	artifact, err := s.renderAndUpload(ctx, doc, format, reportKind(statement))
	if err != nil {
		return nil, err
	}
	return &dto.ReportResult{Artifact: artifact}, nil
}

// buildDocument resolves presentation inputs (settings, customer names, the
// logo bytes) and lays out the document. Everything async is materialized
// here so the layout pass stays pure.
func (s *reportService) buildDocument(ctx context.Context, req dto.ReportRequest, agg domain.ReportAggregate, statement bool) (render.Document, error) {
	opts := render.Options{
		SiteName: allShopsSiteName,
		Currency: domain.DefaultCurrency,
		Meta:     agg.Meta,
	}

	var logoURL string
	if shopID, ok := req.Scope.ShopID(); ok {
		opts.SiteName = shopID
		setting, err := s.settingRepo.FindSettingByShop(ctx, shopID)
		if err == nil {
			if setting.SiteName != "" {
				opts.SiteName = setting.SiteName
			}
			opts.Currency = setting.CurrencyOrDefault()
			logoURL = setting.LogoURL
		}
	}

	opts.CustomerNames = s.customerNames(ctx, req, agg)
	if req.CustomerID != "" {
		name := req.CustomerID
		if n, ok := opts.CustomerNames[req.CustomerID]; ok {
			name = n
		}
		opts.CustomerLabel = "Customer: " + name
	}

	// Logo failures degrade to a text header, never fail the report.
	if logoURL != "" {
		logo, err := s.images.Fetch(ctx, logoURL)
		if err != nil {
			s.LogInfo(ctx, "Logo fetch failed, rendering without it",
				slog.String("url", logoURL), slog.String("error", err.Error()))
		} else {
			opts.Logo = logo
		}
	}

	if statement {
		lines := accounting.CalculateRunningBalance(agg.Transactions, agg.OpeningBalance)
		return render.BuildStatementDocument(agg, lines, "Daily Statement", opts), nil
	}
	return render.BuildSummaryDocument(agg, "Summary Report", opts), nil
}

// customerNames maps the customer IDs appearing in the aggregate to display
// names. Lookups are best effort; a miss falls back to the raw ID.
func (s *reportService) customerNames(ctx context.Context, req dto.ReportRequest, agg domain.ReportAggregate) map[string]string {
	names := make(map[string]string)

	if shopID, ok := req.Scope.ShopID(); ok {
		customers, err := s.customerRepo.ListCustomersByShop(ctx, shopID)
		if err != nil {
			s.LogDebug(ctx, "Failed to list customers for report", slog.String("shopID", shopID))
			return names
		}
		for _, c := range customers {
			names[c.CustomerID] = c.Name
		}
		return names
	}

	seen := make(map[string]bool)
	for _, txn := range agg.Transactions {
		if txn.CustomerID == "" || seen[txn.CustomerID] {
			continue
		}
		seen[txn.CustomerID] = true
		if customer, err := s.customerRepo.FindCustomerByID(ctx, txn.CustomerID); err == nil {
			names[customer.CustomerID] = customer.Name
		}
	}
	return names
}

// renderAndUpload renders in memory and uploads the bytes. Any failure in
// either stage surfaces as ErrReportGeneration; a render failure never
// reaches the blob store.
func (s *reportService) renderAndUpload(ctx context.Context, doc render.Document, format, kind string) (*dto.ReportArtifact, error) {
	var (
		data        []byte
		contentType string
		ext         string
		err         error
	)
	switch format {
	case dto.FormatPDF:
		data, err = render.RenderPDF(doc)
		contentType, ext = contentTypePDF, "pdf"
	case dto.FormatExcel:
		data, err = render.RenderExcel(doc)
		contentType, ext = contentTypeExcel, "xlsx"
	}
	if err != nil {
		s.LogError(ctx, err, "Report rendering failed", slog.String("format", format))
		return nil, fmt.Errorf("%w: rendering %s: %v", apperrors.ErrReportGeneration, format, err)
	}

	objectName := fmt.Sprintf("reports/%s-%d-%s.%s", kind, time.Now().Unix(), uuid.NewString()[:8], ext)
	url, err := s.blobs.Put(ctx, objectName, data, contentType)
	if err != nil {
		s.LogError(ctx, err, "Report upload failed", slog.String("object", objectName))
		return nil, fmt.Errorf("%w: uploading %s: %v", apperrors.ErrReportGeneration, objectName, err)
	}

	s.LogInfo(ctx, "Report generated", slog.String("object", objectName), slog.Int("bytes", len(data)))
	return &dto.ReportArtifact{URL: url}, nil
}

func reportKind(statement bool) string {
	if statement {
		return "statement"
	}
	return "summary"
}

// parseWindow validates the requested date strings strictly and returns the
// normalized inclusive bounds. Both bounds are optional.
func parseWindow(req dto.ReportRequest) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if req.StartDate != "" {
		t, err := utils.ParseStrictDate(req.StartDate, false)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid startDate: %w", err)
		}
		start = &t
	}
	if req.EndDate != "" {
		t, err := utils.ParseStrictDate(req.EndDate, true)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid endDate: %w", err)
		}
		end = &t
	}
	if err := utils.ValidateDateRange(start, end); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
