package calculate_quote

import (
	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/pkg/money"
)

// UseCase computes a priced, taxed line-item quote with an estimated on-site
// duration. It is pure: no I/O, no shared mutable state, safe for concurrent
// use. The same request always yields the same result.
type UseCase struct {
	taxTable domain.TaxTable
	logger   Logger
}

// NewUseCase creates a new quote calculation usecase.
func NewUseCase(taxTable domain.TaxTable, logger Logger) *UseCase {
	return &UseCase{
		taxTable: taxTable,
		logger:   logger,
	}
}

// Execute calculates the quote for one visit.
func (uc *UseCase) Execute(req *domain.ServiceRequest) (*domain.QuoteResult, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	// 1. Work on a normalized copy; the caller's request stays untouched.
	normalized := *req
	if req.TVSizes != nil {
		normalized.TVSizes = append([]int(nil), req.TVSizes...)
	}
	normalized.Normalize()

	// 2. Price each category independently, rounding at each point of
	// computation.
	lineItems := domain.LineItems{
		TVTotal:      priceTVMounting(&normalized),
		PictureTotal: pricePictureHanging(normalized.PictureCount, normalized.PictureLargeCount),
		ShelvesTotal: priceFloatingShelves(normalized.ShelvesCount, normalized.ShelvesRemoveCount),
		ClosetTotal:  priceClosetShelving(normalized.ClosetShelfCount, normalized.ClosetRemoveCount),
		DecorTotal:   priceDecor(normalized.DecorCount, normalized.DecorRemoveCount),
	}

	// 3. Multi-service discount over chargeable categories.
	discount, numServices := multiServiceDiscount(lineItems.CategoryTotals())
	lineItems.MultiServiceDiscount = discount

	// Same-day / after-hours surcharges are applied at the booking stage,
	// never at quote time. They stay zero here for schema stability.
	lineItems.SameDaySurcharge = 0
	lineItems.AfterHoursSurcharge = 0

	// 4. Subtotal and tax.
	subtotal := money.RoundCents(
		lineItems.TVTotal +
			lineItems.PictureTotal +
			lineItems.ShelvesTotal +
			lineItems.ClosetTotal +
			lineItems.DecorTotal +
			lineItems.MultiServiceDiscount +
			lineItems.SameDaySurcharge +
			lineItems.AfterHoursSurcharge,
	)

	taxRate := uc.taxTable.RateFor(normalized.ZIPCode)
	taxAmount := money.RoundCents(subtotal * taxRate)
	totalWithTax := money.RoundCents(subtotal + taxAmount)

	// 5. Estimated on-site duration.
	estimatedHours := estimateHours(&normalized)

	result := &domain.QuoteResult{
		LineItems:             lineItems,
		SubtotalBeforeTax:     subtotal,
		TaxRate:               taxRate,
		TaxAmount:             taxAmount,
		EstimatedTotalWithTax: totalWithTax,
		NumServices:           numServices,
		EstimatedHours:        estimatedHours,
	}

	uc.logger.Info("CalculateQuote: services=%d, subtotal=%.2f, tax_rate=%.4f, total=%.2f, estimated_hours=%.1f",
		result.NumServices, result.SubtotalBeforeTax, result.TaxRate, result.EstimatedTotalWithTax, result.EstimatedHours)

	return result, nil
}
