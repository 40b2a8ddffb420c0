package domain

// LineItems is the fixed per-category breakdown of a quote. All amounts are
// dollars rounded to cents; MultiServiceDiscount is zero or negative. The
// surcharge fields are always zero at quote time and exist so the schema stays
// stable when the booking stage fills them in.
type LineItems struct {
	TVTotal              float64
	PictureTotal         float64
	ShelvesTotal         float64
	ClosetTotal          float64
	DecorTotal           float64
	MultiServiceDiscount float64
	SameDaySurcharge     float64
	AfterHoursSurcharge  float64
}

// CategoryTotals returns the five service-category amounts in canonical order
// (TV, pictures, shelves, closet, decor), excluding discount and surcharges.
func (li LineItems) CategoryTotals() []float64 {
	return []float64{li.TVTotal, li.PictureTotal, li.ShelvesTotal, li.ClosetTotal, li.DecorTotal}
}

// QuoteResult is the priced outcome of one ServiceRequest. It is an immutable
// value: created fresh per request and never mutated.
type QuoteResult struct {
	LineItems             LineItems
	SubtotalBeforeTax     float64
	TaxRate               float64
	TaxAmount             float64
	EstimatedTotalWithTax float64
	NumServices           int     // categories with a non-zero charge
	EstimatedHours        float64 // clamped to [MinEstimatedHours, MaxEstimatedHours]
}

// HasMultiServiceDiscount reports whether the quote combined enough chargeable
// categories to earn the discount.
func (q *QuoteResult) HasMultiServiceDiscount() bool {
	return q.LineItems.MultiServiceDiscount < 0
}

// IsFree reports whether the visit priced to nothing (a legitimate outcome for
// an all-zero request, not an error).
func (q *QuoteResult) IsFree() bool {
	return q.SubtotalBeforeTax == 0
}
