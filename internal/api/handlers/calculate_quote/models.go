package calculate_quote

import (
	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

// QuoteRequest is the HTTP request model for a quote calculation.
type QuoteRequest struct {
	TVSizes       []int  `json:"tvSizes,omitempty"`
	TVSize        int    `json:"tvSize,omitempty"`
	TVCount       int    `json:"tvCount,omitempty"`
	WallType      string `json:"wallType,omitempty"`
	ConcealType   string `json:"concealType,omitempty"`
	Soundbar      bool   `json:"soundbar,omitempty"`
	LED           bool   `json:"led,omitempty"`
	TVRemoveCount int    `json:"tvRemoveCount,omitempty"`

	PictureCount      int  `json:"pictureCount,omitempty"`
	PictureLargeCount int  `json:"pictureLargeCount,omitempty"`
	GalleryWall       bool `json:"galleryWall,omitempty"`

	ShelvesCount       int `json:"shelvesCount,omitempty"`
	ShelvesRemoveCount int `json:"shelvesRemoveCount,omitempty"`

	ClosetShelfCount     int  `json:"closetShelfCount,omitempty"`
	ClosetRemoveCount    int  `json:"closetRemoveCount,omitempty"`
	ClosetNeedsMaterials bool `json:"closetNeedsMaterials,omitempty"`

	DecorCount       int `json:"decorCount,omitempty"`
	DecorRemoveCount int `json:"decorRemoveCount,omitempty"`

	ZIPCode          string `json:"zipCode"`
	SameDay          bool   `json:"sameDay,omitempty"`
	AfterHours       bool   `json:"afterHours,omitempty"`
	LadderRequired   bool   `json:"ladderRequired,omitempty"`
	ParkingNotes     string `json:"parkingNotes,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"`
}

// LineItems is the HTTP line-item breakdown.
type LineItems struct {
	TVTotal              float64 `json:"tvTotal"`
	PictureTotal         float64 `json:"pictureTotal"`
	ShelvesTotal         float64 `json:"shelvesTotal"`
	ClosetTotal          float64 `json:"closetTotal"`
	DecorTotal           float64 `json:"decorTotal"`
	MultiServiceDiscount float64 `json:"multiServiceDiscount"`
	SameDaySurcharge     float64 `json:"sameDaySurcharge"`
	AfterHoursSurcharge  float64 `json:"afterHoursSurcharge"`
}

// QuoteResponse is the HTTP response model.
type QuoteResponse struct {
	LineItems             LineItems `json:"lineItems"`
	SubtotalBeforeTax     float64   `json:"subtotalBeforeTax"`
	TaxRate               float64   `json:"taxRate"`
	TaxAmount             float64   `json:"taxAmount"`
	EstimatedTotalWithTax float64   `json:"estimatedTotalWithTax"`
	NumServices           int       `json:"numServices"`
	EstimatedHours        float64   `json:"estimatedHours"`
}

// ToServiceRequest converts the HTTP request to the domain request.
func (r *QuoteRequest) ToServiceRequest() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		TVSizes:              r.TVSizes,
		TVSize:               r.TVSize,
		TVCount:              r.TVCount,
		WallType:             r.WallType,
		ConcealType:          r.ConcealType,
		Soundbar:             r.Soundbar,
		LED:                  r.LED,
		TVRemoveCount:        r.TVRemoveCount,
		PictureCount:         r.PictureCount,
		PictureLargeCount:    r.PictureLargeCount,
		GalleryWall:          r.GalleryWall,
		ShelvesCount:         r.ShelvesCount,
		ShelvesRemoveCount:   r.ShelvesRemoveCount,
		ClosetShelfCount:     r.ClosetShelfCount,
		ClosetRemoveCount:    r.ClosetRemoveCount,
		ClosetNeedsMaterials: r.ClosetNeedsMaterials,
		DecorCount:           r.DecorCount,
		DecorRemoveCount:     r.DecorRemoveCount,
		ZIPCode:              r.ZIPCode,
		SameDay:              r.SameDay,
		AfterHours:           r.AfterHours,
		LadderRequired:       r.LadderRequired,
		ParkingNotes:         r.ParkingNotes,
		PreferredContact:     r.PreferredContact,
	}
}

// FromQuoteResult converts the domain result to the HTTP response.
func FromQuoteResult(result *domain.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		LineItems: LineItems{
			TVTotal:              result.LineItems.TVTotal,
			PictureTotal:         result.LineItems.PictureTotal,
			ShelvesTotal:         result.LineItems.ShelvesTotal,
			ClosetTotal:          result.LineItems.ClosetTotal,
			DecorTotal:           result.LineItems.DecorTotal,
			MultiServiceDiscount: result.LineItems.MultiServiceDiscount,
			SameDaySurcharge:     result.LineItems.SameDaySurcharge,
			AfterHoursSurcharge:  result.LineItems.AfterHoursSurcharge,
		},
		SubtotalBeforeTax:     result.SubtotalBeforeTax,
		TaxRate:               result.TaxRate,
		TaxAmount:             result.TaxAmount,
		EstimatedTotalWithTax: result.EstimatedTotalWithTax,
		NumServices:           result.NumServices,
		EstimatedHours:        result.EstimatedHours,
	}
}
