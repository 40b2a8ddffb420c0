package calculate_quote

import (
	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/pkg/money"
)

// Per-category time assumptions, in hours.
const (
	tvHoursPerUnit       = 1.0
	tvRemoveHoursPerUnit = 0.25
	pictureHoursPerGroup = 0.5 // per group of 3
	shelvesHoursPerPair  = 0.5
	shelvesRemoveHours   = 0.25
	closetHoursPerShelf  = 0.5
	closetRemoveHours    = 1.0 / 3.0
	decorHoursPerItem    = 0.5
	decorRemoveHours     = 1.0 / 3.0
	categoryMinimumHours = 1.0
)

// estimateHours estimates the on-site duration for a visit. Each category with
// work enforces a minimum bookable time, because even a tiny job carries setup
// and travel overhead; the total is clamped to the bookable range and rounded
// to one decimal.
func estimateHours(req *domain.ServiceRequest) float64 {
	total := 0.0

	// TV: flat per-unit, no category floor (a single TV already hits 1h).
	tvCount := len(req.TVUnits())
	total += tvHoursPerUnit * float64(tvCount)
	total += tvRemoveHoursPerUnit * float64(req.TVRemoveCount)

	if req.PictureCount > 0 {
		hours := pictureHoursPerGroup * float64(money.CeilDiv(req.PictureCount, 3))
		total += withFloor(hours)
	}

	if req.ShelvesCount > 0 {
		hours := shelvesHoursPerPair * float64(money.CeilDiv(req.ShelvesCount, 2))
		total += withFloor(hours)
	}
	total += shelvesRemoveHours * float64(req.ShelvesRemoveCount)

	if req.ClosetShelfCount > 0 {
		hours := closetHoursPerShelf * float64(req.ClosetShelfCount)
		total += withFloor(hours)
	}
	total += closetRemoveHours * float64(req.ClosetRemoveCount)

	if req.DecorCount > 0 {
		hours := decorHoursPerItem * float64(req.DecorCount)
		total += withFloor(hours)
	}
	total += decorRemoveHours * float64(req.DecorRemoveCount)

	// Clamp to the bookable range.
	if total < domain.MinEstimatedHours {
		total = domain.MinEstimatedHours
	}
	if total > domain.MaxEstimatedHours {
		total = domain.MaxEstimatedHours
	}

	return money.RoundTenth(total)
}

func withFloor(hours float64) float64 {
	if hours < categoryMinimumHours {
		return categoryMinimumHours
	}
	return hours
}
