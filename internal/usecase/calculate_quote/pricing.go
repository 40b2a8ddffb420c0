package calculate_quote

import (
	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/pkg/money"
)

// Price table. All amounts in dollars.
const (
	tvSizeThresholdInches = 60
	tvBaseSmall           = 60.0 // under 60"
	tvBaseLarge           = 70.0 // 60" and up
	tvWallBrick           = 20.0
	tvWallMasonry         = 30.0 // concrete, stone, tile
	tvConcealOnWall       = 40.0
	tvConcealInWall       = 80.0
	tvSoundbarAddon       = 20.0
	tvLEDAddon            = 10.0
	tvRemovePerUnit       = 5.0

	pictureBase           = 30.0 // covers the first 1-2 items
	picturePerExtraGroup  = 30.0 // per additional group of 3
	pictureLargeSurcharge = 10.0 // per 2 large items, rounded up

	shelvesPerPair       = 60.0 // per 2 shelves, rounded up
	shelvesRemovePerUnit = 5.0

	closetFirstShelf    = 60.0
	closetTwoShelves    = 90.0
	closetPerExtraShelf = 30.0
	closetRemovePerUnit = 10.0

	decorPerItem       = 20.0
	decorMinimum       = 60.0
	decorRemovePerUnit = 10.0

	multiServiceDiscountRate = 0.15
)

// priceTVMounting prices the TV category: per-TV base by size tier, plus
// once-per-visit wall-type, concealment and add-on surcharges, plus removals.
// No TVs means the whole category is exactly zero, surcharges included.
func priceTVMounting(req *domain.ServiceRequest) float64 {
	sizes := req.TVUnits()
	if len(sizes) == 0 && req.TVRemoveCount == 0 {
		return 0
	}

	total := 0.0
	for _, size := range sizes {
		if size >= tvSizeThresholdInches {
			total += tvBaseLarge
		} else {
			total += tvBaseSmall
		}
	}

	// Visit-level surcharges apply once, and only when something is mounted.
	if len(sizes) > 0 {
		total += wallTypeSurcharge(req.WallType)
		total += concealmentSurcharge(req.ConcealType)
		if req.Soundbar {
			total += tvSoundbarAddon
		}
		if req.LED {
			total += tvLEDAddon
		}
	}

	total += tvRemovePerUnit * float64(req.TVRemoveCount)

	return money.RoundCents(total)
}

func wallTypeSurcharge(wallType string) float64 {
	switch wallType {
	case domain.WallBrick:
		return tvWallBrick
	case domain.WallConcrete, domain.WallStone, domain.WallTile:
		return tvWallMasonry
	default:
		// drywall or unknown
		return 0
	}
}

func concealmentSurcharge(concealType string) float64 {
	switch concealType {
	case domain.ConcealOnWall, domain.ConcealRaceway:
		return tvConcealOnWall
	case domain.ConcealInWall:
		return tvConcealInWall
	default:
		return 0
	}
}

// pricePictureHanging prices picture and art hanging: $30 covers 1-2 items,
// each further group of 3 adds $30. Large items add $10 per 2, rounded up.
func pricePictureHanging(count, largeCount int) float64 {
	if count <= 0 {
		return 0
	}

	base := pictureBase
	if count > 2 {
		base += picturePerExtraGroup * float64(money.CeilDiv(count-2, 3))
	}

	if largeCount > 0 {
		base += pictureLargeSurcharge * float64(money.CeilDiv(largeCount, 2))
	}

	return money.RoundCents(base)
}

// priceFloatingShelves prices shelf installs at $60 per pair (rounded up) and
// removals at $5 each.
func priceFloatingShelves(installCount, removeCount int) float64 {
	total := 0.0
	if installCount > 0 {
		total += shelvesPerPair * float64(money.CeilDiv(installCount, 2))
	}
	total += shelvesRemovePerUnit * float64(removeCount)
	return money.RoundCents(total)
}

// priceClosetShelving prices closet installs (1 shelf $60, 2 shelves $90, $30
// per shelf past that) and removals at $10 each.
func priceClosetShelving(installCount, removeCount int) float64 {
	total := 0.0
	switch {
	case installCount == 1:
		total = closetFirstShelf
	case installCount >= 2:
		total = closetTwoShelves + closetPerExtraShelf*float64(installCount-2)
	}
	total += closetRemovePerUnit * float64(removeCount)
	return money.RoundCents(total)
}

// priceDecor prices curtain/blind/decor installs at $20 per item with a $60
// floor once any items are included, and removals at $10 each.
func priceDecor(installCount, removeCount int) float64 {
	total := 0.0
	if installCount > 0 {
		total = decorPerItem * float64(installCount)
		if total < decorMinimum {
			total = decorMinimum
		}
	}
	total += decorRemovePerUnit * float64(removeCount)
	return money.RoundCents(total)
}

// multiServiceDiscount returns the discount line item (zero or negative) plus
// the number of chargeable categories. The discount applies only when two or
// more categories carry a charge: 15% off the sum of those categories.
func multiServiceDiscount(categoryTotals []float64) (discount float64, numServices int) {
	chargedSum := 0.0
	for _, total := range categoryTotals {
		if total > 0 {
			numServices++
			chargedSum += total
		}
	}

	if numServices >= 2 {
		discount = money.RoundCents(-multiServiceDiscountRate * chargedSum)
	}

	return discount, numServices
}
