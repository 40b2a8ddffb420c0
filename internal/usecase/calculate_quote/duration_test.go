package calculate_quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

func TestEstimateHours_Values(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.ServiceRequest
		expected float64
	}{
		{"empty request clamps to minimum", domain.ServiceRequest{}, 1.0},
		{"one TV", domain.ServiceRequest{TVSizes: []int{55}}, 1.0},
		{"two TVs", domain.ServiceRequest{TVSizes: []int{55, 65}}, 2.0},
		{"TV with removals", domain.ServiceRequest{TVSizes: []int{55}, TVRemoveCount: 2}, 1.5},
		{"small picture job hits the floor", domain.ServiceRequest{PictureCount: 3}, 1.0},
		{"large picture job", domain.ServiceRequest{PictureCount: 9}, 1.5},
		{"shelves with removal", domain.ServiceRequest{ShelvesCount: 2, ShelvesRemoveCount: 2}, 1.5},
		{"closet shelves", domain.ServiceRequest{ClosetShelfCount: 4}, 2.0},
		{"closet removals only", domain.ServiceRequest{ClosetRemoveCount: 3}, 1.0},
		{"decor", domain.ServiceRequest{DecorCount: 5}, 2.5},
		{"mixed visit sums categories", domain.ServiceRequest{TVSizes: []int{55}, PictureCount: 1}, 2.0},
		{"oversized job clamps to maximum", domain.ServiceRequest{TVSizes: []int{55, 55, 55, 55, 55, 55, 55, 55, 55, 55}}, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimateHours(&tt.req))
		})
	}
}

func TestEstimateHours_AlwaysInBookableRange(t *testing.T) {
	requests := []domain.ServiceRequest{
		{},
		{TVRemoveCount: 1},
		{DecorRemoveCount: 1},
		{PictureCount: 100, ShelvesCount: 100, ClosetShelfCount: 100, DecorCount: 100},
	}

	for _, req := range requests {
		hours := estimateHours(&req)
		assert.GreaterOrEqual(t, hours, domain.MinEstimatedHours)
		assert.LessOrEqual(t, hours, domain.MaxEstimatedHours)
	}
}

func TestEstimateHours_MonotonicInEveryCount(t *testing.T) {
	base := domain.ServiceRequest{
		TVSizes:            []int{55},
		TVRemoveCount:      1,
		PictureCount:       2,
		ShelvesCount:       2,
		ShelvesRemoveCount: 1,
		ClosetShelfCount:   2,
		ClosetRemoveCount:  1,
		DecorCount:         2,
		DecorRemoveCount:   1,
	}
	baseline := estimateHours(&base)

	bumps := []struct {
		name string
		bump func(r *domain.ServiceRequest)
	}{
		{"tv", func(r *domain.ServiceRequest) { r.TVSizes = append(r.TVSizes, 55) }},
		{"tv removal", func(r *domain.ServiceRequest) { r.TVRemoveCount++ }},
		{"pictures", func(r *domain.ServiceRequest) { r.PictureCount++ }},
		{"shelves", func(r *domain.ServiceRequest) { r.ShelvesCount++ }},
		{"shelves removal", func(r *domain.ServiceRequest) { r.ShelvesRemoveCount++ }},
		{"closet", func(r *domain.ServiceRequest) { r.ClosetShelfCount++ }},
		{"closet removal", func(r *domain.ServiceRequest) { r.ClosetRemoveCount++ }},
		{"decor", func(r *domain.ServiceRequest) { r.DecorCount++ }},
		{"decor removal", func(r *domain.ServiceRequest) { r.DecorRemoveCount++ }},
	}

	for _, tt := range bumps {
		t.Run(tt.name, func(t *testing.T) {
			bumped := base
			bumped.TVSizes = append([]int(nil), base.TVSizes...)
			tt.bump(&bumped)
			assert.GreaterOrEqual(t, estimateHours(&bumped), baseline)
		})
	}
}
