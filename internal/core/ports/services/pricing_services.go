package services

import (
	"context"

	"github.com/SscSPs/workspace_storefront/internal/core/domain"
	"github.com/SscSPs/workspace_storefront/internal/dto"
)

// PricingSvcFacade exposes the price computations to the storefront. Each call
// resolves the viewer's preference once and uses it for every amount it renders.
type PricingSvcFacade interface {
	ConvertAmount(ctx context.Context, viewer domain.PreferenceQuery, req dto.ConvertRequest) (*dto.ConvertResponse, error)
	ListingPrice(ctx context.Context, viewer domain.PreferenceQuery, listing domain.Listing) (*dto.ListingPriceResponse, error)
	BookingDuration(ctx context.Context, req dto.DurationRequest) (*dto.DurationResponse, error)
	Breakdown(ctx context.Context, viewer domain.PreferenceQuery, req dto.BreakdownRequest) (*dto.BreakdownResponse, error)
	EstimateBreakdown(ctx context.Context, viewer domain.PreferenceQuery, req dto.EstimateBreakdownRequest) (*dto.BreakdownResponse, error)
}
