package catalog

import (
	"context"
	"fmt"
	"strconv"

	catalogRepo "tripdesk/database/repository/catalog"
	"tripdesk/models"
)

// Service runs the catalog query pipeline: fetch raw records, normalize,
// filter, sort and paginate.
type Service struct {
	Provider *catalogRepo.Provider
}

func NewService(provider *catalogRepo.Provider) *Service {
	return &Service{Provider: provider}
}

// GuideSearchResult is a page of guides plus the applied filter echo.
type GuideSearchResult struct {
	Guides         []models.GuideProfile
	Total          int
	Page           int
	TotalPages     int
	FiltersApplied map[string]interface{}
	Source         string
}

// TransportSearchResult is a page of transport options.
type TransportSearchResult struct {
	Transports     []models.TransportOption
	Total          int
	Page           int
	TotalPages     int
	FiltersApplied map[string]interface{}
	Source         string
}

// Guides returns every normalized guide and the dataset source.
func (s *Service) Guides(ctx context.Context) ([]models.GuideProfile, string, error) {
	dataset, err := s.Provider.FetchGuides(ctx)
	if err != nil {
		return nil, "", UpstreamError{Err: err}
	}
	guides := make([]models.GuideProfile, 0, len(dataset.Items))
	for _, raw := range dataset.Items {
		guides = append(guides, models.NormalizeGuide(raw))
	}
	return guides, dataset.Source, nil
}

// Transports returns every normalized transport option and the dataset source.
func (s *Service) Transports(ctx context.Context) ([]models.TransportOption, string, error) {
	dataset, err := s.Provider.FetchTransport(ctx)
	if err != nil {
		return nil, "", UpstreamError{Err: err}
	}
	options := make([]models.TransportOption, 0, len(dataset.Items))
	for _, raw := range dataset.Items {
		options = append(options, models.NormalizeTransportOption(raw))
	}
	return options, dataset.Source, nil
}

// SearchGuides runs the full guide pipeline for one request.
func (s *Service) SearchGuides(ctx context.Context, p GuideSearchParams) (*GuideSearchResult, error) {
	guides, source, err := s.Guides(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterGuides(guides, p)
	sorted := SortGuides(filtered, p.SortBy, p.SortOrder)
	page := Paginate(sorted, p.Page, p.Limit)

	return &GuideSearchResult{
		Guides:         page.Items,
		Total:          page.Total,
		Page:           page.Page,
		TotalPages:     page.TotalPages,
		FiltersApplied: p.FiltersApplied(),
		Source:         source,
	}, nil
}

// SearchTransport runs the full transport pipeline for one request.
func (s *Service) SearchTransport(ctx context.Context, p TransportSearchParams) (*TransportSearchResult, error) {
	options, source, err := s.Transports(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterTransport(options, p)
	sorted := SortTransport(filtered, p.SortBy, p.SortOrder)
	page := Paginate(sorted, p.Page, p.Limit)

	return &TransportSearchResult{
		Transports:     page.Items,
		Total:          page.Total,
		Page:           page.Page,
		TotalPages:     page.TotalPages,
		FiltersApplied: p.FiltersApplied(),
		Source:         source,
	}, nil
}

// FindGuideByID resolves one guide from the current dataset.
func (s *Service) FindGuideByID(ctx context.Context, rawID string) (*models.GuideProfile, error) {
	guides, _, err := s.Guides(ctx)
	if err != nil {
		return nil, err
	}
	for i := range guides {
		if IDMatches(guides[i].ID, rawID) {
			return &guides[i], nil
		}
	}
	return nil, NotFoundError{Resource: "Guide"}
}

// FindTransportByID resolves one transport option from the current dataset.
func (s *Service) FindTransportByID(ctx context.Context, rawID string) (*models.TransportOption, error) {
	options, _, err := s.Transports(ctx)
	if err != nil {
		return nil, err
	}
	for i := range options {
		if IDMatches(options[i].ID, rawID) {
			return &options[i], nil
		}
	}
	return nil, NotFoundError{Resource: "Transport option"}
}

// IDMatches compares a record id against a request id. Numeric-looking
// request ids compare equal to their numeric record counterparts.
func IDMatches(recordID interface{}, requested string) bool {
	if recordID == nil {
		return false
	}
	want := requested
	if n, err := strconv.ParseFloat(requested, 64); err == nil {
		want = fmt.Sprint(n)
	}
	return fmt.Sprint(recordID) == want
}
