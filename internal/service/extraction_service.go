package service

import (
	"context"

	"billscan/internal/domain"
	"billscan/internal/port"
	"billscan/internal/validator"
)

// ExtractionService runs the full extraction pipeline for one document URL.
type ExtractionService interface {
	Extract(ctx context.Context, documentURL string) (*domain.ExtractionResponse, error)
}

type extractionService struct {
	fetcher   port.DocumentFetcher
	extractor port.BillExtractor
	validator *validator.SchemaValidator
}

// NewExtractionService wires the pipeline: fetch, extract, validate, reconcile.
func NewExtractionService(
	fetcher port.DocumentFetcher,
	billExtractor port.BillExtractor,
	schemaValidator *validator.SchemaValidator,
) ExtractionService {
	return &extractionService{
		fetcher:   fetcher,
		extractor: billExtractor,
		validator: schemaValidator,
	}
}

// Extract is stateless across requests; every entity it builds lives only for
// the duration of the call. The credential check runs first so a misconfigured
// server fails before any outbound I/O.
func (s *extractionService) Extract(ctx context.Context, documentURL string) (*domain.ExtractionResponse, error) {
	if err := s.extractor.Ready(); err != nil {
		return nil, err
	}

	doc, err := s.fetcher.Fetch(ctx, documentURL)
	if err != nil {
		return nil, err
	}

	out, err := s.extractor.Extract(ctx, *doc)
	if err != nil {
		return nil, err
	}

	raw, err := s.validator.Validate(out.RawJSON)
	if err != nil {
		return nil, err
	}

	finalTotal, itemCount := Reconcile(raw)

	var usage domain.TokenUsage
	usage.Add(out.Usage)

	return &domain.ExtractionResponse{
		IsSuccess:  true,
		TokenUsage: usage,
		Data: domain.ExtractionData{
			PagewiseLineItems:   raw.PagewiseLineItems,
			FinalTotalExtracted: finalTotal,
			TotalItemCount:      itemCount,
		},
	}, nil
}
