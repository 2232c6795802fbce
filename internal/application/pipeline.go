package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

// orderDelimiter splits a multi-order text into individual orders. Order
// documents conventionally start each entry with the word "Order".
const orderDelimiter = "Order"

// Supervisor runs the full order pipeline: free-text order in, structured
// spec out of the extractor, ranked matches out of the engine. Extraction
// failures are captured per order so one bad order never fails a batch.
type Supervisor struct {
	engine    *Engine
	extractor ports.SpecExtractor
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSupervisor wires the pipeline. The extractor may be nil, in which
// case only pre-structured requests can be processed.
func NewSupervisor(engine *Engine, extractor ports.SpecExtractor, logger zerolog.Logger) *Supervisor {
	return &Supervisor{
		engine:    engine,
		extractor: extractor,
		logger:    logger.With().Str("component", "supervisor").Logger(),
		now:       time.Now,
	}
}

// ProcessOrder extracts a structured request from orderText and ranks the
// inventory against it. Failures surface in the analysis Status/Err, not
// as a returned error.
func (s *Supervisor) ProcessOrder(ctx context.Context, orderText string, inventory []domain.Record) domain.OrderAnalysis {
	analysis := domain.OrderAnalysis{ID: uuid.NewString()}

	if s.extractor == nil {
		return s.fail(analysis, "no spec extractor configured")
	}

	spec, err := s.extractor.ExtractRequest(ctx, orderText)
	if err != nil {
		s.logger.Error().Err(err).Str("analysis_id", analysis.ID).Msg("order extraction failed")
		return s.fail(analysis, "extraction failed: "+err.Error())
	}
	analysis.Request = spec

	results, err := s.engine.Rank(ctx, inventory, spec)
	if err != nil {
		s.logger.Error().Err(err).Str("analysis_id", analysis.ID).Msg("ranking failed")
		return s.fail(analysis, "matching failed: "+err.Error())
	}

	analysis.Results = results
	analysis.Status = domain.StatusSuccess
	analysis.ProcessedAt = s.now()
	return analysis
}

// ProcessStructured ranks the inventory against an already-structured
// request, bypassing extraction.
func (s *Supervisor) ProcessStructured(ctx context.Context, request domain.Record, inventory []domain.Record) domain.OrderAnalysis {
	analysis := domain.OrderAnalysis{ID: uuid.NewString(), Request: request}

	results, err := s.engine.Rank(ctx, inventory, request)
	if err != nil {
		s.logger.Error().Err(err).Str("analysis_id", analysis.ID).Msg("ranking failed")
		return s.fail(analysis, "matching failed: "+err.Error())
	}

	analysis.Results = results
	analysis.Status = domain.StatusSuccess
	analysis.ProcessedAt = s.now()
	return analysis
}

// ProcessOrders splits a multi-order text on the order delimiter and runs
// each piece through ProcessOrder.
func (s *Supervisor) ProcessOrders(ctx context.Context, ordersText string, inventory []domain.Record) []domain.OrderAnalysis {
	pieces := strings.Split(strings.TrimSpace(ordersText), orderDelimiter)

	var analyses []domain.OrderAnalysis
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		s.logger.Info().Int("order", len(analyses)+1).Msg("processing order")
		analyses = append(analyses, s.ProcessOrder(ctx, piece, inventory))
	}
	return analyses
}

func (s *Supervisor) fail(analysis domain.OrderAnalysis, msg string) domain.OrderAnalysis {
	analysis.Status = domain.StatusError
	analysis.Err = msg
	analysis.ProcessedAt = s.now()
	return analysis
}
