// Package summary computes display-ready summary statistics for a single
// field of an explore: top-value frequency tables and numeric distributions
// with histograms. It builds the aggregate queries, hands them to a query
// runner for execution, and normalizes the returned rows into a uniform
// tabular result, memoized per unique request.
package summary

import (
	"context"
	"fmt"

	"github.com/jkdabbert/app-data-dictionary/internal/api"
	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
)

// QueryRunner executes aggregate queries against the semantic model. It is
// satisfied by *api.Client; tests substitute a fake.
type QueryRunner interface {
	RunInlineQuery(ctx context.Context, q api.InlineQuery) (*api.QueryResult, error)
}

// Service computes field summaries. The cache it owns lives as long as the
// service does, which keeps memoization an explicit dependency of the session
// that constructed it rather than ambient global state.
type Service struct {
	runner QueryRunner
	cache  *Cache
}

func NewService(runner QueryRunner) *Service {
	return &Service{runner: runner, cache: NewCache()}
}

// Summarize computes the summary req asks for, memoized by the request's
// canonical key. Submitting a kind the field cannot support fails before any
// query is issued. A query failure propagates and is not cached.
func (s *Service) Summarize(ctx context.Context, explore *lookml.Explore, req Request) (*Result, error) {
	field, ok := explore.Field(req.Field)
	if !ok {
		return nil, fmt.Errorf("field %q not found in explore %s", req.Field, explore.Name)
	}
	switch req.Kind {
	case KindValues:
		if !CanComputeTopValues(explore, field) {
			return nil, fmt.Errorf("top values not computable for %s: need a dimension with a companion count measure", field.Name)
		}
		return s.cache.GetOrCompute(req.Key(), func() (*Result, error) {
			return s.topValues(ctx, req, explore, field)
		})
	case KindDistribution:
		if !CanComputeDistribution(field) {
			return nil, fmt.Errorf("distribution not computable for %s: need a numeric dimension", field.Name)
		}
		return s.cache.GetOrCompute(req.Key(), func() (*Result, error) {
			return s.distribution(ctx, req, explore, field)
		})
	default:
		return nil, fmt.Errorf("unknown summary kind %d", int(req.Kind))
	}
}

// Cached returns the memoized result for req, if one is resolved.
func (s *Service) Cached(req Request) (*Result, bool) {
	return s.cache.Peek(req.Key())
}
