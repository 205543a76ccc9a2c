// Package session drives the interactive collect, score and present loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"laptop-price/internal/prompt"
	"laptop-price/pkg/api"
)

const repeatPrompt = "Try again? (yes, no)"

// Collector gathers one validated parameter set and answers free-form prompts.
type Collector interface {
	Collect(ctx context.Context) (prompt.Params, error)
	Ask(ctx context.Context, prompt string) (string, error)
}

// Predictor scores a request. A nil response with a nil error means the
// failure was already reported and there is nothing to show.
type Predictor interface {
	Predict(ctx context.Context, req *api.ScoreRequest) (*api.ScoreResponse, error)
}

// Presenter renders a prediction.
type Presenter interface {
	Present(resp *api.ScoreResponse) error
}

// Session runs rounds until the user declines to continue.
type Session struct {
	collector Collector
	predictor Predictor
	presenter Presenter
	logger    zerolog.Logger
}

// New wires a session from its parts.
func New(c Collector, p Predictor, pr Presenter, logger zerolog.Logger) *Session {
	return &Session{
		collector: c,
		predictor: p,
		presenter: pr,
		logger:    logger,
	}
}

// Run repeats rounds while the user answers "yes". Running out of input ends
// the session without error. A fatal scoring error, or ctx.Err() once ctx is
// done, is returned.
func (s *Session) Run(ctx context.Context) error {
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.round(ctx, round); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				s.logger.Debug().Int("round", round).Msg("Input closed, ending session")
				return nil
			}
			return err
		}

		answer, err := s.collector.Ask(ctx, repeatPrompt)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return err
		}
		if answer != "yes" {
			return nil
		}
	}
}

func (s *Session) round(ctx context.Context, round int) error {
	params, err := s.collector.Collect(ctx)
	if err != nil {
		return err
	}

	resp, err := s.predictor.Predict(ctx, params.Request())
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	if resp == nil {
		s.logger.Debug().Int("round", round).Msg("No prediction to present")
		return nil
	}

	if err := s.presenter.Present(resp); err != nil {
		s.logger.Warn().Err(err).Int("round", round).Msg("Prediction presented incompletely")
	}
	return nil
}
