package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
)

const dateLayout = "2006-01-02"

type handlerFunc func(ctx context.Context, st Stores, params any) (*Result, error)

// Executor runs commands. Every Execute call is one atomic transaction:
// validate, mutate, verify-read, commit — or roll the whole thing back.
type Executor struct {
	runner   sqlutil.TxRunner
	stores   StoreFactory
	clock    clockwork.Clock
	logger   zerolog.Logger
	registry map[Kind]handlerFunc
}

// NewExecutor creates an executor over the given transaction runner and
// store factory.
func NewExecutor(runner sqlutil.TxRunner, stores StoreFactory, clock clockwork.Clock, logger zerolog.Logger) *Executor {
	e := &Executor{
		runner: runner,
		stores: stores,
		clock:  clock,
		logger: logger,
	}
	e.registry = map[Kind]handlerFunc{
		KindJoinTeam:              e.joinTeam,
		KindCancelMembership:      e.cancelMembership,
		KindCancelMatch:           e.cancelMatch,
		KindCancelFacilityMatches: e.cancelFacilityMatches,
		KindCreateFacilityLeague:  e.createFacilityLeague,
		KindUpdateMatchResult:     e.updateMatchResult,
		KindUpdateLeagueStatus:    e.updateLeagueStatus,
	}
	return e
}

// Execute runs the command registered for kind inside one transaction.
func (e *Executor) Execute(ctx context.Context, kind Kind, params any) (*Result, error) {
	handler, ok := e.registry[kind]
	if !ok {
		return nil, apperrors.E(apperrors.KindInvalidInput, "commands.Execute", "unknown command kind %q", kind)
	}

	execID := uuid.New()
	started := e.clock.Now()

	var res *Result
	err := e.runner.WithTx(ctx, func(tx sqlutil.DBTX) error {
		r, err := handler(ctx, e.stores(tx), params)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		e.logger.Error().
			Str("exec_id", execID.String()).
			Str("command", string(kind)).
			Str("error_kind", string(apperrors.KindOf(err))).
			Err(err).
			Msg("command rolled back")
		return nil, err
	}

	e.logger.Info().
		Str("exec_id", execID.String()).
		Str("command", string(kind)).
		Dur("elapsed", e.clock.Since(started)).
		Msg("command committed")
	return res, nil
}

// paramsAs narrows the untyped params to the command's parameter record.
func paramsAs[T any](op string, params any) (T, error) {
	p, ok := params.(T)
	if !ok {
		var zero T
		return zero, apperrors.E(apperrors.KindInvalidInput, op, "expected %T params, got %T", zero, params)
	}
	return p, nil
}

// parseDateOrDefault parses a YYYY-MM-DD date, falling back to def when the
// value is blank or does not parse.
func parseDateOrDefault(value string, def time.Time) time.Time {
	if value == "" {
		return def
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return def
	}
	return d
}
