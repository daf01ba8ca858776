// Package runner turns parsed commit directives into issue-tracker and
// time-tracking calls: build a plan, then apply it with retry.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ldenholm/trackhook/internal/config"
	"github.com/ldenholm/trackhook/internal/jira"
	"github.com/ldenholm/trackhook/internal/models"
	"github.com/ldenholm/trackhook/internal/tempo"

	"github.com/cenkalti/backoff/v4"
)

// Tracker is the issue-tracker surface the runner needs
type Tracker interface {
	ListTransitions(ctx context.Context, key string) ([]jira.Transition, error)
	TransitionIssue(ctx context.Context, key, transitionID string) error
	AddComment(ctx context.Context, key, text string) error
}

// TimeLogger is the time-tracking surface the runner needs
type TimeLogger interface {
	CreateWorklog(ctx context.Context, issueKey string, hours float64, date, description, phase, attributeKey string) error
}

// Runner applies a plan against the configured services
type Runner struct {
	cfg     *config.Config
	tracker Tracker
	timelog TimeLogger
	dryRun  bool

	newBackOff func() backoff.BackOff
}

// New creates a runner backed by real Jira and Tempo clients
func New(cfg *config.Config, dryRun bool) *Runner {
	timeout := cfg.RequestTimeout()
	return NewWithClients(cfg,
		jira.NewClient(cfg.Tracker.URL, cfg.TrackerUsername(), cfg.TrackerToken(), timeout),
		tempo.NewClient(cfg.Tempo.URL, cfg.TempoToken(), timeout),
		dryRun,
	)
}

// NewWithClients creates a runner with explicit collaborators
func NewWithClients(cfg *config.Config, tracker Tracker, timelog TimeLogger, dryRun bool) *Runner {
	maxElapsed := cfg.MaxRetryElapsed()
	return &Runner{
		cfg:     cfg,
		tracker: tracker,
		timelog: timelog,
		dryRun:  dryRun,
		newBackOff: func() backoff.BackOff {
			// BackOff implementations are stateful; always return a fresh instance.
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = maxElapsed
			return bo
		},
	}
}

// BuildPlan derives the ordered actions for one parsed commit.
// The "today" default for a missing log date is applied here, not in the
// parser.
func BuildPlan(d models.Directives, now time.Time) models.Plan {
	plan := models.Plan{
		Issue:      d.Issue,
		Directives: d,
	}

	if d.Status != nil {
		plan.Actions = append(plan.Actions, models.Action{
			Kind:   models.ActionTransition,
			Status: *d.Status,
		})
	}

	if d.LogHours != nil {
		date := now.Format("2006-01-02")
		if d.LogDate != nil {
			date = *d.LogDate
		}
		action := models.Action{
			Kind:  models.ActionWorklog,
			Hours: *d.LogHours,
			Date:  date,
		}
		if d.Phase != nil {
			action.Phase = *d.Phase
		}
		plan.Actions = append(plan.Actions, action)
	}

	if d.Comment != nil {
		plan.Actions = append(plan.Actions, models.Action{
			Kind:    models.ActionComment,
			Comment: *d.Comment,
		})
	}

	return plan
}

// Apply executes the plan's actions in order. Each action retries
// transient failures independently; one action failing does not stop the
// rest.
func (r *Runner) Apply(ctx context.Context, plan models.Plan) []models.ActionResult {
	results := make([]models.ActionResult, 0, len(plan.Actions))

	for _, action := range plan.Actions {
		results = append(results, models.ActionResult{
			Action: action,
			Status: r.applyOne(ctx, plan, action),
		})
	}

	return results
}

func (r *Runner) applyOne(ctx context.Context, plan models.Plan, action models.Action) models.ActionStatus {
	if r.dryRun {
		return models.Skipped("dry run")
	}

	operation := func() error {
		err := r.execute(ctx, plan, action)
		if err != nil && !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(r.newBackOff(), ctx)); err != nil {
		return models.Failed(err.Error())
	}

	return models.Applied
}

func (r *Runner) execute(ctx context.Context, plan models.Plan, action models.Action) error {
	switch action.Kind {
	case models.ActionTransition:
		transitions, err := r.tracker.ListTransitions(ctx, plan.Issue)
		if err != nil {
			return err
		}
		transition := jira.FindTransition(transitions, action.Status)
		if transition == nil {
			return &noTransitionError{Issue: plan.Issue, Status: action.Status}
		}
		return r.tracker.TransitionIssue(ctx, plan.Issue, transition.ID)

	case models.ActionWorklog:
		description := plan.Directives.FirstLine
		return r.timelog.CreateWorklog(ctx, plan.Issue, action.Hours, action.Date,
			description, action.Phase, r.cfg.Tempo.PhaseAttributeKey)

	case models.ActionComment:
		return r.tracker.AddComment(ctx, plan.Issue, action.Comment)

	default:
		return fmt.Errorf("unknown action kind %d", action.Kind)
	}
}

// noTransitionError means the requested status label is not reachable from
// the issue's current state. Never retried: the workflow won't change
// between attempts.
type noTransitionError struct {
	Issue  string
	Status string
}

func (e *noTransitionError) Error() string {
	return fmt.Sprintf("no transition named %q available on %s", e.Status, e.Issue)
}

// isRetryable reports whether an action error is worth retrying: server
// errors and rate limits are, client errors and workflow mismatches are not.
// Plain transport errors retry.
func isRetryable(err error) bool {
	var noTransition *noTransitionError
	if errors.As(err, &noTransition) {
		return false
	}

	var apiErr interface{ HTTPStatus() int }
	if errors.As(err, &apiErr) {
		code := apiErr.HTTPStatus()
		return code >= 500 || code == 429
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return true
}
