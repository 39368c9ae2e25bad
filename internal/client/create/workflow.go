// Package create implements the two-step tournament creation workflow as an
// explicit state machine, independent of how the steps are rendered.
//
// The flow runs CollectingParameters -> CollectingTeamNames -> Submitting ->
// Done. Step one validates the tournament parameters and seeds default team
// names; step two lets the user edit and shuffle the names before
// submission. A failed submission drops back to CollectingTeamNames with the
// draft intact, so nothing has to be re-entered.
package create

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/champsapp/champs-cli/internal/client/models"
)

// State identifies where the workflow is in the creation flow.
type State int

const (
	StateCollectingParameters State = iota
	StateCollectingTeamNames
	StateSubmitting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCollectingParameters:
		return "collecting-parameters"
	case StateCollectingTeamNames:
		return "collecting-team-names"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// placeholders for blank team-name fields. Shuffle reads blanks as
// shufflePlaceholder; submission sends submitPlaceholder, the backend's
// naming for unnamed teams.
const (
	shufflePlaceholder = "Team"
	submitPlaceholder  = "Unbenannt"
)

// ValidationError is a rejected form input with a message meant for the
// user. The workflow surfaces these as notifications; they never abort the
// flow.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ErrSubmitInFlight is returned when Submit is activated while a submission
// is already running.
var ErrSubmitInFlight = errors.New("submission already in progress")

// Draft is the transient creation input accumulated across the two steps.
// It has no identifier; the backend assigns one on success.
type Draft struct {
	Name         string
	TeamCount    int
	GroupCount   int
	PlayoffSpots int
	TeamNames    []string
}

// Submitter sends an assembled creation request. *tournament.Cache satisfies
// this interface.
type Submitter interface {
	Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error)
}

// Workflow drives one creation flow. Not safe for concurrent use; the client
// runs a single workflow per creation attempt.
type Workflow struct {
	state State
	draft Draft

	// intn is the random source for Shuffle, swappable in tests.
	intn func(n int) int
}

func NewWorkflow() *Workflow {
	return &Workflow{state: StateCollectingParameters, intn: rand.IntN}
}

// State returns the workflow's current state.
func (w *Workflow) State() State {
	return w.state
}

// Draft returns a copy of the accumulated draft.
func (w *Workflow) Draft() Draft {
	d := w.draft
	d.TeamNames = append([]string(nil), w.draft.TeamNames...)
	return d
}

// SetParameters validates the step-one form fields and, on success, seeds
// the editable team-name list ("Team 1".."Team N") and advances to
// CollectingTeamNames. Inputs arrive as raw strings; "present and numeric"
// is part of the validation.
//
// Rules, checked in order:
//  1. name non-empty after trimming, all counts positive integers;
//  2. at least as many teams as groups;
//  3. playoff spots per group no greater than floor(teamCount/groupCount).
func (w *Workflow) SetParameters(name, teamCount, groupCount, playoffSpots string) error {
	if w.state == StateSubmitting || w.state == StateDone {
		return fmt.Errorf("cannot change parameters in state %s", w.state)
	}

	name = strings.TrimSpace(name)
	teams, err1 := parsePositiveInt(teamCount)
	groups, err2 := parsePositiveInt(groupCount)
	spots, err3 := parsePositiveInt(playoffSpots)
	if name == "" || err1 != nil || err2 != nil || err3 != nil {
		return validationErrorf("fill all fields correctly")
	}

	if teams < groups {
		return validationErrorf("cannot have more groups than teams")
	}

	teamsPerGroup := teams / groups
	if spots > teamsPerGroup {
		return validationErrorf("at most %d playoff spots per group", teamsPerGroup)
	}

	names := make([]string, teams)
	for i := range names {
		names[i] = fmt.Sprintf("Team %d", i+1)
	}

	w.draft = Draft{
		Name:         name,
		TeamCount:    teams,
		GroupCount:   groups,
		PlayoffSpots: spots,
		TeamNames:    names,
	}
	w.state = StateCollectingTeamNames
	return nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return n, nil
}

// TeamNames returns a copy of the current team-name fields.
func (w *Workflow) TeamNames() []string {
	return append([]string(nil), w.draft.TeamNames...)
}

// SetTeamName replaces the team name at index i (zero-based).
func (w *Workflow) SetTeamName(i int, name string) error {
	if w.state != StateCollectingTeamNames {
		return fmt.Errorf("no team list in state %s", w.state)
	}
	if i < 0 || i >= len(w.draft.TeamNames) {
		return validationErrorf("no team %d", i+1)
	}
	w.draft.TeamNames[i] = name
	return nil
}

// Shuffle applies an unbiased Fisher–Yates permutation to the current team
// names and writes the result back to the same fields. Blank entries read as
// the placeholder first, so partially edited names are never lost.
func (w *Workflow) Shuffle() error {
	if w.state != StateCollectingTeamNames {
		return fmt.Errorf("nothing to shuffle in state %s", w.state)
	}

	names := w.draft.TeamNames
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			names[i] = shufflePlaceholder
		} else {
			names[i] = strings.TrimSpace(n)
		}
	}

	for i := len(names) - 1; i > 0; i-- {
		j := w.intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	return nil
}

// Submit assembles the draft into a creation request (blank names become the
// backend's placeholder) and sends it. On failure the workflow returns to
// CollectingTeamNames with the draft intact, so the user can resubmit; on
// success it finishes in Done. Activating Submit while a submission runs
// returns ErrSubmitInFlight rather than issuing a duplicate request.
func (w *Workflow) Submit(ctx context.Context, submitter Submitter) (*models.Tournament, error) {
	switch w.state {
	case StateSubmitting:
		return nil, ErrSubmitInFlight
	case StateCollectingTeamNames:
		// proceed
	default:
		return nil, fmt.Errorf("no draft to submit in state %s", w.state)
	}

	w.state = StateSubmitting

	teams := make([]models.Team, len(w.draft.TeamNames))
	for i, n := range w.draft.TeamNames {
		n = strings.TrimSpace(n)
		if n == "" {
			n = submitPlaceholder
		}
		teams[i] = models.Team{Name: n}
	}

	req := &models.CreateTournamentRequest{
		Name:         w.draft.Name,
		GroupCount:   w.draft.GroupCount,
		PlayoffSpots: w.draft.PlayoffSpots,
		Teams:        teams,
	}

	t, err := submitter.Create(ctx, req)
	if err != nil {
		w.state = StateCollectingTeamNames
		return nil, err
	}

	w.state = StateDone
	return t, nil
}
