package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/champsapp/champs-cli/internal/client/create"
)

// Create runs the two-step tournament creation flow.
//
// Step one collects the parameters (name, team count, group count, playoff
// spots) and validates them; bad input re-prompts without losing the flow.
// Step two shows the seeded team names and loops on small editing commands
// until the user submits or cancels:
//
//	<n> <name>  — rename team n
//	shuffle     — randomize the team order
//	done        — submit the tournament
//	cancel      — abandon the draft
//
// On a failed submission the draft is kept so the user can retry.
func (a *App) Create(ctx context.Context) error {
	wf := create.NewWorkflow()

	for wf.State() == create.StateCollectingParameters {
		name, err := getSimpleText(a.reader, "Tournament name", a.out)
		if err != nil {
			return err
		}
		teams, err := getSimpleText(a.reader, "Number of teams", a.out)
		if err != nil {
			return err
		}
		groups, err := getSimpleText(a.reader, "Number of groups", a.out)
		if err != nil {
			return err
		}
		spots, err := getSimpleText(a.reader, "Playoff spots per group", a.out)
		if err != nil {
			return err
		}

		if err := wf.SetParameters(name, teams, groups, spots); err != nil {
			var verr *create.ValidationError
			if errors.As(err, &verr) {
				a.notifyError(verr)
				continue
			}
			return err
		}
	}

	for wf.State() == create.StateCollectingTeamNames {
		a.printTeamNames(wf.TeamNames())
		line, err := getSimpleText(a.reader, "Edit teams ('<n> <name>', 'shuffle', 'done', 'cancel')", a.out)
		if err != nil {
			return err
		}

		switch {
		case line == "cancel":
			a.notify("creation cancelled")
			return nil

		case line == "shuffle":
			if err := wf.Shuffle(); err != nil {
				a.notifyError(err)
			}

		case line == "done":
			t, err := wf.Submit(ctx, a.cache)
			if err != nil {
				// Draft survives the failure; the loop re-prompts.
				a.notifyError(err)
				continue
			}
			a.notify("created " + t.Name)
			fmt.Fprintln(a.out, renderDashboard(a.styles, t))
			return nil

		default:
			idx, name, ok := parseRename(line)
			if !ok {
				a.notify("unknown input: " + line)
				continue
			}
			if err := wf.SetTeamName(idx-1, name); err != nil {
				a.notifyError(err)
			}
		}
	}

	return nil
}

func (a *App) printTeamNames(names []string) {
	fmt.Fprintln(a.out, a.styles.Header.Render("Teams"))
	for i, n := range names {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, n)
	}
}

// parseRename splits "<n> <name>" into a 1-based index and the new name.
func parseRename(line string) (int, string, bool) {
	n, rest, found := strings.Cut(line, " ")
	if !found {
		return 0, "", false
	}
	idx, err := strconv.Atoi(n)
	if err != nil {
		return 0, "", false
	}
	return idx, strings.TrimSpace(rest), true
}
