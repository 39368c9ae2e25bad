package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/champsapp/champs-cli/internal/client/models"
)

// List prints the user's tournaments with the current one highlighted.
func (a *App) List(ctx context.Context) error {
	list := a.cache.ListMine(ctx)
	currentID := ""
	if t := a.cache.Current(); t != nil {
		currentID = t.ID
	}
	fmt.Fprintln(a.out, renderTournamentList(a.styles, list, currentID))
	return nil
}

// Show renders a tournament dashboard.
//
//	show        — the current tournament
//	show <n>    — the n-th entry from 'list', which also becomes current
//	show <id>   — a tournament by id, which also becomes current
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		t := a.cache.Current()
		if t == nil {
			a.notify("no tournament selected, try 'list' or 'show <n>'")
			return nil
		}
		fmt.Fprintln(a.out, renderDashboard(a.styles, t))
		return nil
	}

	id := args[0]
	if n, err := strconv.Atoi(id); err == nil {
		list := a.cache.ListMine(ctx)
		if n < 1 || n > len(list) {
			err := fmt.Errorf("no tournament #%d, 'list' shows %d", n, len(list))
			a.notifyError(err)
			return err
		}
		id = list[n-1].ID
	}

	t, err := a.cache.Load(ctx, id)
	if err != nil {
		a.notifyError(err)
		return err
	}
	fmt.Fprintln(a.out, renderDashboard(a.styles, t))
	return nil
}

// Match reports a group-stage match result for the current tournament.
func (a *App) Match(ctx context.Context) error {
	return a.reportResult(ctx, a.cache.SaveMatchResult)
}

// Playoff reports a playoff match result for the current tournament.
func (a *App) Playoff(ctx context.Context) error {
	return a.reportResult(ctx, a.cache.SavePlayoffResult)
}

func (a *App) reportResult(ctx context.Context, save func(context.Context, *models.MatchResult) (*models.Tournament, error)) error {
	result, err := a.promptResult()
	if err != nil {
		return err
	}
	t, err := save(ctx, result)
	if err != nil {
		a.notifyError(err)
		return err
	}
	a.notify("result saved")
	fmt.Fprintln(a.out, renderDashboard(a.styles, t))
	return nil
}

func (a *App) promptResult() (*models.MatchResult, error) {
	matchID, err := getSimpleText(a.reader, "Match id", a.out)
	if err != nil {
		return nil, err
	}
	home, err := a.promptScore("Home score")
	if err != nil {
		return nil, err
	}
	away, err := a.promptScore("Away score")
	if err != nil {
		return nil, err
	}
	return &models.MatchResult{MatchID: matchID, HomeScore: home, AwayScore: away}, nil
}

func (a *App) promptScore(prompt string) (int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		err = fmt.Errorf("score must be a non-negative number, got %q", s)
		a.notifyError(err)
		return 0, err
	}
	return n, nil
}

// Refresh re-fetches the current tournament from the server.
func (a *App) Refresh(ctx context.Context) error {
	t, err := a.cache.Refresh(ctx)
	if err != nil {
		a.notifyError(err)
		return err
	}
	if t == nil {
		a.notify("no tournament selected")
		return nil
	}
	fmt.Fprintln(a.out, renderDashboard(a.styles, t))
	return nil
}
