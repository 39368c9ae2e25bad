package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if user := a.session.User(); user != nil {
		s := user.Username
		if t := a.cache.Current(); t != nil {
			s += " / " + t.Name
		}
		return fmt.Sprintf("(%s) ", s)
	}
	return ""
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, a.styles.Title.Render("champs CLI")+" (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
