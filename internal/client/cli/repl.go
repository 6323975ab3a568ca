package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/learninghub/internal/client/auth"
)

// runREPL reads one command per line and dispatches it through the route
// table of the current authentication state, so the available commands
// switch as soon as the user signs in or out.
//
// Operation errors are shown as a single "Error: <message>" line and the
// loop continues. It returns nil on "exit", on end of input and when ctx is
// cancelled between commands.
func runREPL(ctx context.Context, a *App) error {
	m := auth.FromContext(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		_, _ = fmt.Fprintf(a.out, "hub %s> ", a.status(ctx))
		line, readErr := a.reader.ReadString('\n')
		if readErr != nil && line == "" {
			if errors.Is(readErr, io.EOF) {
				a.println()
				return nil
			}
			return readErr
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		table := routesFor(m.State())
		r, ok := findRoute(table, parts[0])
		switch {
		case !ok:
			a.println("Unknown command:", parts[0])
		case r.name == "exit":
			a.println("Bye!")
			return nil
		case r.name == "help":
			a.printHelp(table)
		default:
			if err := r.run(a, ctx, parts[1:]); err != nil {
				a.println("Error:", err.Error())
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

func (a *App) printHelp(table []route) {
	a.println("Available commands:")
	for _, r := range table {
		name := r.name
		if r.args != "" {
			name += " " + r.args
		}
		a.printf("  %-22s %s\n", name, r.summary)
	}
}
