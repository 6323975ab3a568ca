package cli

import (
	"context"

	"github.com/dmitrijs2005/learninghub/internal/client/auth"
)

// route is one REPL command. run receives the arguments after the name;
// help and exit have no run func and are handled by the REPL itself.
type route struct {
	name    string
	args    string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

// authRoutes are available while signed out.
var authRoutes = []route{
	{name: "signin", summary: "sign in to your account", run: (*App).SignIn},
	{name: "signup", summary: "create a new account", run: (*App).SignUp},
	{name: "help", summary: "show available commands"},
	{name: "exit", summary: "leave the program"},
}

// mainRoutes are available while signed in.
var mainRoutes = []route{
	{name: "whoami", summary: "show the signed in user", run: (*App).WhoAmI},
	{name: "settings", summary: "show settings", run: (*App).ShowSettings},
	{name: "set", args: "<key> <value>", summary: "change a setting", run: (*App).Set},
	{name: "reset-settings", summary: "restore default settings", run: (*App).ResetSettings},
	{name: "notes", args: "[category]", summary: "list notes", run: (*App).ListNotes},
	{name: "addnote", summary: "add a note", run: (*App).AddNote},
	{name: "delnote", args: "<id>", summary: "delete a note", run: (*App).DeleteNote},
	{name: "signout", summary: "sign out", run: (*App).SignOut},
	{name: "help", summary: "show available commands"},
	{name: "exit", summary: "leave the program"},
}

// aliases map alternative spellings onto route names.
var aliases = map[string]string{
	"quit":   "exit",
	"login":  "signin",
	"logout": "signout",
	"?":      "help",
}

// routesFor returns the table matching the authentication state.
func routesFor(s auth.State) []route {
	if s.IsAuthenticated() {
		return mainRoutes
	}
	return authRoutes
}

func findRoute(table []route, name string) (route, bool) {
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	for _, r := range table {
		if r.name == name {
			return r, true
		}
	}
	return route{}, false
}
