package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/config"
	"github.com/dmitrijs2005/farmchainx/internal/client/nav"
	"github.com/dmitrijs2005/farmchainx/internal/client/session"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

var errSessionLoading = errors.New("session is still loading")

type App struct {
	api         client.API
	store       *session.Store
	log         logging.Logger
	strictEmail bool
	now         func() time.Time

	reader *bufio.Reader
	out    io.Writer

	commands map[string]command
	closers  []func() error

	// assistant outlives single commands so its history spans the session.
	assistant *views.CropAssistant
}

// command is one REPL verb. A nil route means the command is public.
type command struct {
	usage string
	route *nav.Route
	run   func(ctx context.Context, args []string) error
}

// NewApp opens the local state database, connects the API client and
// restores the persisted session.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.StateFile, log)
	if err != nil {
		return nil, fmt.Errorf("init state database: %w", err)
	}

	api, err := client.NewHTTPClient(client.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(api, session.NewSQLitePersister(db), log)
	store.Init(ctx)

	a := newApp(api, store, log, os.Stdin, os.Stdout)
	a.strictEmail = cfg.StrictEmail
	a.closers = append(a.closers, api.Close, db.Close)
	return a, nil
}

func newApp(api client.API, store *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		api:    api,
		store:  store,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
	a.assistant = views.NewCropAssistant(api, log)
	a.assistant.Mount()
	a.commands = a.commandTable()
	return a
}

// Run blocks in the REPL until the user exits, then releases resources.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	fmt.Fprintln(a.out, titleStyle.Render("FarmChainX")+" (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}

func (a *App) Close() error {
	a.assistant.Unmount()
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) status() string {
	s := a.store.Current()
	if s == nil {
		return ""
	}
	who := s.Name
	if who == "" {
		who = s.Email
	}
	return fmt.Sprintf(" (%s %s)", who, s.Role)
}

// help lists the commands the current session may run.
func (a *App) help() string {
	state := a.store.State()
	var lines []string
	for _, c := range a.commands {
		if c.route != nil && nav.Decide(state, *c.route).Kind != nav.Render {
			continue
		}
		lines = append(lines, "  "+c.usage)
	}
	slices.Sort(lines)
	return "Available commands:\n" + strings.Join(lines, "\n") + "\n  help\n  exit"
}

func (a *App) exec(ctx context.Context, name string, args []string) error {
	c, ok := a.commands[name]
	if !ok {
		return errUnknownCommand
	}
	ctx = logging.ContextWith(ctx, "command", name)
	if c.route != nil {
		if err := a.gate(*c.route); err != nil {
			return err
		}
	}
	return c.run(ctx, args)
}

// gate turns a guard decision into an error the REPL can print.
func (a *App) gate(route nav.Route) error {
	d := nav.Decide(a.store.State(), route)
	switch d.Kind {
	case nav.Render:
		return nil
	case nav.Loading:
		return errSessionLoading
	}
	if d.Target == common.PathHome {
		return fmt.Errorf("%s: %w", route.Name, common.ErrForbidden)
	}
	return fmt.Errorf("%w: go to %s (%s)", common.ErrNotLoggedIn, d.Target, loginCommand(d.Target))
}

func loginCommand(target string) string {
	if target == common.PathAdminLogin {
		return "use 'admin-login'"
	}
	return "use 'login'"
}

// describe prefers the backend's own message over the wrapped error chain.
func describe(err error) string {
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	return err.Error()
}

func usageError(usage string) error {
	return fmt.Errorf("%w: usage: %s", common.ErrorValidation, usage)
}

func parseAmount(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", common.ErrorValidation, what)
	}
	return v, nil
}

// prompt reads one line, using the first remaining arg instead when present.
func (a *App) prompt(args []string, i int, text string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, text, a.out)
}
