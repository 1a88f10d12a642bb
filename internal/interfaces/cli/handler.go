package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fpl-cli/internal/domain/player"
	"github.com/riskibarqy/fpl-cli/internal/platform/logging"
	"github.com/riskibarqy/fpl-cli/internal/usecase"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errUsage = errors.New("usage error")

// Services groups the usecases behind the commands.
type Services struct {
	Season    *usecase.SeasonService
	Fixture   *usecase.FixtureService
	Player    *usecase.PlayerService
	Live      *usecase.LiveService
	Pick      *usecase.PickService
	DreamTeam *usecase.DreamTeamService
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(h *Handler, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "team", usage: "team", summary: "Show teams", run: (*Handler).runTeam},
	{name: "gameweek", usage: "gameweek", summary: "Show gameweeks", run: (*Handler).runGameweek},
	{name: "fixture", usage: "fixture", summary: "Show upcoming fixtures", run: (*Handler).runFixture},
	{
		name:    "player",
		usage:   "player [-s cost|selected-by|form|points] [-p GKP|DEF|MID|FWD] [-l limit] [-t team]",
		summary: "Show players",
		run:     (*Handler).runPlayer,
	},
	{name: "live", usage: "live <event> [-l limit]", summary: "Show live player stats for an event", run: (*Handler).runLive},
	{name: "pick", usage: "pick <manager_id> <event_id>", summary: "Show a manager's picks for an event", run: (*Handler).runPick},
	{name: "player-summary", usage: "player-summary <player_id>", summary: "Show player summary", run: (*Handler).runPlayerSummary},
	{name: "dream-team", usage: "dream-team <event_id>", summary: "Show dream team", run: (*Handler).runDreamTeam},
}

type Handler struct {
	services  Services
	logger    *logging.Logger
	validator *validator.Validate
	stdout    io.Writer
	stderr    io.Writer
}

func NewHandler(services Services, logger *logging.Logger, stdout, stderr io.Writer) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		services:  services,
		logger:    logger,
		validator: validator.New(),
		stdout:    stdout,
		stderr:    stderr,
	}
}

// Run executes one command and returns the process exit code. Tables are
// written only after every fetch of the command succeeded.
func (h *Handler) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		h.printUsage()
		return ExitUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		h.printUsage()
		return ExitOK
	}

	cmd, ok := lookupCommand(name)
	if !ok {
		fmt.Fprintf(h.stderr, "Error: unknown command %q\n", name)
		h.printUsage()
		return ExitUsage
	}

	ctx, span := startCommandSpan(ctx, cmd.name)
	defer span.End()

	logger := h.logger.With("command", cmd.name)
	started := time.Now()
	err := cmd.run(h, ctx, args[1:])
	switch {
	case err == nil:
		logger.DebugContext(ctx, "command finished", "duration_ms", time.Since(started).Milliseconds())
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage), errors.Is(err, usecase.ErrInvalidInput):
		span.RecordError(err)
		fmt.Fprintf(h.stderr, "Error: %v\n", err)
		fmt.Fprintf(h.stderr, "usage: fpl %s\n", cmd.usage)
		return ExitUsage
	default:
		span.RecordError(err)
		logger.WarnContext(ctx, "command failed", "error", err, "duration_ms", time.Since(started).Milliseconds())
		fmt.Fprintf(h.stderr, "Error: %v\n", err)
		return ExitError
	}
}

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func (h *Handler) printUsage() {
	fmt.Fprintln(h.stderr, "usage: fpl <command> [args]")
	fmt.Fprintln(h.stderr)
	fmt.Fprintln(h.stderr, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(h.stderr, "  %-16s %s\n", cmd.name, cmd.summary)
		fmt.Fprintf(h.stderr, "  %-16s   fpl %s\n", "", cmd.usage)
	}
	fmt.Fprintln(h.stderr, "  help             Show this message")
}

func (h *Handler) validateInput(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(h.stderr)
	return fs
}

// parseArgs parses flags anywhere on the command line and returns the
// positional arguments in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func expectPositional(args []string, names ...string) error {
	if len(args) < len(names) {
		return fmt.Errorf("%w: missing %s", errUsage, strings.Join(names[len(args):], ", "))
	}
	if len(args) > len(names) {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, args[len(names)])
	}
	return nil
}

func parseID(name, raw string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errUsage, name, raw)
	}
	return value, nil
}

func (h *Handler) runTeam(ctx context.Context, args []string) error {
	rest, err := parseArgs(h.newFlagSet("team"), args)
	if err != nil {
		return err
	}
	if err := expectPositional(rest); err != nil {
		return err
	}

	teams, err := h.services.Season.ListTeams(ctx)
	if err != nil {
		return err
	}
	return RenderTeams(h.stdout, teams)
}

func (h *Handler) runGameweek(ctx context.Context, args []string) error {
	rest, err := parseArgs(h.newFlagSet("gameweek"), args)
	if err != nil {
		return err
	}
	if err := expectPositional(rest); err != nil {
		return err
	}

	rows, err := h.services.Season.ListGameweeks(ctx)
	if err != nil {
		return err
	}
	return RenderGameweeks(h.stdout, rows)
}

func (h *Handler) runFixture(ctx context.Context, args []string) error {
	rest, err := parseArgs(h.newFlagSet("fixture"), args)
	if err != nil {
		return err
	}
	if err := expectPositional(rest); err != nil {
		return err
	}

	rows, err := h.services.Fixture.ListUpcoming(ctx)
	if err != nil {
		return err
	}
	return RenderFixtures(h.stdout, rows)
}

type playerInput struct {
	Sort     string `validate:"omitempty,oneof=cost selected-by form points"`
	Limit    int    `validate:"gt=0"`
	Position string
}

func (h *Handler) runPlayer(ctx context.Context, args []string) error {
	var (
		input    playerInput
		teamName string
	)
	fs := h.newFlagSet("player")
	fs.StringVar(&input.Sort, "sort", string(usecase.SortByPoints), "sort key: cost, selected-by, form, points")
	fs.StringVar(&input.Sort, "s", string(usecase.SortByPoints), "shorthand for -sort")
	fs.StringVar(&input.Position, "position", "", "position filter: GKP, DEF, MID, FWD")
	fs.StringVar(&input.Position, "p", "", "shorthand for -position")
	fs.IntVar(&input.Limit, "limit", usecase.DefaultLimit, "number of rows to show")
	fs.IntVar(&input.Limit, "l", usecase.DefaultLimit, "shorthand for -limit")
	fs.StringVar(&teamName, "team", "", "team name or short code substring")
	fs.StringVar(&teamName, "t", "", "shorthand for -team")

	rest, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectPositional(rest); err != nil {
		return err
	}
	input.Sort = strings.ToLower(strings.TrimSpace(input.Sort))
	if err := h.validateInput(ctx, input); err != nil {
		return err
	}

	query := usecase.PlayerQuery{
		Sort:  usecase.SortKey(input.Sort),
		Limit: input.Limit,
	}
	if input.Position != "" {
		position, err := player.ParsePosition(input.Position)
		if err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		query.Position = &position
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "team" || f.Name == "t" {
			query.TeamName = &teamName
		}
	})

	rows, err := h.services.Player.ListPlayers(ctx, query)
	if err != nil {
		return err
	}
	return RenderPlayers(h.stdout, rows)
}

type liveInput struct {
	EventID int64 `validate:"gt=0"`
	Limit   int   `validate:"gt=0"`
}

func (h *Handler) runLive(ctx context.Context, args []string) error {
	input := liveInput{}
	fs := h.newFlagSet("live")
	fs.IntVar(&input.Limit, "limit", usecase.DefaultLimit, "number of rows to show")
	fs.IntVar(&input.Limit, "l", usecase.DefaultLimit, "shorthand for -limit")

	rest, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectPositional(rest, "event"); err != nil {
		return err
	}
	if input.EventID, err = parseID("event", rest[0]); err != nil {
		return err
	}
	if err := h.validateInput(ctx, input); err != nil {
		return err
	}

	rows, err := h.services.Live.ListLive(ctx, input.EventID, input.Limit)
	if err != nil {
		return err
	}
	return RenderLive(h.stdout, h.services.Live.Catalog(), rows)
}

type pickInput struct {
	ManagerID int64 `validate:"gt=0"`
	EventID   int64 `validate:"gt=0"`
}

func (h *Handler) runPick(ctx context.Context, args []string) error {
	rest, err := parseArgs(h.newFlagSet("pick"), args)
	if err != nil {
		return err
	}
	if err := expectPositional(rest, "manager_id", "event_id"); err != nil {
		return err
	}

	input := pickInput{}
	if input.ManagerID, err = parseID("manager_id", rest[0]); err != nil {
		return err
	}
	if input.EventID, err = parseID("event_id", rest[1]); err != nil {
		return err
	}
	if err := h.validateInput(ctx, input); err != nil {
		return err
	}

	rows, err := h.services.Pick.ListPicks(ctx, input.ManagerID, input.EventID)
	if err != nil {
		return err
	}
	return RenderPicks(h.stdout, rows)
}

type idInput struct {
	ID int64 `validate:"gt=0"`
}

func (h *Handler) runPlayerSummary(ctx context.Context, args []string) error {
	id, err := h.singleID(ctx, "player-summary", "player_id", args)
	if err != nil {
		return err
	}

	rows, err := h.services.Player.Summary(ctx, id)
	if err != nil {
		return err
	}
	return RenderPlayerSummary(h.stdout, rows)
}

func (h *Handler) runDreamTeam(ctx context.Context, args []string) error {
	id, err := h.singleID(ctx, "dream-team", "event_id", args)
	if err != nil {
		return err
	}

	rows, err := h.services.DreamTeam.ListDreamTeam(ctx, id)
	if err != nil {
		return err
	}
	return RenderDreamTeam(h.stdout, rows)
}

func (h *Handler) singleID(ctx context.Context, command, name string, args []string) (int64, error) {
	rest, err := parseArgs(h.newFlagSet(command), args)
	if err != nil {
		return 0, err
	}
	if err := expectPositional(rest, name); err != nil {
		return 0, err
	}

	input := idInput{}
	if input.ID, err = parseID(name, rest[0]); err != nil {
		return 0, err
	}
	if err := h.validateInput(ctx, input); err != nil {
		return 0, err
	}
	return input.ID, nil
}
