package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beatfluencer/beatfluencer-api/internal/adapter"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	api adapter.APIAdapter
	out io.Writer

	commands map[string]command

	logger *logger.Logger
}

// NewApp builds the client over api. Command output goes to out.
func NewApp(api adapter.APIAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"login":       {"login <email> <password>", a.login},
		"me":          {"me", a.me},
		"influencers": {"influencers [-status s] [-category c]", a.listInfluencers},
		"influencer":  {"influencer <id>", a.getInfluencer},
		"search":      {"search [-q text] [-platform p] [-min-followers n] [-max-followers n] [-category c] [-gender g] [-min-age n] [-max-age n] [-division d]", a.search},
		"check-url":   {"check-url <url>", a.checkURL},
		"brands":      {"brands", a.brands},
		"campaigns":   {"campaigns", a.campaigns},
		"version":     {"version", a.version},
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: beatfluencer <command>\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	_, _ = io.WriteString(a.out, b.String())
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <email> <password>", ErrMissingArgs)
	}

	resp, err := a.api.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) listInfluencers(ctx context.Context, args []string) error {
	var query models.InfluencerListQuery

	fs := newFlagSet("influencers")
	fs.StringVar(&query.Status, "status", "", "influencer status")
	fs.StringVar(&query.Category, "category", "", "category")
	fs.StringVar(&query.Platform, "platform", "", "platform")
	if err := fs.Parse(args); err != nil {
		return err
	}

	infs, err := a.api.ListInfluencers(ctx, query)
	if err != nil {
		return err
	}
	return a.print(infs)
}

func (a *App) getInfluencer(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: influencer <id>", ErrMissingArgs)
	}

	inf, err := a.api.GetInfluencer(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(inf)
}

func (a *App) search(ctx context.Context, args []string) error {
	var query models.InfluencerSearchQuery

	fs := newFlagSet("search")
	fs.StringVar(&query.Q, "q", "", "free text")
	fs.StringVar(&query.Platform, "platform", "", "social platform")
	fs.Int64Var(&query.MinFollowers, "min-followers", 0, "minimum followers")
	fs.Int64Var(&query.MaxFollowers, "max-followers", 0, "maximum followers")
	fs.StringVar(&query.Category, "category", "", "category")
	fs.StringVar(&query.Gender, "gender", "", "gender")
	fs.IntVar(&query.MinAge, "min-age", 0, "minimum age")
	fs.IntVar(&query.MaxAge, "max-age", 0, "maximum age")
	fs.StringVar(&query.Division, "division", "", "division")
	if err := fs.Parse(args); err != nil {
		return err
	}

	infs, err := a.api.SearchInfluencers(ctx, query)
	if err != nil {
		return err
	}
	return a.print(infs)
}

func (a *App) checkURL(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: check-url <url>", ErrMissingArgs)
	}

	exists, err := a.api.CheckSocialURL(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(models.URLCheckResponse{Exists: exists})
}

func (a *App) brands(ctx context.Context, _ []string) error {
	brands, err := a.api.ListBrands(ctx)
	if err != nil {
		return err
	}
	return a.print(brands)
}

func (a *App) campaigns(ctx context.Context, _ []string) error {
	campaigns, err := a.api.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	return a.print(campaigns)
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
