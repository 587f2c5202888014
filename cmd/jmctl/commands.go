package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jackmarvels/platform/internal/app"
	"github.com/jackmarvels/platform/internal/pkg/jwt"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/spf13/pflag"
)

// errFailed is returned when the backend answered with a failure that has
// already been printed
var errFailed = errors.New("request failed")

type command struct {
	usage string
	run   func(ctx context.Context, c *app.Client, args []string, out io.Writer) error
}

var commands = map[string]command{
	"send-otp":  {usage: "send-otp <mobile> [--type login|register]", run: sendOTP},
	"verify":    {usage: "verify <mobile> <otp>", run: verify},
	"register":  {usage: "register --first-name .. --last-name .. --email .. --mobile .. --state .. --district .. --city .. --pincode ..", run: register},
	"dashboard": {usage: "dashboard", run: dashboard},
	"events":    {usage: "events [--category c] [--search s] [--id event_id --include guidelines,categories,related]", run: events},
	"logout":    {usage: "logout", run: logout},
	"state":     {usage: "state", run: state},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: jmctl [--config path] [--mobile m --otp o] <command> [args]")
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

// dispatch runs the named command
func dispatch(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return errors.New("missing command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.run(ctx, c, args[1:], out)
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// report prints resp and turns a failed response into errFailed
func report[T any](out io.Writer, resp models.APIResponse[T]) error {
	if err := printJSON(out, resp); err != nil {
		return err
	}
	if !resp.Success {
		return errFailed
	}
	return nil
}

func newFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func sendOTP(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	fs := newFlagSet("send-otp", out)
	otpType := fs.String("type", string(models.OTPTypeLogin), "otp purpose: login or register")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("send-otp needs exactly one mobile number")
	}
	return report(out, c.Auth.SendOTP(ctx, fs.Arg(0), models.OTPType(*otpType)))
}

func verify(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("verify needs a mobile number and an otp")
	}
	return report(out, c.Auth.VerifyOTP(ctx, args[0], args[1]))
}

func register(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	var req models.RegistrationRequest
	fs := newFlagSet("register", out)
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Mobile, "mobile", "", "10-digit mobile number")
	fs.StringVar(&req.State, "state", "", "state")
	fs.StringVar(&req.District, "district", "", "district")
	fs.StringVar(&req.City, "city", "", "city")
	fs.StringVar(&req.Pincode, "pincode", "", "6-digit pincode")
	fs.StringVar(&req.SchoolName, "school", "", "school name")
	fs.StringVar(&req.SchoolID, "school-id", "", "school id from the directory")
	fs.StringVar(&req.PromoCode, "promo", "", "promo code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return report(out, c.Auth.Register(ctx, req))
}

func dashboard(ctx context.Context, c *app.Client, _ []string, out io.Writer) error {
	return report(out, c.Content.GetDashboard(ctx))
}

func events(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	fs := newFlagSet("events", out)
	category := fs.String("category", "", "filter by category")
	search := fs.String("search", "", "search title and description")
	id := fs.String("id", "", "show a single event")
	include := fs.StringSlice("include", nil, "expansions for --id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id != "" {
		return report(out, c.Content.GetEventDetail(ctx, *id, *include))
	}
	return report(out, c.Content.GetEvents(ctx, models.EventFilter{Category: *category, Search: *search}))
}

func logout(ctx context.Context, c *app.Client, _ []string, out io.Writer) error {
	return report(out, c.Auth.Logout(ctx))
}

type stateView struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *models.User `json:"user,omitempty"`
	Theme           string       `json:"theme"`
	Language        string       `json:"language"`
	NetworkStatus   string       `json:"networkStatus"`
	HasTokens       bool         `json:"hasTokens"`
	AccessExpiresAt string       `json:"accessExpiresAt,omitempty"`
}

func state(ctx context.Context, c *app.Client, _ []string, out io.Writer) error {
	snapshot := c.State.Snapshot()
	view := stateView{
		IsAuthenticated: snapshot.IsAuthenticated,
		User:            snapshot.User,
		Theme:           snapshot.Theme,
		Language:        snapshot.Language,
		NetworkStatus:   string(snapshot.NetworkStatus),
	}

	tokens, err := c.Tokens.Tokens(ctx)
	if err != nil {
		return err
	}
	if tokens != nil && tokens.AccessToken != "" {
		view.HasTokens = true
		// the static development tokens are not JWTs
		if exp, err := jwt.UnverifiedExpiry(tokens.AccessToken); err == nil {
			view.AccessExpiresAt = exp.UTC().Format(time.RFC3339)
		}
	}
	return printJSON(out, view)
}
