package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var errUnknownCommand = errors.New("unknown command")

const usage = `usage: client <command> [flags]

commands:
  register -username U -password P -email E
  login    -username U -password P
  protected [-token T]
  me        [-token T]
  health
  version
`

// run executes one client command. Results go to out; guarded commands use
// the -token flag or, without it, the token already stored in a.
func run(ctx context.Context, args []string, a adapter.ServerAdapter, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errUnknownCommand
	}

	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(out)

	switch cmd {
	case "register":
		var req models.CreateUserRequest
		fs.StringVar(&req.Username, "username", "", "account name")
		fs.StringVar(&req.Password, "password", "", "account password")
		fs.StringVar(&req.Email, "email", "", "contact e-mail")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		user, err := a.Register(ctx, req)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		return printJSON(out, user)

	case "login":
		var creds models.Credentials
		fs.StringVar(&creds.Username, "username", "", "account name")
		fs.StringVar(&creds.Password, "password", "", "account password")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		resp, err := a.Login(ctx, creds)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		return printJSON(out, resp)

	case "protected", "me":
		token := fs.String("token", "", "bearer token from login")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *token != "" {
			a.SetToken(*token)
		}

		if cmd == "protected" {
			text, err := a.Protected(ctx)
			if err != nil {
				return fmt.Errorf("protected: %w", err)
			}
			_, err = fmt.Fprintln(out, text)
			return err
		}

		user, err := a.Me(ctx)
		if err != nil {
			return fmt.Errorf("me: %w", err)
		}
		return printJSON(out, user)

	case "health":
		if err := a.Health(ctx); err != nil {
			return fmt.Errorf("health: %w", err)
		}
		_, err := fmt.Fprintln(out, models.HealthStatusOK)
		return err

	case "version":
		printBuildInfo(out)
		return nil

	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
