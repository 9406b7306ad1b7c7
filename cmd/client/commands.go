package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-api/internal/adapter"
	"github.com/MKhiriev/go-auth-api/models"
)

const usage = `usage: go-auth-client [-a host:port] [-t token] [-timeout 5s] <command>

commands:
  register <name> <email> <password> [password_confirmation]
  login <email> <password>
  me
  logout
  version`

var (
	errUsage          = errors.New(usage)
	errUnknownCommand = errors.New("unknown command")
)

// run executes one client command against api and prints the result to out.
func run(ctx context.Context, api adapter.AuthAPI, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, operands := args[0], args[1:]

	switch command {
	case "register":
		if len(operands) < 3 || len(operands) > 4 {
			return errUsage
		}
		req := models.RegisterRequest{
			Name:                 operands[0],
			Email:                operands[1],
			Password:             operands[2],
			PasswordConfirmation: operands[2],
		}
		if len(operands) == 4 {
			req.PasswordConfirmation = operands[3]
		}

		data, err := api.Register(ctx, req)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		return printJSON(out, data)

	case "login":
		if len(operands) != 2 {
			return errUsage
		}

		token, err := api.Login(ctx, models.LoginRequest{Email: operands[0], Password: operands[1]})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		_, err = fmt.Fprintln(out, token)
		return err

	case "me":
		user, err := api.Me(ctx)
		if err != nil {
			return fmt.Errorf("me: %w", err)
		}
		return printJSON(out, user)

	case "logout":
		if err := api.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		_, err := fmt.Fprintln(out, "Token removed")
		return err

	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		_, err = fmt.Fprintln(out, version)
		return err

	default:
		return fmt.Errorf("%w %q\n%s", errUnknownCommand, command, usage)
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
