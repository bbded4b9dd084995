package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"acstools/internal/config"
	"acstools/internal/dburl"
	"acstools/internal/grant"

	"github.com/charmbracelet/lipgloss"
)

var (
	grantedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	existsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
)

// opener connects to the database described by info.
type opener func(info dburl.Info) (*sql.DB, error)

func openDatabase(info dburl.Info) (*sql.DB, error) {
	return grant.Open(info)
}

// run parses the connection string, connects and performs the grant,
// reporting the outcome on out. The connection string is validated before
// any connection is attempted.
func run(ctx context.Context, cfg *config.Config, email, role string, open opener, out io.Writer) error {
	email = strings.ToLower(email)

	info, err := dburl.Parse(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", config.DatabaseURLEnv, err)
	}
	slog.Debug("connecting", "database", info.String())

	db, err := open(info)
	if err != nil {
		return err
	}
	defer db.Close()

	outcome, err := grant.New(db).Grant(ctx, email, role)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, message(outcome, email, role))
	return nil
}

func message(outcome grant.Outcome, email, role string) string {
	if outcome == grant.Created {
		return grantedStyle.Render(fmt.Sprintf("✅ Granted %s to %s", role, email))
	}
	return existsStyle.Render(fmt.Sprintf("ℹ️  Mapping already exists: %s ↔ %s", email, role))
}
