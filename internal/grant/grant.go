// Package grant associates a role with a user in the application database.
package grant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"acstools/internal/dburl"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

// Tables follow the Prisma schema of the web app, hence the quoted names.
const (
	selectUserSQL = `SELECT "id" FROM "User" WHERE "email" = $1`
	selectRoleSQL = `SELECT "id" FROM "Role" WHERE "name" = $1`
	insertSQL     = `INSERT INTO "UserRole" ("userId", "roleId") VALUES ($1, $2) ON CONFLICT ("userId", "roleId") DO NOTHING`
)

// Outcome tells a fresh grant apart from one that was already present.
type Outcome int

const (
	Created Outcome = iota + 1
	AlreadyExisted
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case AlreadyExisted:
		return "already exists"
	}
	return "unknown"
}

// Open connects to PostgreSQL through lib/pq. No round trip is made until
// the first statement.
func Open(info dburl.Info) (*sql.DB, error) {
	connector, err := pq.NewConnector(info.DSN())
	if err != nil {
		return nil, fmt.Errorf("configure connection to %s: %w", info, err)
	}
	return sql.OpenDB(connector), nil
}

// Granter performs role grants against one database.
type Granter struct {
	db *sql.DB
}

func New(db *sql.DB) *Granter {
	return &Granter{db: db}
}

// Grant links the user with the given email to the named role.
// Both lookups and the insert share one transaction; nothing is written
// unless all of them succeed. The email is matched lower-cased, the role
// name exactly. A pair that already exists, including one inserted
// concurrently, yields AlreadyExisted.
func (g *Granter) Grant(ctx context.Context, email, role string) (Outcome, error) {
	email = strings.ToLower(email)

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	userID, err := selectID(ctx, tx, selectUserSQL, email)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w for email: %s. Make sure they have signed in once", ErrUserNotFound, email)
	}
	if err != nil {
		return 0, fmt.Errorf("look up user %s: %w", email, err)
	}

	roleID, err := selectID(ctx, tx, selectRoleSQL, role)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrRoleNotFound, role)
	}
	if err != nil {
		return 0, fmt.Errorf("look up role %s: %w", role, err)
	}
	slog.Debug("resolved grant", "userId", userID, "roleId", roleID)

	res, err := tx.ExecContext(ctx, insertSQL, userID, roleID)
	if err != nil {
		return 0, fmt.Errorf("insert user role: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("insert user role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	if inserted > 0 {
		return Created, nil
	}
	return AlreadyExisted, nil
}

func selectID(ctx context.Context, tx *sql.Tx, query, arg string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, query, arg).Scan(&id)
	return id, err
}
