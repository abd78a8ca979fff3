package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"career-compass/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// AccountsSeeder provisions the bootstrap accounts: one admin, one reviewer
// and one demo user. Passwords come from the environment with development
// fallbacks; existing emails are left untouched.
type AccountsSeeder struct{}

func (AccountsSeeder) Name() string { return "accounts" }

type accountRow struct {
	Name         string
	Email        string
	PasswordEnv  string
	Fallback     string
	Role         string
	CurrentLevel string
	TargetLevel  string
}

func defaultAccounts() []accountRow {
	return []accountRow{
		{"Administrator", "admin@career-compass.local", "SEED_ADMIN_PASSWORD", "admin-dev-password", "admin", "FC-06", "FC-06"},
		{"HR Reviewer", "rh@career-compass.local", "SEED_RH_PASSWORD", "rh-dev-password", "rh", "FC-05", "FC-05"},
		{"Demo User", "demo@career-compass.local", "SEED_DEMO_PASSWORD", "demo-dev-password", "user", "FC-03", "FC-04"},
	}
}

func (AccountsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "name", "email", "password_hash", "role", "current_level", "target_level"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, acc := range defaultAccounts() {
		password := strings.TrimSpace(os.Getenv(acc.PasswordEnv))
		if password == "" {
			password = acc.Fallback
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", acc.Email, err)
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO users (id, name, email, password_hash, role, current_level, target_level)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
			 ON CONFLICT (email) DO NOTHING`,
			acc.Name, acc.Email, string(hash), acc.Role, acc.CurrentLevel, acc.TargetLevel,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
