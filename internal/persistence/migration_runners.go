package persistence

import (
	"context"

	"feedgraph/internal/core"
)

// MigrationUpRunner applies all pending migrations and exits.
type MigrationUpRunner struct {
	Migrator core.Migrator
}

func (m *MigrationUpRunner) Run(ctx context.Context) error {
	return m.Migrator.Up(ctx)
}

// MigrationDownRunner rolls back the latest migration and exits.
type MigrationDownRunner struct {
	Migrator core.Migrator
}

func (m *MigrationDownRunner) Run(ctx context.Context) error {
	return m.Migrator.Down(ctx)
}
