package application

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MigrationManager applies the schema files modules embed and register at
// load time. Schemas are written to be idempotent (CREATE ... IF NOT EXISTS)
// so Apply can run on every startup.
type MigrationManager interface {
	RegisterSchema(fsys *embed.FS)
	Apply(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []*embed.FS
}

func (m *migrationManager) RegisterSchema(fsys *embed.FS) {
	m.schemas = append(m.schemas, fsys)
}

func (m *migrationManager) Apply(ctx context.Context) error {
	for _, fsys := range m.schemas {
		files, err := sqlFiles(fsys)
		if err != nil {
			return err
		}
		for _, file := range files {
			contents, err := fsys.ReadFile(file)
			if err != nil {
				return err
			}
			if _, err := m.pool.Exec(ctx, string(contents)); err != nil {
				return err
			}
		}
	}
	return nil
}

func sqlFiles(fsys *embed.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
