package files

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gradecli/internal/config"
	"gradecli/internal/errors"
	"gradecli/internal/gradebook"
)

// LoadSources loads and normalizes every configured gradebook export
// concurrently, preserving configuration order in the result. Order matters:
// the first gradebook fixes the roster.
func LoadSources(ctx context.Context, sources []config.SourceConfig, info config.InfoColumns, paths config.Paths, diags *errors.Diagnostics) ([]*gradebook.Table, error) {
	tables := make([]*gradebook.Table, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := src.Path
			if !filepath.IsAbs(path) {
				path = paths.GetGradebookPath(path)
			}

			raw, err := LoadFile(path)
			if err != nil {
				return fmt.Errorf("gradebook %d: %w", i, err)
			}

			table, err := gradebook.Normalize(raw, gradebook.Options{
				FileType:      src.FileType,
				Columns:       src.Columns,
				InfoColumns:   info,
				LastNameFirst: src.LastNameFirst,
				NameSeparator: src.NameSeparator,
				MissingValues: src.MissingValues,
			}, diags)
			if err != nil {
				return fmt.Errorf("gradebook %d (%s): %w", i, src.Path, err)
			}

			slog.InfoContext(ctx, "Normalized gradebook",
				slog.Int("index", i),
				slog.String("path", src.Path),
				slog.Int("students", table.NumRows()))
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
