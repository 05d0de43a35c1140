// Package export writes the rendered site to a directory for static hosting.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/developerplugin/vocomate/internal/site"
)

const indexFile = "index.html"

// Write renders every route of s under outDir as <route>/index.html and
// returns the written file paths in route order. Existing files are replaced.
func Write(ctx context.Context, s *site.Site, outDir string, logger *zap.Logger) ([]string, error) {
	if s == nil {
		return nil, errors.New("export: site is required")
	}
	if strings.TrimSpace(outDir) == "" {
		return nil, errors.New("export: output directory is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	routes := s.Routes()
	written := make([]string, 0, len(routes))
	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		doc, ok := s.Lookup(route)
		if !ok {
			return written, fmt.Errorf("export: route %s vanished from site", route)
		}

		target := FilePath(outDir, route)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("export: create dir for %s: %w", route, err)
		}
		if err := os.WriteFile(target, doc.Body, 0o644); err != nil {
			return written, fmt.Errorf("export: write %s: %w", target, err)
		}
		logger.Debug("page exported", zap.String("route", route), zap.String("file", target), zap.Int("bytes", len(doc.Body)))
		written = append(written, target)
	}

	logger.Info("site exported", zap.String("out", outDir), zap.Int("pages", len(written)))
	return written, nil
}

// FilePath maps a route to its index.html location under outDir.
func FilePath(outDir, route string) string {
	rel := strings.Trim(route, "/")
	if rel == "" {
		return filepath.Join(outDir, indexFile)
	}
	return filepath.Join(outDir, filepath.FromSlash(rel), indexFile)
}
