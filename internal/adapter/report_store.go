package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	m "almanac.dev/pkg/almanac/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	reportFilePrefix = "report-"
	reportFileExt    = ".yaml"
)

// ReportStore persists solve reports.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.Report) (m.Path, error)
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
}

type yamlReportStore struct {
	fs FSAdapter
}

// NewReportStore creates a ReportStore that writes one YAML file per report.
func NewReportStore(fs FSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

// SaveReport writes report into dir as report-<id>.yaml and returns the file path.
func (s *yamlReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) (m.Path, error) {
	if report.ID == "" {
		return "", fmt.Errorf("report has no id")
	}

	if err := s.fs.MkdirAll(ctx, dir); err != nil {
		slog.Error("Failed to create reports directory", "dir", dir, "error", err)
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	content, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := s.fs.JoinPath(ctx, string(dir), reportFilePrefix+report.ID+reportFileExt)
	if err := s.fs.WriteFile(ctx, path, content, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Debug("Saved report", "path", path, "id", report.ID)

	return path, nil
}

// LoadReports reads every report in dir, oldest first. A missing directory
// yields no reports.
func (s *yamlReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	pattern := string(s.fs.JoinPath(ctx, string(dir), reportFilePrefix+"*"+reportFileExt))

	paths, err := s.fs.Glob(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]m.Report, 0, len(paths))

	for _, path := range paths {
		content, err := s.fs.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(content, &report); err != nil {
			slog.Error("Failed to decode report", "path", path, "error", err)
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}
