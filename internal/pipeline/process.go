package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"icptargets/internal"
	"icptargets/internal/config"
)

type ProcessingService struct {
	cfg config.Config
	log zerolog.Logger
}

func NewProcessingService(cfg config.Config, log zerolog.Logger) *ProcessingService {
	return &ProcessingService{cfg: cfg, log: log}
}

type FileResult struct {
	File         string
	Organization string
	Sheet        string
	Record       *internal.OrganizationRecord
	Hosts        internal.HostStats
	Err          *FileError
}

type RunSummary struct {
	Found      int
	Processed  int
	Skipped    map[internal.SkipReason]int
	Records    []internal.OrganizationRecord
	OutputPath string
}

// ListInputFiles returns the *.xlsx files of the targets directory in name order.
// Hidden files are ignored. Only a missing directory is an error.
func (s *ProcessingService) ListInputFiles() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.TargetsDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTargetsDirMissing, s.cfg.TargetsDir)
	}
	if err != nil {
		// A targets path that exists but cannot be listed holds no usable input.
		s.log.Warn().Str("dir", s.cfg.TargetsDir).Err(err).Msg("cannot list targets directory")
		return nil, nil
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".xlsx") {
			continue
		}
		out = append(out, filepath.Join(s.cfg.TargetsDir, name))
	}
	return out, nil
}

// ProcessFile never fails: problems are reported through FileResult.Err.
func (s *ProcessingService) ProcessFile(path string) FileResult {
	name := filepath.Base(path)
	res := FileResult{File: name}
	s.log.Info().Str("file", name).Msg("processing file")

	org, ok := ParseOrganizationName(name)
	if !ok {
		res.Err = newFileError(name, ErrNameMismatch)
		s.log.Warn().Str("file", name).Msg("cannot parse organization name from filename")
		return res
	}
	res.Organization = org

	col, values, err := ExtractFile(path, s.cfg.SheetKeyword, s.cfg.ColumnKeyword)
	res.Sheet = col.Sheet
	if err != nil {
		res.Err = newFileError(name, err)
		s.log.Warn().Str("file", name).Str("reason", string(res.Err.Reason)).Err(err).Msg("skipping file")
		return res
	}
	if len(values) == 0 {
		res.Err = newFileError(name, ErrNoValues)
		s.log.Info().Str("organization", org).Msg("no domains or IPs extracted")
		return res
	}

	var other []string
	res.Hosts, other = CountHosts(values)
	for _, v := range other {
		s.log.Debug().Str("organization", org).Str("value", v).Msg("value is not a domain, IP or CIDR")
	}
	res.Record = &internal.OrganizationRecord{Organization: org, DomainsIPs: values}

	s.log.Info().
		Str("organization", org).
		Str("sheet", col.Sheet).
		Int("count", len(values)).
		Int("domains", res.Hosts[internal.HostDomain]).
		Int("ips", res.Hosts[internal.HostIP]).
		Int("cidrs", res.Hosts[internal.HostCIDR]).
		Int("other", res.Hosts[internal.HostOther]).
		Msg("extracted domains/IPs")
	return res
}

// Run processes every input file and writes the report. It returns
// ErrTargetsDirMissing or ErrNoInputFiles when there is nothing to do, and any
// other error only when the report cannot be written.
func (s *ProcessingService) Run() (RunSummary, error) {
	summary := RunSummary{Skipped: map[internal.SkipReason]int{}}

	files, err := s.ListInputFiles()
	if err != nil {
		return summary, err
	}
	if err := os.MkdirAll(s.cfg.ResultsDir, 0o755); err != nil {
		return summary, err
	}
	if len(files) == 0 {
		return summary, fmt.Errorf("%w: %s", ErrNoInputFiles, s.cfg.TargetsDir)
	}
	summary.Found = len(files)

	for _, path := range files {
		res := s.ProcessFile(path)
		if res.Err != nil {
			summary.Skipped[res.Err.Reason]++
			continue
		}
		summary.Processed++
		summary.Records = append(summary.Records, *res.Record)
	}

	if len(summary.Records) == 0 {
		s.log.Warn().Int("files", summary.Found).Msg("no data extracted")
		return summary, nil
	}

	outputPath, err := ExportReport(summary.Records, s.cfg.ResultsDir, s.cfg.Clock())
	if err != nil {
		return summary, fmt.Errorf("export report: %w", err)
	}
	summary.OutputPath = outputPath
	return summary, nil
}
