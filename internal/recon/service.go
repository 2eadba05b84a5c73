package recon

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/danmuck/modrecon/internal/manifest"
	"github.com/danmuck/modrecon/internal/scan"
)

// Reconciliation run settings.
type Config struct {
	RootPath      string
	ManifestPath  string
	Extension     string
	FilesReport   string
	ModulesReport string
	Verbose       bool
	SampleSize    int
}

// Reconciliation defaults: report names and sample size match the
// historical fixed outputs.
func DefaultConfig() Config {
	return Config{
		Extension:     scan.DefaultExtension,
		FilesReport:   "ext_eb_repo.txt",
		ModulesReport: "ext_modules.txt",
		SampleSize:    5,
	}
}

// Service runs one reconciliation pipeline: read manifest, scan files,
// diff, write listings, report.
type Service struct {
	cfg Config
	fs  afero.Fs
	out io.Writer
}

// NewService builds a service over the OS filesystem reporting to stdout.
func NewService(cfg Config) *Service {
	return NewServiceWith(cfg, nil, nil)
}

// NewServiceWith builds a service with an explicit scan filesystem and
// summary writer. Nil arguments select the OS filesystem and stdout.
func NewServiceWith(cfg Config, fsys afero.Fs, out io.Writer) *Service {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if out == nil {
		out = os.Stdout
	}
	if cfg.Extension == "" {
		cfg.Extension = scan.DefaultExtension
	}
	if cfg.FilesReport == "" {
		cfg.FilesReport = DefaultConfig().FilesReport
	}
	if cfg.ModulesReport == "" {
		cfg.ModulesReport = DefaultConfig().ModulesReport
	}
	return &Service{cfg: cfg, fs: fsys, out: out}
}

// Validate rejects configurations that cannot produce a run.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.RootPath) == "" {
		return fmt.Errorf("recon config missing root path")
	}
	if strings.TrimSpace(cfg.ManifestPath) == "" {
		return fmt.Errorf("recon config missing manifest path")
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		return fmt.Errorf("extension must start with a dot: %q", cfg.Extension)
	}
	if cfg.FilesReport == cfg.ModulesReport {
		return fmt.Errorf("report paths must differ: %q", cfg.FilesReport)
	}
	if cfg.SampleSize < 0 {
		return fmt.Errorf("sample size must not be negative: %d", cfg.SampleSize)
	}
	return nil
}

// Run executes the pipeline once. A manifest read failure is returned to
// the caller; an absent scan root yields empty results by contract.
func (s *Service) Run() error {
	if err := Validate(s.cfg); err != nil {
		return err
	}

	modules, err := manifest.Read(s.cfg.ManifestPath)
	if err != nil {
		return err
	}

	files, err := scan.New(s.fs, s.cfg.Extension).Find(s.cfg.RootPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn().Str("root", s.cfg.RootPath).Msg("no package files found; verify the root path")
	}

	res := Diff(files, modules)

	if err := writeListing(s.cfg.FilesReport, res.FilesOnly); err != nil {
		return err
	}
	if err := writeListing(s.cfg.ModulesReport, res.ManifestOnly); err != nil {
		return err
	}

	s.printSummary(res)
	return nil
}

// writeListing overwrites path with one identifier per line.
func writeListing(path string, ids []string) error {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("listing write failed (%s): %w", path, err)
	}
	return nil
}

func (s *Service) printSummary(res Result) {
	fmt.Fprintf(s.out, "Results written to %s and %s\n", s.cfg.FilesReport, s.cfg.ModulesReport)
	fmt.Fprintf(s.out, "Found %d %s files and %d modules\n", res.FileCount, s.cfg.Extension, res.ManifestCount)
	fmt.Fprintf(s.out, "%d %s files without modules\n", len(res.FilesOnly), s.cfg.Extension)
	fmt.Fprintf(s.out, "%d modules without %s files\n", len(res.ManifestOnly), s.cfg.Extension)

	if !s.cfg.Verbose {
		return
	}
	s.printSamples(fmt.Sprintf("Sample %s files without modules", s.cfg.Extension), res.FilesOnly)
	s.printSamples(fmt.Sprintf("Sample modules without %s files", s.cfg.Extension), res.ManifestOnly)
}

// printSamples shows up to SampleSize sorted entries and the omitted count.
func (s *Service) printSamples(label string, ids []string) {
	fmt.Fprintf(s.out, "%s:\n", label)
	if len(ids) == 0 {
		fmt.Fprintln(s.out, "  None")
		return
	}
	n := s.cfg.SampleSize
	if n > len(ids) {
		n = len(ids)
	}
	for _, id := range ids[:n] {
		fmt.Fprintf(s.out, "  %s\n", id)
	}
	if rest := len(ids) - n; rest > 0 {
		fmt.Fprintf(s.out, "  ... (%d more)\n", rest)
	}
}
