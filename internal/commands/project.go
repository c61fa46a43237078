package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/categorize"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/config"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/gitops"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/logging"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/statement"
	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/store"
)

// project bundles the services of one initialized project directory.
type project struct {
	root string
	cfg  *config.Config
	log  zerolog.Logger
}

func openProject(dir string, verbose bool) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not an AusgabeAnalyst project (run init first): %w", err)
	}
	return &project{root: root, cfg: cfg, log: logging.New(verbose)}, nil
}

func (p *project) store() *store.Service {
	return store.NewService(filepath.Join(p.root, p.cfg.Data.Dir))
}

func (p *project) categoriesPath() string {
	return filepath.Join(p.root, p.cfg.Data.CategoriesFile)
}

func (p *project) categorizer() (*categorize.Categorizer, error) {
	cfg, err := categorize.LoadConfig(p.categoriesPath())
	if err != nil {
		return nil, err
	}
	return categorize.New(cfg), nil
}

func (p *project) parser() (statement.Parser, error) {
	parser := statement.DefaultRegistry().Get(p.cfg.Statement.Format)
	if parser == nil {
		return nil, fmt.Errorf("unknown statement format %q", p.cfg.Statement.Format)
	}
	if vb, ok := parser.(*statement.VolksbankParser); ok {
		vb.FallbackYear = p.cfg.Statement.FallbackYear
	}
	return parser, nil
}

// commit records the current project state when auto-commit is enabled.
// Returns the short hash, or "" when auto-commit is off.
func (p *project) commit(message string) (string, error) {
	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return "", nil
	}
	hash, err := gitops.CommitAll(p.root, message, p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail)
	if err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return hash, nil
}
