package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/application/handlers"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/domain/services"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/config"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/explainer/openai"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/fetch"
	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/store/sqlite"
)

// Deps holds the shared dependencies wired for a single command invocation.
type Deps struct {
	Config    *config.Config
	State     *config.State
	BasePath  string
	Store     *sqlite.Repository
	Manager   *fetch.Manager
	Loader    *handlers.LoadHandler
	Answers   *handlers.AnswerHandler
	History   *handlers.HistoryHandler
	SessionID string
}

// withDeps loads configuration, opens the store and wires the handlers,
// then runs fn. The store is closed when fn returns.
func withDeps(fn func(d *Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	state, err := config.LoadState(cwd)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	dbPath := cfg.DatabasePath(cwd)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := sqlite.NewRepository(config.StoreConfig{Path: dbPath})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("ensuring store schema: %w", err)
	}

	client := fetch.NewClient(cfg.Fetch.Timeout())
	manager, err := fetch.NewManager(repo, client, cfg.Fetch.BaseURL)
	if err != nil {
		return fmt.Errorf("creating fetch manager: %w", err)
	}

	sessionID := uuid.New().String()
	recorder := services.NewRecorder(repo)

	deps := &Deps{
		Config:    cfg,
		State:     state,
		BasePath:  cwd,
		Store:     repo,
		Manager:   manager,
		Loader:    handlers.NewLoadHandler(manager, repo, sessionID),
		Answers:   handlers.NewAnswerHandler(recorder, repo, sessionID),
		History:   handlers.NewHistoryHandler(repo),
		SessionID: sessionID,
	}

	return fn(deps)
}

// resolveURL picks the explicit --url value when given, falling back to the
// last opened source recorded in the state file.
func (d *Deps) resolveURL() (string, error) {
	return d.State.ResolveURL(globalURL)
}

// rememberURL records the resolved URL as the last opened source. Failures
// are reported but never abort the command.
func (d *Deps) rememberURL(resolved string) {
	if d.State.LastURL == resolved {
		return
	}
	d.State.LastURL = resolved
	if err := d.State.Save(d.BasePath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving state: %v\n", err)
	}
}

// newExplainHandler wires the OpenAI-backed explainer on demand so commands
// that never explain do not require an API key.
func (d *Deps) newExplainHandler() (*handlers.ExplainHandler, error) {
	exp, err := openai.NewExplainer(d.Config.OpenAI)
	if err != nil {
		return nil, err
	}
	return handlers.NewExplainHandler(exp, d.Store, d.SessionID), nil
}
