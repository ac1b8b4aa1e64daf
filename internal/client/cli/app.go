package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dpolyakov/planmate/internal/client/api"
	"github.com/dpolyakov/planmate/internal/client/config"
	"github.com/dpolyakov/planmate/internal/client/models"
	"github.com/dpolyakov/planmate/internal/client/services"
	"github.com/dpolyakov/planmate/internal/client/session"
)

// App holds the wired client components plus the two pieces of view state
// the REPL needs: the session manager and the currently opened project.
type App struct {
	config         *config.Config
	session        *session.Manager
	authService    services.AuthService
	projectService services.ProjectService
	reader         *bufio.Reader
	current        *models.Project
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, store, cfg.RequestTimeout)

	authService := services.NewAuthService(apiClient, store)
	projectService := services.NewProjectService(apiClient)

	manager, err := session.NewManager(ctx, store, authService)
	if err != nil {
		return nil, err
	}

	return &App{
		config:         cfg,
		session:        manager,
		authService:    authService,
		projectService: projectService,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits. The session manager
// lifecycle ends when Run returns.
func (a *App) Run(ctx context.Context) {
	defer a.session.Close()

	fmt.Println("Welcome to planmate CLI (type 'help' for commands)")
	if a.session.IsAuthenticated() {
		log.Printf("Restored session for %s", a.session.CurrentUser().Username)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	user := a.session.CurrentUser()
	if user == nil {
		return "(guest)"
	}
	if a.current != nil {
		return fmt.Sprintf("(%s:%s)", user.Username, a.current.Title)
	}
	return fmt.Sprintf("(%s)", user.Username)
}
