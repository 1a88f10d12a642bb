package app

import (
	"fmt"
	"io"

	"github.com/riskibarqy/fpl-cli/external/fpl"
	"github.com/riskibarqy/fpl-cli/internal/config"
	"github.com/riskibarqy/fpl-cli/internal/domain/scoring"
	"github.com/riskibarqy/fpl-cli/internal/interfaces/cli"
	"github.com/riskibarqy/fpl-cli/internal/platform/logging"
	"github.com/riskibarqy/fpl-cli/internal/usecase"
)

// NewCLI wires the remote client and the usecases behind the command handler.
func NewCLI(cfg config.Config, logger *logging.Logger, stdout, stderr io.Writer) (*cli.Handler, error) {
	catalog, err := scoring.CatalogByVersion(cfg.FPLStatCatalog)
	if err != nil {
		return nil, fmt.Errorf("resolve stat catalog: %w", err)
	}

	client := fpl.NewClient(fpl.ClientConfig{
		BaseURL:      cfg.FPLBaseURL,
		UserAgent:    cfg.FPLUserAgent,
		Timeout:      cfg.FPLTimeout,
		MaxBodyBytes: int64(cfg.FPLMaxBodyBytes),
		Logger:       logger,
	})

	services := cli.Services{
		Season:    usecase.NewSeasonService(client),
		Fixture:   usecase.NewFixtureService(client),
		Player:    usecase.NewPlayerService(client),
		Live:      usecase.NewLiveService(client, catalog),
		Pick:      usecase.NewPickService(client),
		DreamTeam: usecase.NewDreamTeamService(client),
	}

	return cli.NewHandler(services, logger, stdout, stderr), nil
}
