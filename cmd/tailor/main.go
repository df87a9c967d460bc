package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailorkit/tailor-cli/internal/adapters/driven/api"
	"github.com/tailorkit/tailor-cli/internal/adapters/driven/auth"
	"github.com/tailorkit/tailor-cli/internal/adapters/driven/config/file"
	"github.com/tailorkit/tailor-cli/internal/adapters/driven/storage/sqlite"
	"github.com/tailorkit/tailor-cli/internal/adapters/driving/cli"
	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/services"
	"github.com/tailorkit/tailor-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfgDir := configDirFromArgs()

	configStore, err := file.NewConfigStore(cfgDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	dataDir := ""
	if cfgDir != "" {
		dataDir = filepath.Join(cfgDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening credential store: %w", err)
	}
	defer store.Close()

	guard := services.NewEnvironmentGuard(store, settings.Auth.PublicKey, settings.API.BaseURL)
	purged, err := guard.Check(ctx)
	if err != nil {
		return fmt.Errorf("checking environment: %w", err)
	}
	if purged {
		fmt.Fprintln(os.Stderr, "Backend environment changed; stored credentials were cleared. Run 'tailor login' again.")
	}

	provider, err := buildProvider(ctx, settings.Auth, store)
	if err != nil {
		return err
	}

	sync := services.NewAuthSyncService(provider, store)
	stop := sync.Start()
	defer stop()

	if bearer, ok := provider.(*auth.BearerProvider); ok {
		watcher := auth.NewCredentialWatcher(store.Path(), func() {
			reloadToken(bearer, store)
		})
		if err := watcher.Start(ctx); err != nil {
			logger.Warn("credential watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	client, err := api.New(api.Config{
		BaseURL:   settings.API.BaseURL,
		Strategy:  api.StrategyFor(settings.Auth.Mode),
		Session:   provider,
		Timeout:   settings.API.Timeout,
		RateLimit: settings.API.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("building API client: %w", err)
	}

	cli.SetServices(cli.Services{
		Session:     services.NewSessionService(provider),
		Resume:      services.NewResumeService(client),
		Tailor:      services.NewTailorService(client),
		Coach:       services.NewCoachService(client),
		Research:    services.NewResearchService(client),
		Application: services.NewApplicationService(client),
		Settings:    settingsService,
		Pinger:      client,
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// buildProvider selects the identity backend from the configured auth mode.
func buildProvider(ctx context.Context, cfg domain.AuthSettings, store driven.TokenStore) (driven.SessionProvider, error) {
	if cfg.Mode == domain.AuthModeBearer {
		provider := auth.NewBearerProvider(auth.BearerConfig{
			IssuerURL: cfg.IssuerURL,
			ClientID:  cfg.ClientID,
		})
		if err := provider.Connect(ctx); err != nil {
			// Discovery failing must not brick the CLI; tokens are then
			// accepted after a claims-only parse.
			logger.Warn("identity provider unreachable: %v", err)
		}
		if token, err := store.Get(ctx, driven.KeyAuthToken); err == nil && token != "" {
			if err := provider.SetToken(ctx, token); err != nil {
				logger.Warn("discarding stored credential: %v", err)
			}
		}
		return provider, nil
	}

	provider := auth.NewSessionUUIDProvider(store)
	if err := provider.Init(ctx); err != nil {
		return nil, fmt.Errorf("initializing session: %w", err)
	}
	return provider, nil
}

// reloadToken picks up a credential written by another process. The auth
// sync hook writes the store on every transition, so skip tokens that
// already match to avoid a write/notify cycle.
func reloadToken(provider *auth.BearerProvider, store driven.TokenStore) {
	ctx := context.Background()

	token, err := store.Get(ctx, driven.KeyAuthToken)
	if err != nil {
		logger.Warn("reloading credential: %v", err)
		return
	}
	current, _ := provider.GetToken(ctx)
	if token == current {
		return
	}
	if token == "" {
		provider.SignOut()
		return
	}
	if err := provider.SetToken(ctx, token); err != nil {
		logger.Warn("reloaded credential rejected: %v", err)
	}
}

// configDirFromArgs pre-scans for --config-dir so the stores open in the
// right place before cobra parses flags.
func configDirFromArgs() string {
	for i, arg := range os.Args {
		if arg == "--config-dir" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--config-dir="); ok {
			return v
		}
	}
	return ""
}
