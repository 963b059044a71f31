// Package main is the entry point for the papers CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/papers/internal/adapters/driven/config/file"
	"github.com/custodia-labs/papers/internal/adapters/driven/paperapi"
	"github.com/custodia-labs/papers/internal/adapters/driving/cli"
	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/core/ports/driving"
	"github.com/custodia-labs/papers/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the file config store, the settings service and the
// backend client into the services the commands run against.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settings := services.NewSettingsService(store)

	client := func() (*paperapi.Client, *domain.AppSettings, error) {
		s, err := settings.Get()
		if err != nil {
			return nil, nil, err
		}
		baseURL := s.API.BaseURL
		if opts.APIURL != "" {
			baseURL = opts.APIURL
		}
		return paperapi.NewClient(paperapi.Config{
			BaseURL: baseURL,
			Timeout: s.API.Timeout,
		}), s, nil
	}

	return &cli.Services{
		Settings: settings,
		NewPage: func() (driving.PageController, error) {
			api, s, err := client()
			if err != nil {
				return nil, err
			}
			return services.NewPageController(api,
				services.WithLabels(s.Labels()),
				services.WithDefaultMaxResults(s.Search.DefaultMaxResults),
			), nil
		},
		NewHealth: func() (driving.HealthService, error) {
			api, _, err := client()
			if err != nil {
				return nil, err
			}
			return services.NewHealthService(api), nil
		},
		Watch: store.Watch,
	}, nil
}
