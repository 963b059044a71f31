package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/papers/internal/adapters/driving/web"
	"github.com/custodia-labs/papers/internal/core/domain"
	"github.com/custodia-labs/papers/internal/logger"
)

var (
	serveHost        string
	servePort        int
	serveWatchConfig bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search & ask page over HTTP",
	Long: `Serve the search & ask page in the browser.

The host, port and rate limit default to the web.* settings. With
--watch-config the page, the health check and the rate limit are rebuilt
whenever the config file changes, so a new backend URL, language or limit
takes effect without a restart.

The server holds one page for everyone who opens it, like a single browser
tab. Concurrent visitors see and replace each other's results, so keep
web.host on a local address unless the page is meant to be shared.

Examples:
  papers serve
  papers serve --port 9000 --watch-config`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default web.host)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default web.port)")
	serveCmd.Flags().BoolVar(&serveWatchConfig, "watch-config", false, "reload the page when the config file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if services == nil || services.NewPage == nil {
		return ErrNotConfigured
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	host := settings.Web.Host
	if serveHost != "" {
		host = serveHost
	}
	port := settings.Web.Port
	if servePort > 0 {
		port = servePort
	}

	if serveWatchConfig && services.Watch == nil {
		return fmt.Errorf("--watch-config: %w", ErrNotConfigured)
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	server, err := newPageServer(addr, settings.Web)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if serveWatchConfig {
		go watchConfig(ctx, server)
	}

	cmd.Printf("Serving on http://%s\n", addr)
	return server.Run(ctx)
}

// newPageServer builds the web page server over the current services.
func newPageServer(addr string, cfg domain.WebSettings) (*web.Server, error) {
	return web.NewServer(&web.Ports{
		NewPage:   services.NewPage,
		Settings:  services.Settings,
		NewHealth: services.NewHealth,
	}, web.Config{
		Addr:      addr,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})
}

// watchConfig reloads server on every config file change until ctx ends.
func watchConfig(ctx context.Context, server *web.Server) {
	err := services.Watch(ctx, func() {
		if err := server.Reload(); err != nil {
			logger.Error("reload: %v", err)
		}
	})
	if err != nil && ctx.Err() == nil {
		logger.Error("watch config: %v", err)
	}
}
