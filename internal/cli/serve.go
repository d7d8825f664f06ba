package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/cache"
	"github.com/matzehuels/slotgrid/pkg/server"
)

type serveOptions struct {
	addr      string
	cacheDir  string
	cacheSize int
	cacheTTL  time.Duration
	noCache   bool
}

// serveCommand creates the serve command that exposes the layout pipeline
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var so serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Routes:
  GET  /healthz
  GET  /v1/presets
  GET  /v1/presets/{name}            render a preset (?format=svg|png|json|txt)
  GET  /v1/presets/{name}/document   preset source (?format=yaml|toml|json)
  POST /v1/layout                    render a posted document

Rendered artifacts are cached in memory unless --cache-dir moves the cache
to disk or --no-cache turns it off. The server shuts down gracefully on
interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := so.cache()
			if err != nil {
				return err
			}
			defer store.Close()

			printInfo(c.Out, "Listening on %s", so.addr)
			srv := server.New(c.Logger, server.WithCache(store, so.cacheTTL))
			return srv.ListenAndServe(cmd.Context(), so.addr)
		},
	}

	cmd.Flags().StringVar(&so.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&so.cacheDir, "cache-dir", "", "store rendered artifacts in this directory")
	cmd.Flags().IntVar(&so.cacheSize, "cache-size", cache.DefaultMaxEntries, "in-memory cache entries")
	cmd.Flags().DurationVar(&so.cacheTTL, "cache-ttl", time.Hour, "artifact lifetime (0 keeps them until evicted)")
	cmd.Flags().BoolVar(&so.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// cache picks the artifact store from the flags.
func (so serveOptions) cache() (cache.Cache, error) {
	switch {
	case so.noCache:
		return cache.NewNullCache(), nil
	case so.cacheDir != "":
		return cache.NewFileCache(so.cacheDir)
	default:
		return cache.NewMemoryCache(so.cacheSize), nil
	}
}
