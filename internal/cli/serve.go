package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve cube sessions over HTTP. Sessions live in memory and are
independent of the saved cube used by the other commands.

  GET    /healthz
  GET    /v1/scramble?count=N&seed=S
  POST   /v1/invert                   {"moves": [...]}
  POST   /v1/sessions
  GET    /v1/sessions/{id}
  DELETE /v1/sessions/{id}
  POST   /v1/sessions/{id}/reset
  POST   /v1/sessions/{id}/moves      {"moves": [...], "strict": false}
  POST   /v1/sessions/{id}/scramble   {"count": N}
  POST   /v1/sessions/{id}/solve

Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr        string
	serveMaxSessions int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: server.addr from config)")
	serveCmd.Flags().IntVar(&serveMaxSessions, "max-sessions", 10000, "Maximum live sessions (0 for no limit)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	log := newLogger(cmd.ErrOrStderr(), cfg, true)

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MaxSessions:     serveMaxSessions,
		SessionOptions:  []cubesim.Option{cubesim.WithScrambleLength(cfg.ScrambleLength)},
	}, log)

	return srv.Run(ctx)
}

// contextOrBackground keeps cmd.Context usable when Execute was called
// without one.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
