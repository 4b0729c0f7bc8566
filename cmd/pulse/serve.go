package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulse-ui/pulse/internal/config"
	"github.com/pulse-ui/pulse/pkg/assets"
	"github.com/pulse-ui/pulse/pkg/dom"
	"github.com/pulse-ui/pulse/pkg/mount"
	"github.com/pulse-ui/pulse/pkg/server"
	"github.com/pulse-ui/pulse/pkg/stream"
)

func serveCmd() *cobra.Command {
	var (
		port       int
		host       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built-in demo application",
		Long: `Start a Pulse server hosting the built-in demo view.

The demo exercises the full engine: stream-bound text, dynamic
children, and self-removing components, served live over WebSocket.
Real applications embed pkg/server directly; this command exists to
try the engine and to smoke-test a deployment target.

Examples:
  pulse serve
  pulse serve --port=8080 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, configPath)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from pulse.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from pulse.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to pulse.json")

	return cmd
}

func runServe(port int, host, configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg, err = config.LoadFromCwd()
		if err != nil {
			// No project config: serve the demo with defaults.
			cfg = config.New()
		}
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg),
	}))
	slog.SetDefault(logger)

	store, err := assets.FromConfig(cfg.Assets)
	if err != nil {
		return err
	}

	srv := server.New(cfg, demoView,
		server.WithLogger(logger),
		server.WithAssetHandler(assets.Handler(store, cfg.Assets.MaxUploadBytes)),
	)

	fmt.Printf("pulse %s serving demo on http://%s\n", version, cfg.Addr())
	return srv.Start(context.Background())
}

func logLevel(cfg *config.Config) slog.Level {
	if cfg.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// demoView is a small task list: an input, an add button, and rows that
// remove themselves.
func demoView(ctl *mount.Ctl) mount.Modifier {
	count := stream.NewSource(0)
	clock := stream.NewSource(time.Now().Format("15:04:05"))

	ctl.Scope().Go(func(ctx context.Context) {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				clock.Set(t.Format("15:04:05"))
			}
		}
	})

	list := mount.NewChildren()

	addRow := func() {
		n := count.Get() + 1
		count.Set(n)
		label := "task " + strconv.Itoa(n)
		err := list.Append(func(destroy func()) mount.Modifier {
			return mount.El("li",
				mount.Text(label),
				mount.El("button",
					mount.Attr("class", "remove"),
					mount.Text("×"),
					mount.On("click", func(dom.Event) { destroy() }),
				),
			)
		})
		if err != nil {
			slog.Warn("append task", "error", err)
		}
	}

	return mount.El("main",
		mount.El("h1", mount.Text("Pulse demo")),
		mount.El("p",
			mount.Attr("class", "clock"),
			mount.BindText(clock),
		),
		mount.El("p", mount.BindText(stream.Map(count, func(n int) string {
			return strconv.Itoa(n) + " tasks created"
		}))),
		mount.El("button",
			mount.Attr("class", "add"),
			mount.Text("Add task"),
			mount.On("click", func(dom.Event) { addRow() }),
		),
		mount.El("ul", list.Render()),
	)
}
