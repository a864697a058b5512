package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"maze-navcon/dashboard"
	"maze-navcon/navcon"
)

var (
	configPath    string
	liveAddr      string
	outputAddr    string
	withDashboard bool
)

var rootCmd = &cobra.Command{
	Use:   "navcon",
	Short: "Maze navigation controller",
	Long: `navcon consumes sensor telemetry over UDP, runs the maze
navigation state machine and emits motion commands for the motor driver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; environment overrides are applied by LoadConfig.
		_ = godotenv.Load()

		cfg, err := navcon.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if liveAddr != "" {
			cfg.Live.UDPAddr = liveAddr
		}
		if outputAddr != "" {
			cfg.Output.UDPAddr = outputAddr
		}
		if withDashboard {
			cfg.Dashboard.Enabled = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !cfg.Dashboard.Enabled {
			return navcon.RunLive(ctx, cfg, navcon.LiveHooks{})
		}

		// The dashboard owns the terminal, so per-tick logging is off.
		cfg.Log.Enabled = false
		feed := &dashboard.Feed{}
		hooks := navcon.LiveHooks{OnTick: feed.Push}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return navcon.RunLive(ctx, cfg, hooks) })
		g.Go(func() error {
			// Quitting the dashboard shuts the controller down too.
			defer stop()
			return dashboard.Run(ctx, feed)
		})
		return g.Wait()
	},
}

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.json", "Path to JSON config.")
	rootCmd.Flags().StringVar(&liveAddr, "live-addr", "", "Override live UDP listen addr (host:port).")
	rootCmd.Flags().StringVar(&outputAddr, "output-addr", "", "Override output UDP addr (host:port).")
	rootCmd.Flags().BoolVar(&withDashboard, "dashboard", false, "Render the live terminal dashboard.")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
