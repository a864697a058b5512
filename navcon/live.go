package navcon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"maze-navcon/scs"
)

// LiveHooks lets the caller observe each tick, e.g. to feed a dashboard.
type LiveHooks struct {
	// OnTick, if set, is called after every tick with consistent copies of
	// the snapshot, status and emitted command.
	OnTick func(SensorSnapshot, NavigationStatus, scs.Packet)
}

// RunLive starts the UDP-to-UDP control loop: telemetry packets are
// ingested into the store, one state machine tick runs per period, and the
// resulting command is transmitted. Blocks until ctx is canceled or a
// component fails.
func RunLive(ctx context.Context, cfg AppConfig, hooks LiveHooks) error {
	if cfg.Hz <= 0 {
		return fmt.Errorf("hz must be > 0")
	}
	if cfg.Live.UDPAddr == "" {
		return fmt.Errorf("live.udp_addr must be set")
	}

	store := NewTelemetryStore()
	nav := NewNavigator()

	sender, err := NewCommandSender(cfg.Output.UDPAddr)
	if err != nil {
		return err
	}
	defer func() {
		_ = sender.Close()
	}()

	viz, err := StartViz(cfg.Viz)
	if err != nil {
		return err
	}

	addr, err := net.ResolveUDPAddr("udp", cfg.Live.UDPAddr)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		_ = conn.Close()
		return ctx.Err()
	})

	g.Go(func() error {
		bufSize := cfg.Live.ReadBuffer
		if bufSize <= 0 {
			bufSize = 2048
		}
		buf := make([]byte, bufSize)
		for {
			n, _, err := conn.ReadFromUDP(buf)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				continue
			}
			p, err := scs.Unmarshal(buf[:n])
			if err != nil {
				continue
			}
			store.Ingest(p, nav)
		}
	})

	g.Go(func() error {
		period := time.Duration(float64(time.Second) / cfg.Hz)
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			cmd := store.Tick(nav)
			sender.Send(cmd)

			snap, status, _, _ := store.Observe(nav)
			viz.Update(&snap, &status, cmd)

			if hooks.OnTick != nil {
				hooks.OnTick(snap, status, cmd)
			}
			if cfg.Log.Enabled {
				log.Print(statusLine(&snap, &status, cmd))
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
