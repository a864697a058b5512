package navcon

import (
	"expvar"
	"log"
	"net/http"

	"maze-navcon/scs"
)

// VizMetrics exposes live telemetry and command values via expvar.
type VizMetrics struct {
	telemetry *expvar.Map
	command   *expvar.Map
}

// StartViz starts an HTTP server exposing /debug/vars for plotting. Returns
// nil (a no-op receiver) when disabled.
func StartViz(cfg VizConfig) (*VizMetrics, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7070"
	}

	metrics := &VizMetrics{
		telemetry: expvar.NewMap("telemetry"),
		command:   expvar.NewMap("command"),
	}
	for _, key := range []string{"state", "s1", "s2", "s3", "angle", "distance", "speed_left", "speed_right", "rotation"} {
		metrics.telemetry.Set(key, new(expvar.Int))
	}
	for _, key := range []string{"dat1", "dat0", "dec"} {
		metrics.command.Set(key, new(expvar.Int))
	}

	server := &http.Server{Addr: cfg.Addr, Handler: http.DefaultServeMux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("viz server error: %v", err)
		}
	}()

	return metrics, nil
}

// Update publishes the latest snapshot, machine state and emitted command.
func (v *VizMetrics) Update(snap *SensorSnapshot, status *NavigationStatus, cmd scs.Packet) {
	if v == nil {
		return
	}
	setInt(v.telemetry, "state", int64(status.State))
	setInt(v.telemetry, "s1", int64(snap.Colors[idxS1]))
	setInt(v.telemetry, "s2", int64(snap.Colors[idxS2]))
	setInt(v.telemetry, "s3", int64(snap.Colors[idxS3]))
	setInt(v.telemetry, "angle", int64(snap.Incidence))
	setInt(v.telemetry, "distance", int64(snap.Distance))
	setInt(v.telemetry, "speed_left", int64(snap.SpeedLeft))
	setInt(v.telemetry, "speed_right", int64(snap.SpeedRight))
	setInt(v.telemetry, "rotation", int64(snap.Rotation))
	setInt(v.command, "dat1", int64(cmd.Dat1))
	setInt(v.command, "dat0", int64(cmd.Dat0))
	setInt(v.command, "dec", int64(cmd.Dec))
}

// setInt updates an expvar.Int stored inside a map.
func setInt(m *expvar.Map, key string, value int64) {
	if v := m.Get(key); v != nil {
		if i, ok := v.(*expvar.Int); ok {
			i.Set(value)
			return
		}
	}
	i := new(expvar.Int)
	i.Set(value)
	m.Set(key, i)
}
