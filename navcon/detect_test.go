package navcon

import "testing"

func TestCenterSensorPriority(t *testing.T) {
	// Regardless of the side sensors, a fresh center reading wins and the
	// angle is taken as measured.
	snap := &SensorSnapshot{
		Colors:    [3]Color{Red, Green, Red},
		Previous:  [3]Color{White, White, White},
		Incidence: 30,
	}
	var status NavigationStatus

	detectLine(snap, &status)

	d := status.Detection
	if !d.Active {
		t.Fatal("expected an active detection")
	}
	if d.Sensor != Sensor2 {
		t.Fatalf("origin sensor: got %v want %v", d.Sensor, Sensor2)
	}
	if d.Color != Green {
		t.Fatalf("color: got %v want %v", d.Color, Green)
	}
	if !d.AngleMeasured {
		t.Fatal("center detection must carry a measured angle")
	}
	if d.InitialAngle != 30 || d.TargetAngle != 30 {
		t.Fatalf("angles: initial=%d target=%d want 30/30", d.InitialAngle, d.TargetAngle)
	}
	if d.Class != LineNavigable {
		t.Fatalf("class: got %v want %v", d.Class, LineNavigable)
	}
	if d.Episode == "" {
		t.Fatal("expected an episode id")
	}
}

func TestDualAdjacentFusion(t *testing.T) {
	cases := []struct {
		name   string
		colors [3]Color
		sensor SensorID
	}{
		{"left", [3]Color{Green, Green, White}, Sensor1},
		{"right", [3]Color{White, Blue, Blue}, Sensor3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snap := &SensorSnapshot{
				Colors:    c.colors,
				Previous:  c.colors, // unchanged center, rule 1 must not fire
				Incidence: 20,
			}
			var status NavigationStatus

			detectLine(snap, &status)

			d := status.Detection
			if !d.Active {
				t.Fatal("expected an active detection")
			}
			if d.Sensor != c.sensor {
				t.Fatalf("origin sensor: got %v want %v", d.Sensor, c.sensor)
			}
			if d.Color != c.colors[idxS2] {
				t.Fatalf("color: got %v want center color %v", d.Color, c.colors[idxS2])
			}
			if !d.AngleMeasured {
				t.Fatal("fusion detection must carry a measured angle")
			}
		})
	}
}

func TestSingleEdgeStartsPending(t *testing.T) {
	snap := &SensorSnapshot{
		Colors:   [3]Color{Black, White, White},
		Previous: [3]Color{White, White, White},
		Distance: 120,
	}
	var status NavigationStatus

	detectLine(snap, &status)

	d := status.Detection
	if d.Active {
		t.Fatal("single-edge tracking must not activate immediately")
	}
	if d.Sensor != Sensor1 {
		t.Fatalf("tracking sensor: got %v want %v", d.Sensor, Sensor1)
	}
	if d.Color != Black {
		t.Fatalf("tracked color: got %v want %v", d.Color, Black)
	}
	if d.StartDistance != 120 {
		t.Fatalf("start distance: got %d want 120", d.StartDistance)
	}
}

func TestSteepAngleInference(t *testing.T) {
	// S1 non-white, S2 white throughout, distance advances from 0 to
	// exactly SensorSpacing: the detection activates with the inferred
	// angle and the measured flag cleared.
	var status NavigationStatus
	snap := &SensorSnapshot{
		Colors:   [3]Color{Red, White, White},
		Previous: [3]Color{White, White, White},
		Distance: 0,
	}

	detectLine(snap, &status)
	if status.Detection.Active {
		t.Fatal("must not activate at distance 0")
	}

	snap.Distance = SensorSpacing - 1
	detectLine(snap, &status)
	if status.Detection.Active {
		t.Fatal("must not activate below the sensor spacing")
	}

	snap.Distance = SensorSpacing
	detectLine(snap, &status)

	d := status.Detection
	if !d.Active {
		t.Fatal("expected activation at the sensor spacing")
	}
	if d.InitialAngle != InferredSteepAngle || d.TargetAngle != InferredSteepAngle {
		t.Fatalf("angles: initial=%d target=%d want %d", d.InitialAngle, d.TargetAngle, InferredSteepAngle)
	}
	if d.AngleMeasured {
		t.Fatal("inferred angle must not be marked measured")
	}
	if d.Sensor != Sensor1 || d.Color != Red || d.Class != LineNavigable {
		t.Fatalf("unexpected detection: %+v", d)
	}
}

func TestEdgeConfirmedByCenter(t *testing.T) {
	var status NavigationStatus
	snap := &SensorSnapshot{
		Colors:   [3]Color{Blue, White, White},
		Previous: [3]Color{White, White, White},
		Distance: 10,
	}
	detectLine(snap, &status)

	// Two color packets arrived between ticks: the center went non-white
	// and stayed there, so the change-driven center rule misses and the
	// pending episode is confirmed with a measured angle instead.
	snap.Colors = [3]Color{White, Blue, White}
	snap.Previous = [3]Color{White, Blue, White}
	snap.Incidence = 25
	snap.Distance = 40
	detectLine(snap, &status)

	d := status.Detection
	if !d.Active {
		t.Fatal("expected activation on center confirmation")
	}
	if d.Sensor != Sensor1 {
		t.Fatalf("origin sensor must stay %v, got %v", Sensor1, d.Sensor)
	}
	if !d.AngleMeasured {
		t.Fatal("confirmed detection must carry a measured angle")
	}
	if d.InitialAngle != 25 {
		t.Fatalf("angle: got %d want 25", d.InitialAngle)
	}
	if d.Color != Blue || d.Class != LineWall {
		t.Fatalf("unexpected detection: %+v", d)
	}
}

func TestNoRedetectionWhileActive(t *testing.T) {
	var status NavigationStatus
	snap := &SensorSnapshot{
		Colors:    [3]Color{White, Green, White},
		Previous:  [3]Color{White, White, White},
		Incidence: 10,
	}
	detectLine(snap, &status)
	if !status.Detection.Active {
		t.Fatal("expected an active detection")
	}
	first := status.Detection

	// A different, stronger pattern arrives while the episode is active.
	snap.Colors = [3]Color{Black, Black, Black}
	snap.Previous = [3]Color{White, Green, White}
	snap.Incidence = 60
	detectLine(snap, &status)

	if status.Detection != first {
		t.Fatalf("detection changed while active:\n got %+v\nwant %+v", status.Detection, first)
	}
}
