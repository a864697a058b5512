package navcon

import (
	"testing"

	"maze-navcon/scs"
)

func TestIngestColorWord(t *testing.T) {
	// S1=RED(1) S2=GREEN(2) S3=BLACK(4): 001_010_100.
	word := uint16(1)<<6 | uint16(2)<<3 | uint16(4)
	p := scs.New(scs.PhaseMaze, scs.SubSS, ssColors, byte(word>>8), byte(word), 0)

	snap := SensorSnapshot{Colors: [3]Color{Blue, Blue, Blue}}
	var status NavigationStatus

	if !applyTelemetry(p, &snap, &status) {
		t.Fatal("color packet must mutate the snapshot")
	}
	if snap.Colors != [3]Color{Red, Green, Black} {
		t.Fatalf("colors: got %v", snap.Colors)
	}
	if snap.Previous != [3]Color{Blue, Blue, Blue} {
		t.Fatalf("previous colors not snapshotted: got %v", snap.Previous)
	}
}

func TestIngestIncidenceAngle(t *testing.T) {
	p := scs.New(scs.PhaseMaze, scs.SubSS, ssIncidence, 37, 0, 0)
	var snap SensorSnapshot
	var status NavigationStatus

	applyTelemetry(p, &snap, &status)
	if snap.Incidence != 37 {
		t.Fatalf("angle: got %d want 37", snap.Incidence)
	}
}

func TestIngestRotationFeedback(t *testing.T) {
	p := scs.New(scs.PhaseMaze, scs.SubMDPS, mdpsRotation, 0x01, 0x2C, 2)
	var snap SensorSnapshot
	var status NavigationStatus

	applyTelemetry(p, &snap, &status)
	if snap.Rotation != 300 {
		t.Fatalf("rotation: got %d want 300", snap.Rotation)
	}
	if snap.RotationDir != Left {
		t.Fatalf("rotation dir: got %v want %v", snap.RotationDir, Left)
	}
}

func TestIngestDistanceFeedback(t *testing.T) {
	p := scs.New(scs.PhaseMaze, scs.SubMDPS, mdpsDistance, 0, 75, 0)
	var snap SensorSnapshot
	var status NavigationStatus

	applyTelemetry(p, &snap, &status)
	if snap.Distance != 75 {
		t.Fatalf("distance: got %d want 75", snap.Distance)
	}
}

func TestIngestStopConfirmationGating(t *testing.T) {
	zeroSpeeds := scs.New(scs.PhaseMaze, scs.SubMDPS, mdpsSpeed, 0, 0, 0)

	// Zero speeds while armed and waiting before the rotation raise the
	// signal.
	var snap SensorSnapshot
	status := NavigationStatus{State: StateStopBeforeRotate, awaitingStopSignal: true}
	applyTelemetry(zeroSpeeds, &snap, &status)
	if !status.stopSignal {
		t.Fatal("expected the stop signal in STOP_BEFORE_ROTATE")
	}

	// Without the arming flag the reading is ignored even in the right
	// state.
	snap = SensorSnapshot{}
	status = NavigationStatus{State: StateStopBeforeRotate}
	applyTelemetry(zeroSpeeds, &snap, &status)
	if status.stopSignal {
		t.Fatal("unarmed stop signal must stay clear")
	}

	// The same reading in any other state must not.
	for _, state := range []State{StateForwardScan, StateStop, StateReverse, StateCrossingLine} {
		snap = SensorSnapshot{}
		status = NavigationStatus{State: state, awaitingStopSignal: true}
		applyTelemetry(zeroSpeeds, &snap, &status)
		if status.stopSignal {
			t.Errorf("%v: stop signal must stay clear", state)
		}
	}

	// Nonzero speeds never raise it.
	snap = SensorSnapshot{}
	status = NavigationStatus{State: StateStopBeforeRotate, awaitingStopSignal: true}
	moving := scs.New(scs.PhaseMaze, scs.SubMDPS, mdpsSpeed, 10, 10, 0)
	applyTelemetry(moving, &snap, &status)
	if status.stopSignal {
		t.Fatal("moving wheels must not confirm a stop")
	}
	if snap.SpeedLeft != 10 || snap.SpeedRight != 10 {
		t.Fatalf("speeds: got L=%d R=%d", snap.SpeedLeft, snap.SpeedRight)
	}
}

func TestIngestIgnoresNonMazePhase(t *testing.T) {
	p := scs.New(scs.PhaseCal, scs.SubMDPS, mdpsDistance, 0, 99, 0)
	var snap SensorSnapshot
	var status NavigationStatus

	if applyTelemetry(p, &snap, &status) {
		t.Fatal("non-maze packets must be ignored")
	}
	if snap.Distance != 0 {
		t.Fatalf("distance mutated: %d", snap.Distance)
	}
}

func TestStoreIngestAndTick(t *testing.T) {
	store := NewTelemetryStore()
	nav := NewNavigator()

	word := uint16(0)<<6 | uint16(2)<<3 | uint16(0) // W, GREEN, W
	store.Ingest(scs.New(scs.PhaseMaze, scs.SubSS, ssColors, byte(word>>8), byte(word), 0), nav)
	store.Ingest(scs.New(scs.PhaseMaze, scs.SubSS, ssIncidence, 10, 0, 0), nav)

	cmd := store.Tick(nav)
	if !isStop(cmd) {
		t.Fatalf("expected stop after detection, got %v", cmd)
	}

	snap, status, seq, last := store.Observe(nav)
	if seq != 2 {
		t.Fatalf("seq: got %d want 2", seq)
	}
	if last != cmd {
		t.Fatalf("last command mismatch: %v vs %v", last, cmd)
	}
	if snap.Colors[idxS2] != Green {
		t.Fatalf("snapshot color: got %v", snap.Colors[idxS2])
	}
	if status.State != StateStop || !status.Detection.Active {
		t.Fatalf("status: %+v", status)
	}
}
