package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresImmediatelyThenWaits(t *testing.T) {
	fs := NewFixedStep(time.Hour)
	if !fs.ShouldStep() {
		t.Fatal("first poll should fire the primed step")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll fired long before the interval elapsed")
	}
}

func TestFixedStepDefaultsBadInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != 200*time.Millisecond {
		t.Fatalf("interval = %v, want 200ms default", fs.step)
	}
}
