package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"duecode-go/device/sam3x8e"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	sam3x8e.Reset()
	t.Cleanup(sam3x8e.Reset)

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDefaults(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}
	want := "period 1024 ticks (1000 ms), 3 toggles, LED off at tick 3072, RTT alarm=true inc=true"
	if !strings.Contains(out, want) {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRunFlagsOverrideScenario(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--duration", "4096", "--port", "C", "--line", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "4 toggles, LED on") {
		t.Fatalf("got %q", out)
	}
}

func TestRunWithoutGate(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--gate-on-due=false", "--duration", "10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "11 toggles, LED off at tick 10") {
		t.Fatalf("got %q", out)
	}
}

func TestRunRejectsBadPort(t *testing.T) {
	if _, err := execute(t, "run", "--log-level", "error", "--port", "Z"); err == nil {
		t.Fatal("expected error")
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := execute(t, "run", "--log-level", "loud"); err == nil {
		t.Fatal("expected error")
	}
}

func TestInitThenRunFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "due.yaml")
	if _, err := execute(t, "init", "--config", path, "--log-level", "error"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "init", "--config", path, "--log-level", "error"); err == nil {
		t.Fatal("init must not overwrite")
	}
	out, err := execute(t, "run", "--config", path, "--log-level", "error", "--period-ms", "500")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "period 512 ticks (500 ms), 6 toggles") {
		t.Fatalf("got %q", out)
	}
}

func TestInitNeedsConfig(t *testing.T) {
	if _, err := execute(t, "init", "--log-level", "error"); err == nil {
		t.Fatal("expected error")
	}
}
