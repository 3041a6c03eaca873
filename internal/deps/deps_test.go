package deps

import "testing"

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "Nope", Command: "definitely-not-a-real-binary-xyz"},
		{Name: "Empty", Command: ""},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
	if statuses[1].Available || statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected status for empty command: %+v", statuses[1])
	}
}

func TestCheckBinariesFindsShell(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "Shell", Command: "sh"}})
	if !statuses[0].Available {
		t.Fatalf("expected sh to be available: %+v", statuses[0])
	}
}

func TestDefaultsFallBackToConventionalNames(t *testing.T) {
	requirements := Defaults("", "")
	if len(requirements) < 2 {
		t.Fatalf("expected at least ffmpeg and ffprobe, got %d", len(requirements))
	}
	if requirements[0].Command != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg command: %q", requirements[0].Command)
	}
	if requirements[1].Command != "ffprobe" {
		t.Fatalf("unexpected ffprobe command: %q", requirements[1].Command)
	}
	for _, req := range requirements[2:] {
		if !req.Optional {
			t.Fatalf("expected clipboard helper to be optional: %+v", req)
		}
	}
}
