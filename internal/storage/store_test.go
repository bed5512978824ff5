package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/kinematics"
)

func sampleResult() *experiment.Result {
	return &experiment.Result{
		Fields: []string{"s", "v"},
		Ticks:  []int{0, 1, 2},
		Times:  []float64{0, 0.5, 1.0},
		States: [][]float64{
			{20, 0},
			{20.04, 0.4},
			{20.12, 0.8},
		},
		Metrics: map[string]float64{
			"distance": 0.12,
		},
	}
}

func sampleConfig() experiment.Config {
	return experiment.Config{
		Scenario: "incline",
		Ticks:    2,
		FPS:      2,
		Incline:  kinematics.InclineParams{AngleDeg: 30, Friction: 0.1},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sampleConfig(), sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(runID, "incline_") {
		t.Errorf("expected run id to start with the scenario, got %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Scenario != "incline" {
		t.Errorf("expected scenario 'incline', got '%s'", meta.Scenario)
	}

	if meta.Params["angle"] != 30 || meta.Params["friction"] != 0.1 {
		t.Errorf("unexpected params %v", meta.Params)
	}

	if meta.Metrics["distance"] != 0.12 {
		t.Errorf("expected distance 0.12, got %f", meta.Metrics["distance"])
	}

	if meta.Duration() != 1.0 {
		t.Errorf("expected duration 1s, got %f", meta.Duration())
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}

	if len(states) != 3 || len(times) != 3 {
		t.Fatalf("expected 3 samples, got %d states and %d times", len(states), len(times))
	}

	if states[2][0] != 20.12 || states[2][1] != 0.8 {
		t.Errorf("unexpected last state %v", states[2])
	}
}

func TestStoreLoadResult(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(sampleConfig(), sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	_, res, err := st.LoadResult(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Ticks) != 3 || res.Ticks[2] != 2 {
		t.Errorf("unexpected ticks %v", res.Ticks)
	}
	if res.Fields[0] != "s" {
		t.Errorf("unexpected fields %v", res.Fields)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save(sampleConfig(), sampleResult()); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, _, err := st.LoadStates("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "tick,time,s,v" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "0,0.000000,20.000000,0.000000" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{Scenario: "incline", Ticks: 2, FPS: 2, Fields: []string{"s", "v"}}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, sampleResult()); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Scenario != "incline" || len(data.States) != 3 {
		t.Errorf("unexpected export %+v", data)
	}
}
