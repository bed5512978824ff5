package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/physlab/internal/experiment"
)

type ExportData struct {
	Scenario string             `json:"scenario"`
	Ticks    int                `json:"ticks"`
	FPS      int                `json:"fps"`
	Fields   []string           `json:"fields"`
	Params   map[string]float64 `json:"params,omitempty"`
	Times    []float64          `json:"times"`
	States   [][]float64        `json:"states"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run's metadata and samples as one JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, result *experiment.Result) error {
	data := ExportData{
		Scenario: meta.Scenario,
		Ticks:    meta.Ticks,
		FPS:      meta.FPS,
		Fields:   meta.Fields,
		Params:   meta.Params,
		Times:    result.Times,
		States:   result.States,
		Metrics:  meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per sample: tick, time, then the state fields.
func WriteCSV(out io.Writer, result *experiment.Result) error {
	w := csv.NewWriter(out)

	header := []string{"tick", "time"}
	header = append(header, csvFields(result)...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, x := range result.States {
		tick := i
		if i < len(result.Ticks) {
			tick = result.Ticks[i]
		}
		t := 0.0
		if i < len(result.Times) {
			t = result.Times[i]
		}

		row := []string{strconv.Itoa(tick), strconv.FormatFloat(t, 'f', 6, 64)}
		for _, val := range x {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func csvFields(result *experiment.Result) []string {
	if len(result.Fields) > 0 {
		return result.Fields
	}
	if len(result.States) == 0 {
		return nil
	}
	names := make([]string, len(result.States[0]))
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	return names
}
