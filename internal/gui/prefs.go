package gui

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"

	"github.com/san-kum/physlab/internal/kinematics"
)

const inclineKey = "incline"

// Prefs keeps window settings between runs. A Prefs without storage
// loads defaults and drops saves.
type Prefs struct {
	m *gdata.Manager
}

type savedIncline struct {
	AngleDeg float64 `json:"angle_deg"`
	Friction float64 `json:"friction"`
}

func OpenPrefs(app string) *Prefs {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		log.Warn("settings storage unavailable", "err", err)
		return &Prefs{}
	}
	return &Prefs{m: m}
}

// Incline returns the saved slider values, or def.
func (p *Prefs) Incline(def kinematics.InclineParams) kinematics.InclineParams {
	if p == nil || p.m == nil {
		return def
	}
	data, err := p.m.LoadItem(inclineKey)
	if err != nil {
		log.Warn("load incline settings", "err", err)
		return def
	}
	return decodeIncline(data, def)
}

func (p *Prefs) SaveIncline(params kinematics.InclineParams) {
	if p == nil || p.m == nil {
		return
	}
	if err := p.m.SaveItem(inclineKey, encodeIncline(params)); err != nil {
		log.Warn("save incline settings", "err", err)
	}
}

func encodeIncline(p kinematics.InclineParams) []byte {
	data, _ := json.Marshal(savedIncline{AngleDeg: p.AngleDeg, Friction: p.Friction})
	return data
}

func decodeIncline(data []byte, def kinematics.InclineParams) kinematics.InclineParams {
	if len(data) == 0 {
		return def
	}
	var s savedIncline
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn("bad incline settings", "err", err)
		return def
	}
	return kinematics.InclineParams{AngleDeg: s.AngleDeg, Friction: s.Friction}
}
