// Package sensors synthesizes per-layer quality and probe readings.
package sensors

import (
	"math"

	sr "etherion/internal/stablerand"
	"etherion/internal/types"
)

// Reading.V holds a types.Float, an int or a risk level string.
type Reading struct {
	K string `json:"k"`
	V any    `json:"v"`
}

type LayerReport struct {
	Layer   string      `json:"layer"`
	Quality types.Float `json:"quality"`
	Probes  []Reading   `json:"probes"`
}

// Document is sensors.json.
type Document struct {
	Cadence string        `json:"cadence"`
	Layers  []LayerReport `json:"layers"`
}

// Quality is a 0..1 fraction kept to one decimal of percent.
func Quality(m sr.Modulator, layer string) float64 {
	qBase := sr.Lerp(0.55, 0.35, sr.Rand01("quality|"+layer+"|"+m.Cadence().Key()))
	q := sr.Round1(sr.Clamp01(m.Boost(layer, qBase)) * 100)
	return q / 100.0
}

// Probe reads one probe; the value type depends on the probe kind.
func Probe(layer, probe string, c types.Cadence) Reading {
	r := sr.Rand01(layer + "|" + probe + "|" + c.Key())

	var v any
	switch KindOf(probe) {
	case KindRatio:
		v = types.Float(sr.Round1(sr.Lerp(50, 50, r)))
	case KindPercent:
		v = types.Float(sr.Round1(sr.Lerp(-2.0, 8.0, r)))
	case KindDepth:
		v = int(sr.Lerp(50_000, 200_000, r))
	case KindCommits:
		v = int(sr.Lerp(5, 40, r))
	case KindRisk:
		v = RiskLevels[int(math.Floor(3*r))%3]
	case KindOther:
		v = types.Float(sr.Round1(100 * r))
	}
	return Reading{K: probe, V: v}
}

func Build(layers []Layer, m sr.Modulator) Document {
	out := make([]LayerReport, 0, len(layers))
	for _, l := range layers {
		probes := make([]Reading, 0, len(l.Probes))
		for _, k := range l.Probes {
			probes = append(probes, Probe(l.ID, k, m.Cadence()))
		}
		out = append(out, LayerReport{
			Layer:   l.ID,
			Quality: types.Float(Quality(m, l.ID)),
			Probes:  probes,
		})
	}
	return Document{Cadence: m.Cadence().Tag(), Layers: out}
}
