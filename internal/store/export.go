// Package store exports run trajectories for downstream analysis.
package store

import (
	"encoding/json"
	"os"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/rd"
)

type ExportData struct {
	Scheme       string             `json:"scheme"`
	Points       int                `json:"points"`
	Length       float64            `json:"length"`
	Duration     float64            `json:"duration"`
	Steps        int                `json:"steps"`
	Du           float64            `json:"d_u"`
	Dv           float64            `json:"d_v"`
	K0           float64            `json:"k0"`
	TotalProtein float64            `json:"total_protein"`
	Times        []float64          `json:"times"`
	U            [][]float64        `json:"u"`
	V            [][]float64        `json:"v"`
	Metrics      map[string]float64 `json:"metrics"`
}

func newExportData(cfg *config.Config, scheme string, result *rd.Result) ExportData {
	data := ExportData{
		Scheme:       scheme,
		Points:       cfg.Points,
		Length:       cfg.Length,
		Duration:     cfg.Duration,
		Steps:        cfg.Steps,
		Du:           cfg.Du,
		Dv:           cfg.Dv,
		K0:           cfg.K0,
		TotalProtein: cfg.TotalProtein,
		Times:        result.Times,
		U:            make([][]float64, len(result.U)),
		V:            make([][]float64, len(result.V)),
		Metrics:      result.Metrics,
	}
	for i, f := range result.U {
		data.U[i] = f
	}
	for i, f := range result.V {
		data.V[i] = f
	}
	return data
}

func ExportJSON(path string, cfg *config.Config, scheme string, result *rd.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(cfg, scheme, result))
}

func ExportJSONStdout(cfg *config.Config, scheme string, result *rd.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(cfg, scheme, result))
}
