// Package storage keeps sampled field runs on disk, one directory per run
// holding metadata.json and vectors.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/fieldlab/internal/field"
)

const (
	metadataFile = "metadata.json"
	vectorsFile  = "vectors.csv"
)

var vectorHeader = []string{"origin_x", "origin_y", "end_x", "end_y", "magnitude", "angle", "length", "weight"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes what was sampled. Params holds the scenario knobs
// (density, size, cell size, ...) and Summary the scalar results (dipole
// moment, flux, ...).
type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Source    string             `json:"source"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Summary   map[string]float64 `json:"summary,omitempty"`
	Vectors   int                `json:"vectors"`
}

func (s *Store) Save(scenario, source string, params, summary map[string]float64, vectors []field.Vector) (string, error) {
	runID := fmt.Sprintf("%s_%d_%s", scenario, time.Now().Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Source:    source,
		Timestamp: time.Now(),
		Params:    params,
		Summary:   summary,
		Vectors:   len(vectors),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeVectors(filepath.Join(runDir, vectorsFile), vectors); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"run":     runID,
		"source":  source,
		"vectors": len(vectors),
	}).Debug("saved field run")

	return runID, nil
}

func writeVectors(path string, vectors []field.Vector) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(vectorHeader); err != nil {
		return err
	}
	for _, v := range vectors {
		row := []string{
			formatFloat(v.Origin.X), formatFloat(v.Origin.Y),
			formatFloat(v.End.X), formatFloat(v.End.Y),
			formatFloat(v.Magnitude), formatFloat(v.Angle),
			formatFloat(v.Length), formatFloat(v.Weight),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			log.WithError(err).WithField("dir", entry.Name()).Debug("skipping unreadable run")
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadVectors(runID string) ([]field.Vector, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, vectorsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(vectorHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []field.Vector{}, nil
	}

	vectors := make([]field.Vector, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", vectorsFile, i+2, err)
			}
			vals[j] = v
		}
		vectors = append(vectors, field.Vector{
			Origin:    field.V(vals[0], vals[1]),
			End:       field.V(vals[2], vals[3]),
			Magnitude: vals[4],
			Angle:     vals[5],
			Length:    vals[6],
			Weight:    vals[7],
		})
	}

	return vectors, nil
}
