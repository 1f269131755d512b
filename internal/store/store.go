// Package store persists headless runs under the data directory, one
// directory per run: metadata.json plus frames.csv of the recorded series.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/calistasalscpw/newtonlab/internal/scenario"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string            `json:"id"`
	Scenario  string            `json:"scenario"`
	Timestamp time.Time         `json:"timestamp"`
	Seed      int64             `json:"seed"`
	Frames    int               `json:"frames"`
	Settings  map[string]string `json:"settings"`
}

// Save writes one run. The returned run ID names the directory.
func (s *Store) Save(scenarioName string, seed int64, settings map[string]string, rec *scenario.Recorder) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenarioName, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenarioName,
		Timestamp: time.Now(),
		Seed:      seed,
		Frames:    len(rec.Rows),
		Settings:  settings,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(rec.Columns); err != nil {
		return "", err
	}
	record := make([]string, len(rec.Columns))
	for _, row := range rec.Rows {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata for %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads one run's recorded series back into a Recorder.
func (s *Store) LoadFrames(runID string) (*scenario.Recorder, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read frames for %s: %w", runID, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty frames file for %s", runID)
	}

	rec := scenario.NewRecorder(records[0]...)
	for _, record := range records[1:] {
		values := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parse frames for %s: %w", runID, err)
			}
			values[i] = v
		}
		if err := rec.Record(values...); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// List returns the metadata of every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}
