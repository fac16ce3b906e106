package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ballsim/internal/sim"
)

// ErrNoSeries is returned when a run directory has no series.csv rows.
var ErrNoSeries = errors.New("storage: run has no samples")

var seriesHeader = []string{"time", "kinetic_energy", "momentum_x", "momentum_y", "contacts", "moving"}

// Store keeps run reports on disk, one directory per run. Reports hold metric
// traces only; a world is never restored from them.
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
	ID         string             `json:"id"`
	Preset     string             `json:"preset"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Friction   string             `json:"friction"`
	Balls      int                `json:"balls"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	Steps      int                `json:"steps"`
	Contacts   int                `json:"contacts"`
	Degenerate int                `json:"degenerate"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes meta and the result's samples under a new run directory and
// returns the run ID. Fields of meta derived from result are filled in.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	name := meta.Preset
	if name == "" {
		name = "run"
	}
	meta.ID = fmt.Sprintf("%s_%d", name, now.UnixNano())
	meta.Timestamp = now
	meta.Steps = result.StepsTaken
	meta.Contacts = result.Contacts
	meta.Degenerate = result.Degenerate
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteSeries(csvFile, result.Samples); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// WriteSeries writes samples as CSV with a header row.
func WriteSeries(out io.Writer, samples []sim.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write(seriesHeader); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatFloat(smp.Time, 'f', 6, 64),
			strconv.FormatFloat(smp.KineticEnergy, 'f', 6, 64),
			strconv.FormatFloat(smp.MomentumX, 'f', 6, 64),
			strconv.FormatFloat(smp.MomentumY, 'f', 6, 64),
			strconv.Itoa(smp.Contacts),
			strconv.Itoa(smp.Moving),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads the samples of a run. Malformed rows are skipped.
func (s *Store) LoadSeries(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, ErrNoSeries
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		smp, ok := parseSample(record)
		if !ok {
			continue
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

func parseSample(record []string) (sim.Sample, bool) {
	if len(record) != len(seriesHeader) {
		return sim.Sample{}, false
	}
	var f [4]float64
	for i := range f {
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return sim.Sample{}, false
		}
		f[i] = v
	}
	contacts, err := strconv.Atoi(record[4])
	if err != nil {
		return sim.Sample{}, false
	}
	moving, err := strconv.Atoi(record[5])
	if err != nil {
		return sim.Sample{}, false
	}
	return sim.Sample{
		Time:          f[0],
		KineticEnergy: f[1],
		MomentumX:     f[2],
		MomentumY:     f[3],
		Contacts:      contacts,
		Moving:        moving,
	}, true
}
