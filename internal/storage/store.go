package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jdf43/pele/internal/landscape"
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
	ID         string    `json:"id"`
	Model      string    `json:"model"`
	Timestamp  time.Time `json:"timestamp"`
	NumAtoms   int       `json:"num_atoms"`
	NDim       int       `json:"ndim"`
	Iterations int       `json:"iterations"`
	Energy     float64   `json:"energy"`
	GradRMS    float64   `json:"grad_rms"`
	Converged  bool      `json:"converged"`
}

// TrajectoryPoint is one minimizer iteration.
type TrajectoryPoint struct {
	Iter    int
	Energy  float64
	GradRMS float64
}

// Save writes a run directory holding metadata.json, the per-iteration
// trajectory and the final coordinates, and returns the run id.
func (s *Store) Save(meta RunMetadata, trajectory []TrajectoryPoint, coords landscape.Coords) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	if err := s.writeTrajectory(filepath.Join(runDir, "trajectory.csv"), trajectory); err != nil {
		return "", err
	}
	if err := s.writeCoords(filepath.Join(runDir, "coords.csv"), coords, meta.NDim); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeTrajectory(path string, trajectory []TrajectoryPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"iter", "energy", "grad_rms"}); err != nil {
		return err
	}
	for _, p := range trajectory {
		row := []string{
			strconv.Itoa(p.Iter),
			strconv.FormatFloat(p.Energy, 'g', 12, 64),
			strconv.FormatFloat(p.GradRMS, 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeCoords(path string, coords landscape.Coords, ndim int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := make([]string, ndim)
	for k := 0; k < ndim; k++ {
		header[k] = fmt.Sprintf("x%d", k)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i+ndim <= len(coords); i += ndim {
		row := make([]string, ndim)
		for k := 0; k < ndim; k++ {
			row[k] = strconv.FormatFloat(coords[i+k], 'g', 12, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

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
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads the per-iteration energy record of a run.
func (s *Store) LoadTrajectory(runID string) ([]TrajectoryPoint, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]TrajectoryPoint, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		iter, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		e, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue
		}
		g, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}
		points = append(points, TrajectoryPoint{Iter: iter, Energy: e, GradRMS: g})
	}
	return points, nil
}
