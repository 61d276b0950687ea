package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/galaxy/config"
	"github.com/pthm-cable/galaxy/galaxy"
)

// RegenRecord is one row of regenerations.csv.
type RegenRecord struct {
	ID         uint64 `csv:"id"`
	Seed       int64  `csv:"seed"`
	Outcome    string `csv:"outcome"`
	DurationUS int64  `csv:"duration_us"`
	Error      string `csv:"error"`

	Count           int     `csv:"count"`
	Branches        int     `csv:"branches"`
	Radius          float64 `csv:"radius"`
	Spin            float64 `csv:"spin"`
	Randomness      float64 `csv:"randomness"`
	RandomnessPower float64 `csv:"randomness_power"`
	InsideColor     string  `csv:"inside_color"`
	OutsideColor    string  `csv:"outside_color"`

	FieldStats
}

// NewRegenRecord flattens a finished regeneration. Stats are only computed
// for installed fields.
func NewRegenRecord(r galaxy.Regeneration) RegenRecord {
	rec := RegenRecord{
		ID:              r.ID,
		Seed:            r.Seed,
		Outcome:         string(r.Outcome),
		DurationUS:      r.Duration.Microseconds(),
		Count:           r.Params.Count,
		Branches:        r.Params.Branches,
		Radius:          r.Params.Radius,
		Spin:            r.Params.Spin,
		Randomness:      r.Params.Randomness,
		RandomnessPower: r.Params.RandomnessPower,
		InsideColor:     r.Params.InsideColor.Hex(),
		OutsideColor:    r.Params.OutsideColor.Hex(),
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	if r.Outcome == galaxy.OutcomeInstalled && r.Field != nil {
		rec.FieldStats = ComputeFieldStats(r.Field, r.Params.Radius)
	}
	return rec
}

// csvFile appends records to one CSV file, writing the header once.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func (c *csvFile) write(records any) error {
	if !c.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, c.f); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, c.f)
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir   string
	regen csvFile
	perf  csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "regenerations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating regenerations.csv: %w", err)
	}
	om.regen.f = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.regen.f.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perf.f = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRegeneration appends a record to regenerations.csv.
func (om *OutputManager) WriteRegeneration(rec RegenRecord) error {
	if om == nil {
		return nil
	}
	if err := om.regen.write([]RegenRecord{rec}); err != nil {
		return fmt.Errorf("writing regeneration: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int64) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(frame)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.regen.f, om.perf.f} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
