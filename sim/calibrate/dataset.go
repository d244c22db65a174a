package calibrate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ColumnMap names the CSV columns that feed a Record. Defaults match the
// Québec ER open-data export the simulator was built around.
type ColumnMap struct {
	Facility           string
	Timestamp          string
	FunctionalBeds     string
	OccupiedBeds       string
	StretcherWaitHours string
}

// DefaultColumns returns the column names of the provincial dataset.
func DefaultColumns() ColumnMap {
	return ColumnMap{
		Facility:           "Nom_installation",
		Timestamp:          "Mise_a_jour",
		FunctionalBeds:     "Nombre_de_civieres_fonctionnelles",
		OccupiedBeds:       "Nombre_de_civieres_occupees",
		StretcherWaitHours: "DMS_sur_civiere",
	}
}

// LoadDataset reads and merges one or more CSV exports into a single record
// set, sorted by facility then timestamp. Files that cannot be opened or
// parsed are skipped with a warning; rows missing the facility column are
// dropped silently. Returns an error only when nothing loads at all.
func LoadDataset(paths []string, cols ColumnMap) ([]Record, error) {
	var records []Record
	loaded := 0
	for _, path := range paths {
		rows, err := loadCSV(path, cols)
		if err != nil {
			logrus.Warnf("skipping %s: %v", path, err)
			continue
		}
		records = append(records, rows...)
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no dataset files could be read (tried %d)", len(paths))
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Facility != records[j].Facility {
			return records[i].Facility < records[j].Facility
		}
		return records[i].Timestamp < records[j].Timestamp
	})
	logrus.Infof("loaded %d records from %d file(s)", len(records), loaded)
	return records, nil
}

func loadCSV(path string, cols ColumnMap) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells coerce to missing

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	facilityCol, ok := idx[cols.Facility]
	if !ok {
		return nil, fmt.Errorf("missing facility column %q", cols.Facility)
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	base := filepathBase(path)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if facilityCol >= len(row) || strings.TrimSpace(row[facilityCol]) == "" {
			continue
		}
		records = append(records, Record{
			Facility:           row[facilityCol],
			Timestamp:          cell(row, cols.Timestamp),
			FunctionalBeds:     cell(row, cols.FunctionalBeds),
			OccupiedBeds:       cell(row, cols.OccupiedBeds),
			StretcherWaitHours: cell(row, cols.StretcherWaitHours),
			SourceFile:         base,
		})
	}
	return records, nil
}

func filepathBase(path string) string {
	if i := strings.LastIndexAny(path, "/\\"); i >= 0 {
		return path[i+1:]
	}
	return path
}
