package pool

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadPoolsFromDataDir loads CSV files from a data directory (best-effort).
// pools.csv and custom_pools.csv are both optional, but at least one must exist.
func LoadPoolsFromDataDir(dataDir string) ([]Person, error) {
	files := []string{
		filepath.Join(dataDir, "pools.csv"),
		filepath.Join(dataDir, "custom_pools.csv"),
	}

	var all []Person
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			// skip missing files
			continue
		}
		found = true
		ps, err := loadSingleCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, ps...)
	}
	if !found {
		return nil, fmt.Errorf("no pool CSVs found in %s", dataDir)
	}
	return all, nil
}

func loadSingleCSV(path string) ([]Person, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("csv %s has no name column", path)
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Person{}
	for _, row := range rows[1:] {
		p := Person{
			Name:  get(row, "name"),
			Party: get(row, "party"),
			Pool:  get(row, "pool"),
		}
		if p.Name == "" {
			continue
		}
		if p.Pool == "" {
			p.Pool = "custom"
		}
		out = append(out, p)
	}
	return out, nil
}
