package leveldata

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/automoto/ringrush/shared/terrain"
)

// ReadGrid parses a CSV tile layer as exported by Tiled: one row per line,
// integer tile ids, -1 for empty. Rows may differ in length.
func ReadGrid(r io.Reader) (terrain.Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv grid: %w", err)
	}

	var grid terrain.Grid
	for row, rec := range records {
		ids := make([]int, 0, len(rec))
		for col, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				// Trailing comma
				continue
			}
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("read csv grid: cell (%d,%d): %w", col, row, err)
			}
			ids = append(ids, id)
		}
		grid = append(grid, ids)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	return grid, nil
}

// LoadGrid reads a CSV tile layer from fsys.
func LoadGrid(fsys fs.FS, name string) (terrain.Grid, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open grid %s: %w", name, err)
	}
	defer f.Close()

	grid, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("load grid %s: %w", name, err)
	}
	return grid, nil
}

// gridSize returns the widest row and the row count.
func gridSize(g terrain.Grid) (cols, rows int) {
	for _, r := range g {
		cols = max(cols, len(r))
	}
	return cols, len(g)
}
