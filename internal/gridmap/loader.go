package gridmap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"
)

// Load reads layout.csv, objects.csv and collision.csv from dir inside fsys.
func Load(fsys fs.FS, dir string) (*GridMap, error) {
	var sources [3]io.ReadCloser
	defer func() {
		for _, src := range sources {
			if src != nil {
				src.Close()
			}
		}
	}()

	for l := Layout; l <= Collision; l++ {
		name := path.Join(dir, l.String()+".csv")
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		sources[l] = f
	}

	return Parse(sources[Layout], sources[Objects], sources[Collision])
}

// Parse builds a GridMap from three CSV sources. Each line is a row and each
// comma-separated field a cell: empty fields become Blank, otherwise the first
// character after trimming spaces is kept.
func Parse(layout, objects, collision io.Reader) (*GridMap, error) {
	var grids [3][][]rune
	for l, r := range []io.Reader{layout, objects, collision} {
		grid, err := readGrid(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, Layer(l), err)
		}
		grids[l] = grid
	}
	return newGridMap(grids[Layout], grids[Objects], grids[Collision])
}

func readGrid(r io.Reader) ([][]rune, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var grid [][]rune
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]rune, len(record))
		for i, field := range record {
			row[i] = toCell(field)
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, errors.New("no rows")
	}
	return grid, nil
}

func toCell(field string) rune {
	field = strings.TrimSpace(field)
	if field == "" {
		return Blank
	}
	c, _ := utf8.DecodeRuneInString(field)
	return c
}
