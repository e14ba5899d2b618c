// Package scenario loads grid search scenarios from YAML files and renders
// their results as text maps.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

// MaxCells bounds the size of a grid built from a scenario.
const MaxCells = 1 << 24

// CheckSize rejects grids with more than MaxCells cells.
func CheckSize(width, height int) error {
	if width > 0 && height > 0 && width > MaxCells/height {
		return fmt.Errorf("grid %dx%d exceeds %d cells: %w", width, height, MaxCells, gridpath.ErrInvalidInput)
	}
	return nil
}

// Scenario is the file format. Either Map or Width/Height must be set; when
// both are, they have to agree. Cells are [x, y] pairs.
type Scenario struct {
	Width    int      `yaml:"width,omitempty" json:"width,omitempty"`
	Height   int      `yaml:"height,omitempty" json:"height,omitempty"`
	Map      []string `yaml:"map,omitempty" json:"map,omitempty"`
	Blocked  [][2]int `yaml:"blocked,omitempty" json:"blocked,omitempty"`
	Start    [2]int   `yaml:"start" json:"start"`
	Goal     [2]int   `yaml:"goal" json:"goal"`
	Diagonal string   `yaml:"diagonal,omitempty" json:"diagonal,omitempty"`
}

// Built is a scenario turned into search inputs.
type Built struct {
	Grid     *gridpath.Cells
	Start    gridpath.Coord
	Goal     gridpath.Coord
	Diagonal gridpath.DiagonalMovement
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %q: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML, rejecting unknown fields.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, fmt.Errorf("empty scenario: %w", gridpath.ErrInvalidInput)
		}
		return Scenario{}, fmt.Errorf("yaml decode: %w", err)
	}
	return s, nil
}

// Marshal encodes s as YAML.
func Marshal(s Scenario) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}

// FromCells captures a grid and endpoints as a Map-based scenario.
func FromCells(grid *gridpath.Cells, start, goal gridpath.Coord, diagonal gridpath.DiagonalMovement) Scenario {
	return Scenario{
		Map:      strings.Split(grid.String(), "\n"),
		Start:    [2]int{start.X, start.Y},
		Goal:     [2]int{goal.X, goal.Y},
		Diagonal: diagonal.String(),
	}
}

// Build creates the grid and endpoints described by s.
func (s Scenario) Build() (Built, error) {
	diagonal, err := gridpath.ParseDiagonalMovement(s.Diagonal)
	if err != nil {
		return Built{}, err
	}

	if err := CheckSize(s.Width, s.Height); err != nil {
		return Built{}, err
	}

	var grid *gridpath.Cells
	if len(s.Map) > 0 {
		if err := CheckSize(len([]rune(s.Map[0])), len(s.Map)); err != nil {
			return Built{}, err
		}
		grid, err = gridpath.ParseCells(s.Map)
		if err != nil {
			return Built{}, err
		}
		if (s.Width != 0 && s.Width != grid.Width()) || (s.Height != 0 && s.Height != grid.Height()) {
			return Built{}, fmt.Errorf("map is %dx%d but size says %dx%d: %w",
				grid.Width(), grid.Height(), s.Width, s.Height, gridpath.ErrInvalidInput)
		}
	} else {
		grid, err = gridpath.NewCells(s.Width, s.Height)
		if err != nil {
			return Built{}, err
		}
	}

	for _, cell := range s.Blocked {
		if err := grid.SetWalkable(gridpath.Coord{X: cell[0], Y: cell[1]}, false); err != nil {
			return Built{}, fmt.Errorf("blocked cell: %w", err)
		}
	}

	return Built{
		Grid:     grid,
		Start:    gridpath.Coord{X: s.Start[0], Y: s.Start[1]},
		Goal:     gridpath.Coord{X: s.Goal[0], Y: s.Goal[1]},
		Diagonal: diagonal,
	}, nil
}
