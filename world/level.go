package world

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/traverse/probe"
	"gopkg.in/yaml.v3"
)

// levelFile is the YAML representation of a world. Rows of a room are listed from north to south, and
// each character of a row is one sector from west to east, looked up in the room's legend. The '#'
// character is a wall unless the legend says otherwise.
type levelFile struct {
	Rooms []roomFile `yaml:"rooms"`
}

type roomFile struct {
	ID      int16                 `yaml:"id"`
	Origin  [2]int32              `yaml:"origin"`
	Flags   []string              `yaml:"flags"`
	Rows    []string              `yaml:"rows"`
	Legend  map[string]sectorFile `yaml:"legend"`
	Statics [][6]float32          `yaml:"statics"`
	Poles   [][6]float32          `yaml:"poles"`
}

type sectorFile struct {
	Wall         bool     `yaml:"wall"`
	Floor        int32    `yaml:"floor"`
	Ceiling      int32    `yaml:"ceiling"`
	FloorSlope   bool     `yaml:"floor_slope"`
	CeilingSlope bool     `yaml:"ceiling_slope"`
	Flags        []string `yaml:"flags"`
}

var sectorFlags = map[string]probe.SectorFlags{
	"death":        probe.Death,
	"monkey_swing": probe.MonkeySwing,
	"climb_north":  probe.ClimbNorth,
	"climb_east":   probe.ClimbEast,
	"climb_south":  probe.ClimbSouth,
	"climb_west":   probe.ClimbWest,
}

var roomFlags = map[string]probe.RoomFlags{
	"swamp": probe.Swamp,
	"water": probe.Water,
}

// Load reads the YAML level file at path into a new world.
func Load(path string, log *slog.Logger) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading level: %w", err)
	}
	w, err := Decode(bytes.NewReader(data), log)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return w, nil
}

// Decode reads a YAML level from r into a new world.
func Decode(r io.Reader, log *slog.Logger) (*World, error) {
	var level levelFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&level); err != nil {
		return nil, fmt.Errorf("error decoding level: %w", err)
	}
	if len(level.Rooms) == 0 {
		return nil, fmt.Errorf("level has no rooms")
	}

	w := New(log)
	seen := make(map[int16]struct{}, len(level.Rooms))
	for _, rf := range level.Rooms {
		if _, ok := seen[rf.ID]; ok {
			w.Close()
			return nil, fmt.Errorf("duplicate room %d", rf.ID)
		}
		seen[rf.ID] = struct{}{}

		room, err := rf.room()
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("room %d: %w", rf.ID, err)
		}
		w.AddRoom(room)
	}
	return w, nil
}

func (rf roomFile) room() (*Room, error) {
	depth := int32(len(rf.Rows))
	if depth == 0 {
		return nil, fmt.Errorf("room has no rows")
	}
	width := int32(len(rf.Rows[0]))

	legend := make(map[byte]Sector, len(rf.Legend)+1)
	legend['#'] = Wall
	for key, sf := range rf.Legend {
		if len(key) != 1 {
			return nil, fmt.Errorf("legend key %q must be a single character", key)
		}
		s, err := sf.sector()
		if err != nil {
			return nil, fmt.Errorf("legend %q: %w", key, err)
		}
		legend[key[0]] = s
	}

	sectors := make([]Sector, 0, width*depth)
	// The last row is the southern edge of the room, which is local row 0.
	for z := depth - 1; z >= 0; z-- {
		row := rf.Rows[z]
		if int32(len(row)) != width {
			return nil, fmt.Errorf("row %d has %d sectors, expected %d", z, len(row), width)
		}
		for x := range len(row) {
			s, ok := legend[row[x]]
			if !ok {
				return nil, fmt.Errorf("row %d: unknown sector %q", z, row[x])
			}
			sectors = append(sectors, s)
		}
	}

	var flags probe.RoomFlags
	for _, name := range rf.Flags {
		f, ok := roomFlags[name]
		if !ok {
			return nil, fmt.Errorf("unknown room flag %q", name)
		}
		flags |= f
	}

	r := NewRoom(rf.ID, rf.Origin[0], rf.Origin[1], width, depth, sectors)
	r.Flags = flags
	r.Statics = boxes(rf.Statics)
	r.Poles = boxes(rf.Poles)
	return r, nil
}

func (sf sectorFile) sector() (Sector, error) {
	if sf.Wall {
		return Wall, nil
	}
	if sf.Ceiling > sf.Floor {
		return Sector{}, fmt.Errorf("ceiling %d is below floor %d", sf.Ceiling, sf.Floor)
	}

	s := Sector{
		Floor:        sf.Floor,
		Ceiling:      sf.Ceiling,
		FloorSlope:   sf.FloorSlope,
		CeilingSlope: sf.CeilingSlope,
	}
	for _, name := range sf.Flags {
		f, ok := sectorFlags[name]
		if !ok {
			return Sector{}, fmt.Errorf("unknown sector flag %q", name)
		}
		s.Flags |= f
	}
	return s, nil
}

func boxes(raw [][6]float32) []cube.BBox {
	if len(raw) == 0 {
		return nil
	}
	out := make([]cube.BBox, len(raw))
	for i, b := range raw {
		out[i] = cube.Box(b[0], b[1], b[2], b[3], b[4], b[5])
	}
	return out
}
