// Package beatgrid reads the beat timeline of a Rocksmith arrangement and
// snaps times onto its subdivisions.
package beatgrid

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// sixteenth notes in 4/4
const DefaultResolution = 16

var ebeatExpr = xpath.MustCompile(`/*/ebeats/ebeat`)

var ErrBeatmap = errors.New("invalid beatmap")

// BeatmapError reports an unusable beat file. Callers normally log it and
// continue with an empty grid.
type BeatmapError struct {
	Path   string
	Reason string
	Err    error
}

func (e *BeatmapError) Error() string {
	msg := "beatmap: " + e.Reason
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *BeatmapError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrBeatmap, e.Err}
	}
	return []error{ErrBeatmap}
}

// ascending, duplicate-free beat times in seconds. The empty grid snaps
// every time to itself.
type Grid []float64

func ParseFile(path string) (Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BeatmapError{Path: path, Reason: "unreadable file", Err: err}
	}

	grid, err := Parse(data)
	if err != nil {
		var be *BeatmapError
		if errors.As(err, &be) {
			be.Path = path
		}
		return nil, err
	}
	return grid, nil
}

// Parse extracts every ebeat time under the root's ebeats element. A
// document without ebeats yields an empty grid; any unparsable time fails
// the whole beatmap.
func Parse(data []byte) (Grid, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &BeatmapError{Reason: "invalid XML", Err: err}
	}

	nodes := xmlquery.QuerySelectorAll(doc, ebeatExpr)
	grid := make(Grid, 0, len(nodes))
	for i, n := range nodes {
		raw := n.SelectAttr("time")
		t, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &BeatmapError{Reason: fmt.Sprintf("ebeat %d has invalid time %q", i, raw), Err: err}
		}
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, &BeatmapError{Reason: fmt.Sprintf("ebeat %d has invalid time %q", i, raw)}
		}
		grid = append(grid, t)
	}

	slices.Sort(grid)
	return slices.Compact(grid), nil
}

// Snap moves t to the nearest subdivision of the beat interval containing
// it. Times before the first beat or after the last clamp to that beat.
// Equidistant candidates resolve to the earlier one.
func (g Grid) Snap(t float64, resolution int) float64 {
	if len(g) == 0 {
		return t
	}

	idx := sort.Search(len(g), func(i int) bool { return g[i] > t })
	if idx == 0 {
		return g[0]
	}
	if idx >= len(g) {
		return g[len(g)-1]
	}

	t1, t2 := g[idx-1], g[idx]
	subdivisions := max(resolution/4, 1)
	step := (t2 - t1) / float64(subdivisions)

	best := t1
	bestDist := math.Abs(t1 - t)
	for i := 1; i <= subdivisions; i++ {
		candidate := t1 + float64(i)*step
		if d := math.Abs(candidate - t); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// length of one 4/4 measure estimated from the first beat interval
func (g Grid) MeasureDuration() float64 {
	if len(g) < 2 {
		return 0
	}
	return 4 * (g[1] - g[0])
}
