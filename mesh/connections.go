package mesh

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/subsurf/gotough/utils"
)

// NodalDistance selects how the distance from a cell center to the
// connection interface is measured.
type NodalDistance int

const (
	// DistanceLine intersects the center-to-center line with the
	// interface plane and measures to the intersection point.
	DistanceLine NodalDistance = iota
	// DistanceOrthogonal measures the perpendicular distance from
	// each center to the interface plane.
	DistanceOrthogonal
)

// BoundaryDistance replaces the geometric nodal distance on the side
// of a cell flagged as a fixed-state boundary element, placing it
// directly at the interface.
const BoundaryDistance = 1.0e-9

// ValueError reports an invalid enumerated option, such as a nodal
// distance mode outside the declared set.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return e.Msg }

// ConnectionRecord describes one interface between two adjacent cells.
// Records are created once per unordered cell pair and never mutated.
type ConnectionRecord struct {
	Label1, Label2 string
	I, J           int // cell indices
	Isot           int // anisotropy axis code, 1..3
	D1, D2         float64
	Area           float64
	Beta           float64 // cosine of the angle to the vertical
}

// gravity is the fixed vertical unit vector the connection angle is
// measured against.
var gravity = [3]float64{0, 0, 1}

// DeriveConnections emits exactly one ConnectionRecord per unique pair
// of adjacent cells. Cells are processed in increasing index order and
// marked visited after their slots are scanned, which suppresses the
// symmetric duplicate from the neighbor's own pass. A cell with no
// neighbor on any slot is reported as isolated and contributes no
// records.
func (m *Mesh) DeriveConnections(mode NodalDistance) ([]ConnectionRecord, error) {
	if mode != DistanceLine && mode != DistanceOrthogonal {
		return nil, &ValueError{Msg: fmt.Sprintf("unsupported nodal distance mode %d", mode)}
	}
	fg := m.ComputeFaceGeometry()
	bc := m.BoundaryFlags()

	type pair struct {
		i, j, slot int
	}
	var pairs []pair
	visited := make([]bool, m.NumCells)
	for i := 0; i < m.NumCells; i++ {
		connected := false
		for slot, j := range m.Neighbors[i] {
			if j == NoNeighbor {
				continue
			}
			connected = true
			if visited[j] {
				continue
			}
			if !fg.Valid[i][slot] {
				return nil, fmt.Errorf("degenerate interface between cells '%s' and '%s'", m.Labels[i], m.Labels[j])
			}
			pairs = append(pairs, pair{i, j, slot})
		}
		if !connected {
			slog.Warn("cell is not connected to the grid", "label", m.Labels[i])
		}
		visited[i] = true
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	// Gather per-connection geometry into Nx3 matrices and compute
	// lines, angles and distances in whole-collection passes.
	n := len(pairs)
	C1 := mat.NewDense(n, 3, nil)
	C2 := mat.NewDense(n, 3, nil)
	P0 := mat.NewDense(n, 3, nil)
	N := mat.NewDense(n, 3, nil)
	for r, p := range pairs {
		C1.SetRow(r, m.Centers[p.i])
		C2.SetRow(r, m.Centers[p.j])
		slot := m.Faces[p.i][p.slot]
		P0.SetRow(r, m.Points[slot.Vertices[0]])
		nv := fg.Normals[p.i][p.slot]
		N.SetRow(r, nv[:])
	}

	lines := utils.RowSub(C2, C1)
	lineMag := utils.RowNorm(lines)

	var d1, d2 []float64
	switch mode {
	case DistanceLine:
		num := utils.RowDot(utils.RowSub(P0, C1), N)
		den := utils.RowDot(lines, N)
		t := mat.NewVecDense(n, nil)
		for r := 0; r < n; r++ {
			if den.AtVec(r) == 0 {
				p := pairs[r]
				return nil, fmt.Errorf("center line between cells '%s' and '%s' is parallel to their interface", m.Labels[p.i], m.Labels[p.j])
			}
			t.SetVec(r, num.AtVec(r)/den.AtVec(r))
		}
		FP := utils.RowAddScaled(C1, lines, t)
		d1 = utils.RowNorm(utils.RowSub(C1, FP)).RawVector().Data
		d2 = utils.RowNorm(utils.RowSub(C2, FP)).RawVector().Data
	case DistanceOrthogonal:
		v1 := utils.RowDot(utils.RowSub(C1, P0), N)
		v2 := utils.RowDot(utils.RowSub(C2, P0), N)
		d1 = make([]float64, n)
		d2 = make([]float64, n)
		for r := 0; r < n; r++ {
			d1[r] = math.Abs(v1.AtVec(r))
			d2[r] = math.Abs(v2.AtVec(r))
		}
	}

	records := make([]ConnectionRecord, n)
	for r, p := range pairs {
		rec := ConnectionRecord{
			Label1: m.Labels[p.i],
			Label2: m.Labels[p.j],
			I:      p.i,
			J:      p.j,
			Isot:   isotCode(lines.RawRowView(r)),
			D1:     d1[r],
			D2:     d2[r],
			Area:   fg.Areas[p.i][p.slot],
			Beta: (lines.At(r, 0)*gravity[0] + lines.At(r, 1)*gravity[1] +
				lines.At(r, 2)*gravity[2]) / lineMag.AtVec(r),
		}
		if bc[p.i] {
			rec.D1 = BoundaryDistance
		}
		if bc[p.j] {
			rec.D2 = BoundaryDistance
		}
		records[r] = rec
	}
	return records, nil
}

// isotCode returns the 1-based axis index when the center line runs
// along exactly one coordinate axis, and 1 for any other orientation.
func isotCode(line []float64) int {
	nonzero, axis := 0, 0
	for d, v := range line {
		if v != 0 {
			nonzero++
			axis = d
		}
	}
	if nonzero == 1 {
		return axis + 1
	}
	return 1
}
