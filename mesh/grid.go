package mesh

import "fmt"

// NewStructuredGrid builds a rectilinear hexahedral mesh from per-axis
// cell sizes, with the origin at (0,0,0). Cells are ordered x fastest,
// then y, then z, matching the point numbering.
func NewStructuredGrid(dx, dy, dz []float64) (*Mesh, error) {
	nx, ny, nz := len(dx), len(dy), len(dz)
	if nx == 0 || ny == 0 || nz == 0 {
		return nil, fmt.Errorf("structured grid needs at least one cell per axis")
	}
	for _, axis := range [][]float64{dx, dy, dz} {
		for _, h := range axis {
			if h <= 0 {
				return nil, fmt.Errorf("cell sizes must be positive, got %g", h)
			}
		}
	}

	xs := cumulate(dx)
	ys := cumulate(dy)
	zs := cumulate(dz)

	points := make([][]float64, 0, len(xs)*len(ys)*len(zs))
	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				points = append(points, []float64{x, y, z})
			}
		}
	}

	pidx := func(i, j, k int) int {
		return i + j*(nx+1) + k*(nx+1)*(ny+1)
	}
	cells := make([][]int, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				cells = append(cells, []int{
					pidx(i, j, k), pidx(i+1, j, k), pidx(i+1, j+1, k), pidx(i, j+1, k),
					pidx(i, j, k+1), pidx(i+1, j, k+1), pidx(i+1, j+1, k+1), pidx(i, j+1, k+1),
				})
			}
		}
	}
	return NewMesh(points, []CellBlock{{Shape: Hexahedron, Cells: cells}})
}

func cumulate(h []float64) []float64 {
	out := make([]float64, len(h)+1)
	for i, v := range h {
		out[i+1] = out[i] + v
	}
	return out
}
