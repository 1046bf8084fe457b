package mesh

import (
	"gonum.org/v1/gonum/mat"

	"github.com/subsurf/gotough/utils"
)

// FaceGeometry carries the unit normal, area and validity flag of
// every face slot, aligned with Mesh.Faces. Degenerate faces (zero
// area) are flagged invalid and keep a zero normal; callers must not
// use the normal of an invalid slot.
type FaceGeometry struct {
	Normals [][][3]float64
	Areas   [][]float64
	Valid   [][]bool
}

type faceRef struct {
	cell, slot int
}

// ComputeFaceGeometry derives normals and areas for all faces.
// Triangles and quads are grouped separately and each group is
// processed as one batched cross-product pass; a quad is split along
// the (0,2) diagonal and its normal taken from the first triangle.
func (m *Mesh) ComputeFaceGeometry() *FaceGeometry {
	var (
		triRefs, quadRefs []faceRef
		triV              [3][]int
		quadV             [4][]int
	)
	for i := 0; i < m.NumCells; i++ {
		for k, slot := range m.Faces[i] {
			switch slot.N {
			case 3:
				triRefs = append(triRefs, faceRef{i, k})
				for p := 0; p < 3; p++ {
					triV[p] = append(triV[p], slot.Vertices[p])
				}
			case 4:
				quadRefs = append(quadRefs, faceRef{i, k})
				for p := 0; p < 4; p++ {
					quadV[p] = append(quadV[p], slot.Vertices[p])
				}
			}
		}
	}

	fg := &FaceGeometry{
		Normals: make([][][3]float64, m.NumCells),
		Areas:   make([][]float64, m.NumCells),
		Valid:   make([][]bool, m.NumCells),
	}
	for i := 0; i < m.NumCells; i++ {
		n := len(m.Faces[i])
		fg.Normals[i] = make([][3]float64, n)
		fg.Areas[i] = make([]float64, n)
		fg.Valid[i] = make([]bool, n)
	}

	if len(triRefs) > 0 {
		normals, mags := m.triangleNormals(triV[0], triV[1], triV[2])
		fg.scatter(triRefs, normals, mags, nil)
	}
	if len(quadRefs) > 0 {
		normals, mags := m.triangleNormals(quadV[0], quadV[1], quadV[2])
		_, mags2 := m.triangleNormals(quadV[0], quadV[2], quadV[3])
		fg.scatter(quadRefs, normals, mags, mags2)
	}
	return fg
}

// triangleNormals computes cross(v1-v0, v2-v0) and its magnitude for
// every triangle in one batch.
func (m *Mesh) triangleNormals(i0, i1, i2 []int) (*mat.Dense, *mat.VecDense) {
	V0 := utils.RowsFromPoints(m.Points, i0)
	V1 := utils.RowsFromPoints(m.Points, i1)
	V2 := utils.RowsFromPoints(m.Points, i2)
	N := utils.RowCross(utils.RowSub(V1, V0), utils.RowSub(V2, V0))
	return N, utils.RowNorm(N)
}

// scatter reorganizes batched group results back into per-cell,
// per-slot order. mags2 is the second-triangle magnitude for quads,
// nil for triangles.
func (fg *FaceGeometry) scatter(refs []faceRef, normals *mat.Dense, mags, mags2 *mat.VecDense) {
	for r, ref := range refs {
		mag := mags.AtVec(r)
		area := mag
		if mags2 != nil {
			area += mags2.AtVec(r)
		}
		fg.Areas[ref.cell][ref.slot] = 0.5 * area
		if mag > 0 {
			fg.Normals[ref.cell][ref.slot] = [3]float64{
				normals.At(r, 0) / mag,
				normals.At(r, 1) / mag,
				normals.At(r, 2) / mag,
			}
			fg.Valid[ref.cell][ref.slot] = true
		}
	}
}
