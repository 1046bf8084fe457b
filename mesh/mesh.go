package mesh

import (
	"fmt"
	"sort"
)

// Shape identifies the polyhedral cell types the writer supports.
type Shape int

const (
	Tetra Shape = iota
	Pyramid
	Wedge
	Hexahedron
)

func (s Shape) String() string {
	return [...]string{"Tetra", "Pyramid", "Wedge", "Hexahedron"}[s]
}

// NumVertices returns the vertex count of one cell of this shape.
func (s Shape) NumVertices() int {
	return [...]int{4, 5, 6, 8}[s]
}

// CellBlock groups cells of one shape, each cell an ordered tuple of
// point indices.
type CellBlock struct {
	Shape Shape
	Cells [][]int
}

// NoNeighbor marks a face slot with no neighboring cell (exterior
// boundary). The same sentinel pads face slots of triangular faces.
const NoNeighbor = -1

// MaxFaceVertices is the slot width; triangular faces leave the last
// entry at NoNeighbor.
const MaxFaceVertices = 4

// FaceSlot is one side of a cell: up to four point indices, padded
// with NoNeighbor, plus the count of valid vertices (3 or 4).
type FaceSlot struct {
	Vertices [MaxFaceVertices]int
	N        int
}

// Mesh is an unstructured 3-D polyhedral mesh plus the derived
// quantities the TOUGH writer consumes. Face slot k of a cell and
// neighbor slot k of the same cell describe the same interface.
type Mesh struct {
	Points   [][]float64 // point coordinates [npoints][3]
	Blocks   []CellBlock // cells partitioned by shape
	CellData map[string][]float64

	// MaterialNames resolves material ids from CellData to rock
	// names; cells keep their numeric id when absent.
	MaterialNames map[int]string

	// InitialConditions holds the primary thermodynamic variables per
	// cell for the INCON block; nil when the mesh carries none.
	InitialConditions [][]float64

	// Derived per cell at construction.
	Labels  []string
	Centers [][]float64
	Volumes []float64

	// Faces and Neighbors are slot aligned: Neighbors[i][k] is the
	// cell sharing Faces[i][k], or NoNeighbor.
	Faces     [][]FaceSlot
	Neighbors [][]int

	NumCells  int
	NumPoints int

	shapes []Shape
	cells  [][]int // flattened cell-to-point connectivity
}

// NewMesh builds a mesh from points and shape-grouped cells, derives
// labels, centers, volumes and face slots, and resolves cell-to-cell
// connectivity.
func NewMesh(points [][]float64, blocks []CellBlock) (*Mesh, error) {
	m := &Mesh{
		Points:    points,
		Blocks:    blocks,
		CellData:  make(map[string][]float64),
		NumPoints: len(points),
	}
	for bi, p := range points {
		if len(p) != 3 {
			return nil, fmt.Errorf("point %d: expected 3 coordinates, got %d", bi, len(p))
		}
	}
	for _, b := range blocks {
		want := b.Shape.NumVertices()
		for _, c := range b.Cells {
			if len(c) != want {
				return nil, fmt.Errorf("%s cell: expected %d vertices, got %d", b.Shape, want, len(c))
			}
			for _, v := range c {
				if v < 0 || v >= m.NumPoints {
					return nil, fmt.Errorf("%s cell: point index %d out of range", b.Shape, v)
				}
			}
			m.shapes = append(m.shapes, b.Shape)
			m.cells = append(m.cells, c)
		}
	}
	m.NumCells = len(m.cells)
	if m.NumCells == 0 {
		return nil, fmt.Errorf("mesh has no cells")
	}
	if m.NumCells > maxLabels {
		return nil, fmt.Errorf("mesh has %d cells, label space holds %d", m.NumCells, maxLabels)
	}

	m.Labels = make([]string, m.NumCells)
	m.Centers = make([][]float64, m.NumCells)
	m.Volumes = make([]float64, m.NumCells)
	m.Faces = make([][]FaceSlot, m.NumCells)
	for i := 0; i < m.NumCells; i++ {
		m.Labels[i] = CellLabel(i)
		m.Centers[i] = m.cellCenter(i)
		m.Volumes[i] = m.cellVolume(i)
		m.Faces[i] = cellFaces(m.shapes[i], m.cells[i])
	}
	m.BuildConnectivity()
	return m, nil
}

// AttachCellData adds a named per-cell attribute array, e.g. material
// ids or boundary-condition flags.
func (m *Mesh) AttachCellData(name string, values []float64) error {
	if len(values) != m.NumCells {
		return fmt.Errorf("cell data '%s': length %d does not match cell count %d", name, len(values), m.NumCells)
	}
	m.CellData[name] = values
	return nil
}

// AttachInitialConditions sets the per-cell primary variable arrays
// used by the INCON block.
func (m *Mesh) AttachInitialConditions(values [][]float64) error {
	if len(values) != m.NumCells {
		return fmt.Errorf("initial conditions: length %d does not match cell count %d", len(values), m.NumCells)
	}
	m.InitialConditions = values
	return nil
}

// Shape returns the shape of cell i.
func (m *Mesh) Shape(i int) Shape { return m.shapes[i] }

// CellPoints returns the point indices of cell i.
func (m *Mesh) CellPoints(i int) []int { return m.cells[i] }

// maxLabels bounds the five-character label space: three letters and
// two digits.
const maxLabels = 26 * 26 * 26 * 100

// CellLabel produces the TOUGH five-character cell label for a cell
// index: "AAA00" through "ZZZ99".
func CellLabel(i int) string {
	q, d := i/100, i%100
	c3 := byte('A' + q%26)
	q /= 26
	c2 := byte('A' + q%26)
	q /= 26
	c1 := byte('A' + q%26)
	return fmt.Sprintf("%c%c%c%02d", c1, c2, c3, d)
}

func (m *Mesh) cellCenter(i int) []float64 {
	c := make([]float64, 3)
	for _, v := range m.cells[i] {
		for d := 0; d < 3; d++ {
			c[d] += m.Points[v][d]
		}
	}
	n := float64(len(m.cells[i]))
	for d := 0; d < 3; d++ {
		c[d] /= n
	}
	return c
}

// shapeTets decomposes each shape into tetrahedra for volume
// computation. The hexahedron splits into two wedges of three tets.
var shapeTets = map[Shape][][4]int{
	Tetra:   {{0, 1, 2, 3}},
	Pyramid: {{0, 1, 2, 4}, {0, 2, 3, 4}},
	Wedge:   {{0, 1, 2, 3}, {1, 4, 5, 3}, {1, 2, 5, 3}},
	Hexahedron: {
		{0, 1, 2, 4}, {1, 5, 6, 4}, {1, 2, 6, 4},
		{0, 2, 3, 4}, {2, 6, 7, 4}, {2, 3, 7, 4},
	},
}

func (m *Mesh) cellVolume(i int) (vol float64) {
	verts := m.cells[i]
	for _, t := range shapeTets[m.shapes[i]] {
		a := m.Points[verts[t[0]]]
		b := m.Points[verts[t[1]]]
		c := m.Points[verts[t[2]]]
		d := m.Points[verts[t[3]]]
		vol += tetVolume(a, b, c, d)
	}
	return
}

func tetVolume(a, b, c, d []float64) float64 {
	var u, v, w [3]float64
	for i := 0; i < 3; i++ {
		u[i] = a[i] - d[i]
		v[i] = b[i] - d[i]
		w[i] = c[i] - d[i]
	}
	det := u[0]*(v[1]*w[2]-v[2]*w[1]) - u[1]*(v[0]*w[2]-v[2]*w[0]) + u[2]*(v[0]*w[1]-v[1]*w[0])
	if det < 0 {
		det = -det
	}
	return det / 6.0
}

// shapeFaces lists each shape's faces as cycles of local vertex
// indices. Slot order here defines the neighbor slot order.
var shapeFaces = map[Shape][][]int{
	Tetra: {
		{0, 2, 1},
		{0, 1, 3},
		{1, 2, 3},
		{0, 3, 2},
	},
	Pyramid: {
		{0, 3, 2, 1},
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	},
	Wedge: {
		{0, 2, 1},
		{3, 4, 5},
		{0, 1, 4, 3},
		{1, 2, 5, 4},
		{2, 0, 3, 5},
	},
	Hexahedron: {
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	},
}

func cellFaces(shape Shape, verts []int) []FaceSlot {
	local := shapeFaces[shape]
	slots := make([]FaceSlot, len(local))
	for k, face := range local {
		slot := FaceSlot{N: len(face)}
		for p := range slot.Vertices {
			slot.Vertices[p] = NoNeighbor
		}
		for p, lv := range face {
			slot.Vertices[p] = verts[lv]
		}
		slots[k] = slot
	}
	return slots
}

// BuildConnectivity matches the face slots of all cells pairwise and
// fills Neighbors. Two slots connect when they reference the same
// point set regardless of orientation; unmatched slots stay at
// NoNeighbor.
func (m *Mesh) BuildConnectivity() {
	type owner struct {
		cell, slot int
	}
	faceMap := make(map[string]owner)
	m.Neighbors = make([][]int, m.NumCells)
	for i := 0; i < m.NumCells; i++ {
		m.Neighbors[i] = make([]int, len(m.Faces[i]))
		for k := range m.Neighbors[i] {
			m.Neighbors[i][k] = NoNeighbor
		}
		for k, slot := range m.Faces[i] {
			key := faceKey(slot)
			if prev, ok := faceMap[key]; ok {
				m.Neighbors[i][k] = prev.cell
				m.Neighbors[prev.cell][prev.slot] = i
				delete(faceMap, key)
			} else {
				faceMap[key] = owner{cell: i, slot: k}
			}
		}
	}
}

func faceKey(slot FaceSlot) string {
	v := make([]int, slot.N)
	copy(v, slot.Vertices[:slot.N])
	sort.Ints(v)
	return fmt.Sprintf("%v", v)
}

// PrintStatistics prints a short mesh summary.
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Points: %d\n", m.NumPoints)
	fmt.Printf("  Cells: %d\n", m.NumCells)
	typeCounts := make(map[Shape]int)
	for _, s := range m.shapes {
		typeCounts[s]++
	}
	fmt.Printf("  Cell shapes:\n")
	for s, count := range typeCounts {
		fmt.Printf("    %s: %d\n", s, count)
	}
	boundaryFaces := 0
	for i := 0; i < m.NumCells; i++ {
		for _, neighbor := range m.Neighbors[i] {
			if neighbor == NoNeighbor {
				boundaryFaces++
			}
		}
	}
	fmt.Printf("  Boundary faces: %d\n", boundaryFaces)
}
