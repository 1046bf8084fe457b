package tough

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsurf/gotough/mesh"
)

func TestWriteInconSingleCell(t *testing.T) {
	m, err := mesh.NewStructuredGrid([]float64{1}, []float64{1}, []float64{1})
	require.NoError(t, err)
	require.NoError(t, m.AttachInitialConditions([][]float64{{1.0e5, 20.0}}))
	require.NoError(t, m.AttachCellData(mesh.PorosityKey, []float64{0.1}))

	var buf bytes.Buffer
	require.NoError(t, WriteIncon(&buf, m))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "INCON----1----*----2----*----3----*----4----*----5----*----6----*----7----*----8", lines[0])
	assert.Equal(t, "AAA00"+strings.Repeat(" ", 10)+"1.000000000e-01", strings.TrimRight(lines[1], " "))
	assert.Equal(t, " 1.0000000000000e+05 2.0000000000000e+01", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "", lines[3])
	assert.Equal(t, LineWidth, len(lines[1]))
	assert.Equal(t, LineWidth, len(lines[2]))
}

func TestWriteInconWithoutPorosity(t *testing.T) {
	m, err := mesh.NewStructuredGrid([]float64{1}, []float64{1}, []float64{1})
	require.NoError(t, err)
	require.NoError(t, m.AttachInitialConditions([][]float64{{1.0e5}}))

	var buf bytes.Buffer
	require.NoError(t, WriteIncon(&buf, m))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "AAA00", strings.TrimRight(lines[1], " "))
}

func TestWriteInconLongVariableListWraps(t *testing.T) {
	m, err := mesh.NewStructuredGrid([]float64{1}, []float64{1}, []float64{1})
	require.NoError(t, err)
	require.NoError(t, m.AttachInitialConditions([][]float64{{1, 2, 3, 4, 5, 6}}))

	var buf bytes.Buffer
	require.NoError(t, WriteIncon(&buf, m))
	lines := strings.Split(buf.String(), "\n")
	// Header, cell record, two variable lines, blank, trailing piece.
	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "5.0000000000000e+00")
	assert.Contains(t, lines[3], "6.0000000000000e+00")
}

func TestWriteInconRequiresInitialConditions(t *testing.T) {
	m, err := mesh.NewStructuredGrid([]float64{1}, []float64{1}, []float64{1})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteIncon(&buf, m)
	require.Error(t, err)
	var verr *ValueError
	assert.True(t, errors.As(err, &verr))
}
