package tough

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecordSlicesFixedWidths(t *testing.T) {
	formats := []ColumnFormat{S(5), I(5), F(10, 4), S(5)}
	values, err := ReadRecord("AAA01   12 1.500e+00     ", formats)
	require.NoError(t, err)
	assert.Equal(t, "AAA01", values[0])
	assert.Equal(t, 12, values[1])
	assert.InDelta(t, 1.5, values[2].(float64), 1.e-12)
	assert.Nil(t, values[3], "blank column decodes to absent, not an error")
}

func TestReadRecordShortLine(t *testing.T) {
	formats := []ColumnFormat{S(5), I(5), F(10, 4)}
	values, err := ReadRecord("AAA01", formats)
	require.NoError(t, err)
	assert.Equal(t, "AAA01", values[0])
	assert.Nil(t, values[1])
	assert.Nil(t, values[2])
}

func TestReadRecordPreservesDeclaredWidthStrings(t *testing.T) {
	formats := []ColumnFormat{{Width: 5, Kind: StrPreserve}, {Width: 5, Kind: StrPreserve}}
	values, err := ReadRecord("AB   CD  E", formats)
	require.NoError(t, err)
	assert.Equal(t, "AB   ", values[0])
	assert.Equal(t, "CD  E", values[1])
}

func TestReadRecordFortranExponentShorthand(t *testing.T) {
	formats := []ColumnFormat{F(10, 4)}

	values, err := ReadRecord("   1.234-5", formats)
	require.NoError(t, err)
	assert.InDelta(t, 1.234e-5, values[0].(float64), 1.e-18)

	values, err = ReadRecord("   1.234+5", formats)
	require.NoError(t, err)
	assert.InDelta(t, 1.234e5, values[0].(float64), 1.e-8)

	values, err = ReadRecord("0.0001-001", formats)
	require.NoError(t, err)
	assert.InDelta(t, 1.e-5, values[0].(float64), 1.e-18)
}

func TestReadRecordMalformedFloat(t *testing.T) {
	_, err := ReadRecord("   ABCDEFG", []ColumnFormat{F(10, 4)})
	require.Error(t, err)
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)

	_, err = ReadRecord("  1.2.34.5", []ColumnFormat{F(10, 4)})
	assert.Error(t, err)
}

func TestWriteRecordLineWidth(t *testing.T) {
	line := WriteRecord([]interface{}{"AAA00"}, []ColumnFormat{S(5)})
	require.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, LineWidth, len(line)-1, "every record line is padded to the full width")
}

func TestWriteRecordScientific(t *testing.T) {
	line := WriteRecord([]interface{}{1.0e50}, []ColumnFormat{E(10, 4)})
	assert.Equal(t, "1.0000e+50", line[:10])

	line = WriteRecord([]interface{}{-0.5}, []ColumnFormat{E(10, 3)})
	assert.Equal(t, "-5.000e-01", line[:10])
}

func TestWriteRecordFixedPointFallback(t *testing.T) {
	// Fixed point at 4 decimals needs 14 characters; the codec must
	// fall back to scientific notation that exactly fits the column.
	line := WriteRecord([]interface{}{123456789.123}, []ColumnFormat{F(10, 4)})
	assert.Equal(t, "1.2346e+08", line[:10])

	// Small values fit as is and stay fixed point.
	line = WriteRecord([]interface{}{1.5}, []ColumnFormat{F(10, 4)})
	assert.Equal(t, "    1.5000", line[:10])
}

func TestWriteRecordUnspecifiedPrecision(t *testing.T) {
	line := WriteRecord([]interface{}{0.25}, []ColumnFormat{F(10, -1)})
	assert.Equal(t, "      0.25", line[:10])

	line = WriteRecord([]interface{}{123456789.123}, []ColumnFormat{F(10, -1)})
	trimmed := strings.TrimSpace(line[:10])
	assert.LessOrEqual(t, len(trimmed), 10)
	v, err := parseFloat(trimmed)
	require.NoError(t, err)
	assert.InEpsilon(t, 123456789.123, v, 1.e-3)
}

func TestWriteRecordAbsentAndBlankValues(t *testing.T) {
	line := WriteRecord([]interface{}{"AAA00", nil, nil, 7}, []ColumnFormat{S(5), SR(5), E(10, 4), I(5)})
	assert.Equal(t, "AAA00"+strings.Repeat(" ", 15)+"    7", line[:25])
}

func TestRecordRoundTrip(t *testing.T) {
	formats := []ColumnFormat{E(10, 4), E(10, 3), F(10, 4), I(5)}
	in := []interface{}{1.2345e-6, -4.225, 123456789.123, 3}
	line := WriteRecord(in, formats)
	out, err := ReadRecord(line, formats)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.2345e-6, out[0].(float64), 1.e-4)
	assert.InEpsilon(t, -4.225, out[1].(float64), 1.e-6)
	assert.InEpsilon(t, 123456789.123, out[2].(float64), 1.e-4)
	assert.Equal(t, 3, out[3])
}

func TestWriteRecordMultiChunksValues(t *testing.T) {
	formats := []ColumnFormat{E(10, 4), E(10, 4), E(10, 4), E(10, 4)}
	values := make([]interface{}, 10)
	for i := range values {
		values[i] = float64(i)
	}
	lines := WriteRecordMulti(values, formats)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, LineWidth+1, len(line))
	}
	// Short last chunk renders its two values, remaining columns blank.
	assert.Equal(t, "8.0000e+00", lines[2][:10])
	assert.Equal(t, "9.0000e+00", lines[2][10:20])
	assert.Equal(t, strings.Repeat(" ", 20), lines[2][20:40])
}

func TestWriteRecordMultiEmpty(t *testing.T) {
	lines := WriteRecordMulti(nil, []ColumnFormat{E(10, 4)})
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Repeat(" ", LineWidth)+"\n", lines[0])
}
