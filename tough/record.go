package tough

import (
	"strconv"
	"strings"
)

// LineWidth is the total width of every record line. TOUGH's reader is
// column oriented, so short records are blank padded to the full width.
const LineWidth = 80

// Kind selects how a fixed-width column is converted to and from text.
type Kind int

const (
	Str         Kind = iota // whitespace-trimmed string, left justified
	StrPreserve             // string kept at its exact declared width
	Int                     // right-justified integer
	Sci                     // scientific notation at Precision decimals
	Fix                     // fixed point at Precision decimals, scientific fallback when too wide
)

// ColumnFormat describes one fixed-width column of a record line.
type ColumnFormat struct {
	Width     int
	Precision int // decimals for Sci/Fix; negative selects the shortest representation
	Kind      Kind
	Right     bool // right-justify strings (numbers always are)
}

// F returns a float column format. A negative precision lets the codec
// choose the shortest fixed-point form that fits.
func F(width, precision int) ColumnFormat {
	return ColumnFormat{Width: width, Precision: precision, Kind: Fix}
}

// E returns a scientific-notation float column format.
func E(width, precision int) ColumnFormat {
	return ColumnFormat{Width: width, Precision: precision, Kind: Sci}
}

// I returns an integer column format.
func I(width int) ColumnFormat {
	return ColumnFormat{Width: width, Kind: Int}
}

// S returns a left-justified string column format.
func S(width int) ColumnFormat {
	return ColumnFormat{Width: width, Kind: Str}
}

// SR returns a right-justified string column format.
func SR(width int) ColumnFormat {
	return ColumnFormat{Width: width, Kind: Str, Right: true}
}

// ReadRecord slices a fixed-width line into typed values, one per
// column format, left to right with no delimiters. A blank column
// decodes to nil rather than a conversion failure. Columns beyond the
// end of the line are also nil.
func ReadRecord(line string, formats []ColumnFormat) ([]interface{}, error) {
	out := make([]interface{}, len(formats))
	pos := 0
	for i, f := range formats {
		if pos >= len(line) {
			break
		}
		end := pos + f.Width
		if end > len(line) {
			end = len(line)
		}
		raw := line[pos:end]
		pos = end

		if f.Kind == StrPreserve {
			out[i] = raw
			continue
		}
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		switch f.Kind {
		case Str:
			out[i] = s
		case Int:
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, &FormatError{Column: i, Text: s, Err: err}
			}
			out[i] = v
		case Sci, Fix:
			v, err := parseFloat(s)
			if err != nil {
				return nil, &FormatError{Column: i, Text: s, Err: err}
			}
			out[i] = v
		}
	}
	return out, nil
}

// parseFloat converts fixed-width float text to a float64, tolerating
// the Fortran exponent shorthand that drops the 'e' marker, e.g.
// "1.234-5" or "0.0001-001". The exponent sign is located and the
// string reassembled as "<significand>e<exponent>" before parsing.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}
	if i := splitShorthandExponent(s); i > 0 {
		return strconv.ParseFloat(s[:i]+"e"+s[i:], 64)
	}
	return 0, err
}

// splitShorthandExponent returns the index of an exponent sign that
// lacks its 'e' marker, or -1. The sign must not lead the number and
// must not already follow an exponent marker.
func splitShorthandExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		prev := s[i-1]
		if prev == 'e' || prev == 'E' || prev == '+' || prev == '-' {
			return -1
		}
		return i
	}
	return -1
}

// WriteRecord formats one record line from values and their column
// formats. Nil values render as blank columns. The line is padded or
// truncated to LineWidth and newline terminated.
func WriteRecord(values []interface{}, formats []ColumnFormat) string {
	var sb strings.Builder
	for i, f := range formats {
		if i < len(values) {
			sb.WriteString(formatColumn(values[i], f))
		} else {
			sb.WriteString(strings.Repeat(" ", f.Width))
		}
	}
	return padLine(sb.String())
}

// WriteRecordMulti partitions a flat value sequence into consecutive
// chunks of len(formats) and emits one record line per chunk. The last
// chunk may be short; its missing columns render blank. Used for
// blocks with repeated column groups such as time/rate tables.
func WriteRecordMulti(values []interface{}, formats []ColumnFormat) []string {
	ncol := len(formats)
	if ncol == 0 || len(values) == 0 {
		return []string{padLine("")}
	}
	var out []string
	for start := 0; start < len(values); start += ncol {
		end := start + ncol
		if end > len(values) {
			end = len(values)
		}
		out = append(out, WriteRecord(values[start:end], formats))
	}
	return out
}

func padLine(s string) string {
	if len(s) > LineWidth {
		s = s[:LineWidth]
	}
	if len(s) < LineWidth {
		s += strings.Repeat(" ", LineWidth-len(s))
	}
	return s + "\n"
}

func formatColumn(v interface{}, f ColumnFormat) string {
	if v == nil {
		return strings.Repeat(" ", f.Width)
	}
	switch x := v.(type) {
	case string:
		return formatString(x, f)
	case int:
		return justify(strconv.Itoa(x), f.Width, true)
	case int64:
		return justify(strconv.FormatInt(x, 10), f.Width, true)
	case float64:
		return formatFloat(x, f)
	case float32:
		return formatFloat(float64(x), f)
	case bool:
		if x {
			return justify("1", f.Width, true)
		}
		return justify("0", f.Width, true)
	default:
		return justify("", f.Width, f.Right)
	}
}

func formatString(s string, f ColumnFormat) string {
	if f.Kind == StrPreserve {
		return justify(s, f.Width, f.Right)
	}
	if len(s) > f.Width {
		s = s[:f.Width]
	}
	return justify(s, f.Width, f.Right)
}

// formatFloat renders a float into its exact column width. Fixed-point
// output that would overflow the width falls back to scientific
// notation with the precision reduced until the result fits.
func formatFloat(v float64, f ColumnFormat) string {
	var s string
	switch {
	case f.Kind == Sci:
		s = sciFit(v, f.Width, f.Precision)
	case f.Precision >= 0:
		s = strconv.FormatFloat(v, 'f', f.Precision, 64)
		if len(s) > f.Width {
			s = sciFit(v, f.Width, f.Precision)
		}
	default:
		s = strconv.FormatFloat(v, 'f', -1, 64)
		if len(s) > f.Width {
			s = sciFit(v, f.Width, f.Width-7)
		}
	}
	return justify(s, f.Width, true)
}

// sciFit formats v in scientific notation, dropping decimals until the
// text fits the column width.
func sciFit(v float64, width, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'e', precision, 64)
	for len(s) > width && precision > 0 {
		precision--
		s = strconv.FormatFloat(v, 'e', precision, 64)
	}
	return s
}

func justify(s string, width int, right bool) string {
	if len(s) >= width {
		return s[:width]
	}
	pad := strings.Repeat(" ", width-len(s))
	if right {
		return pad + s
	}
	return s + pad
}
