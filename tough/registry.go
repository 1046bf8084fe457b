package tough

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/subsurf/gotough/mesh"
)

// MeshReadFunc reads a mesh from a file.
type MeshReadFunc func(filename string) (*mesh.Mesh, error)

// MeshWriteFunc writes a mesh discretization to a file.
type MeshWriteFunc func(filename string, m *mesh.Mesh, mode mesh.NodalDistance) error

// Format couples a mesh format name with its reader and writer; either
// side may be nil for formats supporting only one direction.
type Format struct {
	Name       string
	Extensions []string
	Read       MeshReadFunc
	Write      MeshWriteFunc
}

// Registry dispatches mesh I/O by format name or file extension. It is
// built once and passed by reference to call sites; there is no hidden
// global registration.
type Registry struct {
	formats map[string]Format
	byExt   map[string]string
}

// DefaultFormat is used when neither a format name nor a recognized
// extension selects one.
const DefaultFormat = "tough"

// NewRegistry returns a registry with the TOUGH MESH format installed.
// The format is write-only: a MESH file stores no geometry beyond node
// centers, so reading one back is not supported.
func NewRegistry() *Registry {
	r := &Registry{
		formats: make(map[string]Format),
		byExt:   make(map[string]string),
	}
	r.Register(Format{
		Name: "tough",
		Read: func(filename string) (*mesh.Mesh, error) {
			return nil, fmt.Errorf("reading TOUGH MESH file %q: %w", filename, ErrUnsupportedOperation)
		},
		Write: WriteMeshFile,
	})
	return r
}

// Register installs a format, overwriting a previous registration of
// the same name.
func (r *Registry) Register(f Format) {
	r.formats[f.Name] = f
	for _, ext := range f.Extensions {
		r.byExt[strings.ToLower(ext)] = f.Name
	}
}

// resolve picks the format from an explicit name, else the file
// extension, else the default.
func (r *Registry) resolve(filename, format string) (Format, error) {
	name := format
	if name == "" {
		ext := strings.ToLower(filepath.Ext(filename))
		if n, ok := r.byExt[ext]; ok {
			name = n
		} else {
			name = DefaultFormat
		}
	}
	f, ok := r.formats[name]
	if !ok {
		return Format{}, valueErrorf("unknown mesh format '%s'", name)
	}
	return f, nil
}

// ReadMesh reads filename with the named format (or by extension).
func (r *Registry) ReadMesh(filename, format string) (*mesh.Mesh, error) {
	f, err := r.resolve(filename, format)
	if err != nil {
		return nil, err
	}
	if f.Read == nil {
		return nil, fmt.Errorf("format '%s' has no reader: %w", f.Name, ErrUnsupportedOperation)
	}
	return f.Read(filename)
}

// WriteMesh writes m to filename with the named format (or by
// extension).
func (r *Registry) WriteMesh(filename, format string, m *mesh.Mesh, mode mesh.NodalDistance) error {
	f, err := r.resolve(filename, format)
	if err != nil {
		return err
	}
	if f.Write == nil {
		return fmt.Errorf("format '%s' has no writer: %w", f.Name, ErrUnsupportedOperation)
	}
	return f.Write(filename, m, mode)
}
