package resource

import (
	"embed"
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"mad-hud/internal/core"
)

//go:embed assets
var embedded embed.FS

// FS reads resources from an fs.FS.
type FS struct {
	fsys fs.FS
}

var _ core.ResourceManager = (*FS)(nil)

// New wraps fsys.
func New(fsys fs.FS) *FS { return &FS{fsys: fsys} }

// Dir reads resources from a directory on disk.
func Dir(path string) *FS { return New(os.DirFS(path)) }

// Builtin returns the resources compiled into the binary.
func Builtin() *FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// ReadFile returns the contents of the named resource.
func (r *FS) ReadFile(name string) ([]byte, error) {
	b, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "resource %q", name)
	}
	return b, nil
}

// Layered tries each manager in order and returns the first hit.
type Layered []core.ResourceManager

// ReadFile returns the first successful read, or the last error.
func (l Layered) ReadFile(name string) ([]byte, error) {
	err := errors.Errorf("resource %q: no resource managers", name)
	for _, rm := range l {
		if rm == nil {
			continue
		}
		var b []byte
		b, err = rm.ReadFile(name)
		if err == nil {
			return b, nil
		}
	}
	return nil, err
}
