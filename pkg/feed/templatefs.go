package feed

import (
	"io/fs"
	"os"

	"github.com/factory-ai/social-rss/templates"
)

// Templates resolve against the local templates directory first so edits
// show up without a rebuild, then against the copy embedded in the binary.
var templateSearchPath = []fs.FS{os.DirFS("templates"), templates.Files}

// SetTemplateFS replaces the template search path. Tests use it to point
// template loading at in-memory filesystems.
func SetTemplateFS(fsys ...fs.FS) {
	templateSearchPath = fsys
}

// readTemplate returns the contents of the first file named name along the
// search path.
func readTemplate(name string) ([]byte, error) {
	var firstErr error
	for _, fsys := range templateSearchPath {
		content, err := fs.ReadFile(fsys, name)
		if err == nil {
			return content, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fs.ErrNotExist
	}
	return nil, firstErr
}
