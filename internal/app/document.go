package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dshills/gapvim/internal/engine"
)

// Document describes the file being edited.
type Document struct {
	// Path is the file path (empty for an unnamed buffer).
	Path string

	// Name is the display name.
	Name string

	// IsNew is true when Path did not exist when the editor started.
	IsNew bool
}

func newDocument(path string) *Document {
	doc := &Document{Path: path}
	if path != "" {
		doc.Name = filepath.Base(path)
	}
	return doc
}

// IsScratch returns true if the buffer has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// openEngine creates an engine holding the content of path. A missing file
// gives an empty engine; newOpts are applied only in that case so existing
// files keep the line ending they were written with.
func openEngine(path string, opts, newOpts []engine.Option) (*engine.Engine, bool, error) {
	if path == "" {
		return engine.New(append(opts, newOpts...)...), true, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return engine.New(append(opts, newOpts...)...), true, nil
	}
	if err != nil {
		return nil, false, NewOperationError("open", path, err)
	}
	defer f.Close()

	eng, err := engine.NewFromReader(f, opts...)
	if err != nil {
		return nil, false, NewOperationError("read", path, err)
	}
	return eng, false, nil
}

// save writes the document to path, or to the document's own path when
// path is empty. The write goes to a temporary file that is renamed over
// the target so a failed write never truncates the original. Writing to
// another file leaves the modified flag alone, like :w other in Vim.
func (app *Application) save(path string) error {
	target := path
	if target == "" {
		target = app.doc.Path
	}
	if target == "" {
		return ErrNoFilePath
	}

	n, err := writeFileAtomic(target, app.engine)
	if err != nil {
		app.logger.Error("write failed", zap.String("path", target), zap.Error(err))
		return NewOperationError("write", target, err)
	}

	if app.doc.Path == "" {
		app.doc.Path = target
		app.doc.Name = filepath.Base(target)
	}
	if target == app.doc.Path {
		app.engine.MarkSaved()
		app.doc.IsNew = false
	}

	app.logger.Info("file written", zap.String("path", target), zap.Int64("bytes", n))
	return nil
}

func writeFileAtomic(path string, eng *engine.Engine) (int64, error) {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()

	n, err := eng.WriteTo(tmp)
	if err == nil {
		err = tmp.Chmod(perm)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}
	return n, nil
}
