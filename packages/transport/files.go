package transport

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// Files reads fixtures from the local file system. The URL is used as a
// file path as-is.
type Files struct {
	fsys fs.FS
}

// NewFiles returns a transport reading paths relative to the working
// directory, or absolute paths.
func NewFiles() *Files {
	return &Files{}
}

// NewFilesFS returns a transport reading from fsys. Paths must then be valid
// fs.FS paths (slash separated, unrooted).
func NewFilesFS(fsys fs.FS) *Files {
	return &Files{fsys: fsys}
}

// Fetch reads the file. Missing files yield 404, unreadable ones 403 and
// directories 400, mirroring what a static file server would answer.
func (f *Files) Fetch(url string) (*Response, error) {
	start := time.Now()
	var (
		data []byte
		err  error
	)
	if f.fsys != nil {
		data, err = fs.ReadFile(f.fsys, url)
	} else {
		data, err = os.ReadFile(url)
	}

	code := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		code = http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		code = http.StatusForbidden
	default:
		if info, statErr := f.stat(url); statErr == nil && info.IsDir() {
			code = http.StatusBadRequest
		} else {
			return nil, err
		}
	}

	resp := NewResponse(url, code, data)
	resp.Duration = time.Since(start)
	return resp, nil
}

func (f *Files) stat(name string) (fs.FileInfo, error) {
	if f.fsys != nil {
		return fs.Stat(f.fsys, name)
	}
	return os.Stat(name)
}
