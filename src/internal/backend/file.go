package backend

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/utils"
)

// FileBackend reads and writes KEY='value' assignments in <dir>/<scope>.conf.
//
// The file stays sourceable by the shell scripts of the installation.
// Writes replace the file with rename(2), so a reader sees either the old
// or the new file, never a partial one.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

// NewFileBackend creates a backend for conf files in dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Name returns "file".
func (b *FileBackend) Name() string {
	return "file"
}

// Path returns the conf file for scope.
func (b *FileBackend) Path(scope string) (string, error) {
	if scope == "" || scope != filepath.Base(scope) || strings.HasPrefix(scope, ".") {
		return "", errors.NewValidationError(fmt.Sprintf("invalid scope %q", scope), nil)
	}
	return filepath.Join(b.dir, scope+".conf"), nil
}

// Get returns the value of the last assignment of key.
func (b *FileBackend) Get(ctx context.Context, scope, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classify("file backend", err)
	}
	path, err := b.Path(scope)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.NewBackendError(fmt.Sprintf("config file %s not found", path), err)
		}
		return "", errors.NewInternalError(fmt.Sprintf("failed to read %s", path), err)
	}

	found := false
	var value string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		name, raw, ok := parseAssignment(scanner.Text())
		if !ok || name != key {
			continue
		}
		v, err := ShellUnquote(raw)
		if err != nil {
			return "", errors.NewBackendError(fmt.Sprintf("malformed value for %s in %s", key, path), err)
		}
		value, found = v, true
	}
	if err := scanner.Err(); err != nil {
		return "", errors.NewInternalError(fmt.Sprintf("failed to read %s", path), err)
	}

	if !found {
		return "", errors.NewBackendError(fmt.Sprintf("%s is not set in %s", key, path), nil)
	}
	return value, nil
}

// Set replaces every assignment of key, or appends one, and atomically
// replaces the file.
func (b *FileBackend) Set(ctx context.Context, scope, key, value string) error {
	if err := ctx.Err(); err != nil {
		return classify("file backend", err)
	}
	path, err := b.Path(scope)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	mode := fs.FileMode(0644)
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
	case stderrors.Is(err, fs.ErrNotExist):
		content = nil
	default:
		return errors.NewInternalError(fmt.Sprintf("failed to read %s", path), err)
	}

	assignment := key + "=" + ShellQuote(value)
	var out strings.Builder
	replaced := false
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if name, _, ok := parseAssignment(line); ok && name == key {
			if !replaced {
				out.WriteString(assignment + "\n")
				replaced = true
			}
			continue
		}
		out.WriteString(line + "\n")
	}
	if err := scanner.Err(); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to read %s", path), err)
	}
	if !replaced {
		out.WriteString(assignment + "\n")
	}

	if err := writeFileAtomic(path, []byte(out.String()), mode); err != nil {
		return errors.NewBackendError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

// parseAssignment splits `[export ]NAME=value` lines. Comments and other
// shell statements are reported as not ok.
func parseAssignment(line string) (name, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	eq := strings.IndexByte(line, '=')
	if eq <= 0 {
		return "", "", false
	}
	name = line[:eq]
	for i, c := range name {
		isAlpha := c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
		if !isAlpha && (i == 0 || c < '0' || c > '9') {
			return "", "", false
		}
	}
	return name, line[eq+1:], true
}

// writeFileAtomic writes data to a temp file next to path and renames it over path.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		utils.CloseOrWarn(tmp)
		return err
	}
	if err := tmp.Sync(); err != nil {
		utils.CloseOrWarn(tmp)
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
