// Package workspace writes files emitted by persona FILE directives
// into a confined directory tree.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Sink receives file-write requests from persona responses.
type Sink interface {
	// Write stores content at the given session-relative path.
	// Implementations must reject paths that escape their root.
	Write(ctx context.Context, sessionID, relativePath string, content []byte) error
}

// Dir is a filesystem Sink rooted at a fixed directory. Each session
// writes under its own subdirectory.
type Dir struct {
	root string
}

// NewDir creates a workspace rooted at the given directory, creating it
// if needed.
func NewDir(root string) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}
	return &Dir{root: abs}, nil
}

// Root returns the absolute workspace root directory.
func (d *Dir) Root() string {
	return d.root
}

// Write stores content at root/sessionID/relativePath, creating parent
// directories on demand. Paths are POSIX-style and relative; leading
// slashes are stripped. Any path that resolves outside the session
// directory is rejected.
func (d *Dir) Write(ctx context.Context, sessionID, relativePath string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	cleaned, err := cleanRelativePath(relativePath)
	if err != nil {
		return err
	}

	sessionDir := filepath.Join(d.root, sessionID)
	target := filepath.Join(sessionDir, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(target, sessionDir+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the workspace", relativePath)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	slog.Debug("Workspace file written",
		"session_id", sessionID, "path", cleaned, "bytes", len(content))
	return nil
}

// cleanRelativePath normalizes a POSIX-style path from a FILE directive
// and rejects traversal attempts.
func cleanRelativePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return "", fmt.Errorf("path is required")
	}

	cleaned := filepath.ToSlash(filepath.Clean(p))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("path %q escapes the workspace", p)
	}
	return cleaned, nil
}
