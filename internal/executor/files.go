package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/steward/internal/domain"
)

// ErrNotRegularFile is returned when OPEN_FILE targets a directory or device.
var ErrNotRegularFile = errors.New("not a file")

func (e *Executor) listFiles(_ context.Context, _ domain.Intent) (domain.ExecutionResult, error) {
	entries, err := os.ReadDir(e.root.Path())
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("listing root: %w", err)
	}

	names := make([]string, 0, min(len(entries), MaxListEntries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == dependencyCacheDir {
			continue
		}
		names = append(names, name)
		if len(names) == MaxListEntries {
			break
		}
	}
	return domain.ExecutionResult{
		Result:  names,
		Message: fmt.Sprintf("I found %d files in the root directory.", len(names)),
	}, nil
}

func (e *Executor) openFile(_ context.Context, intent domain.Intent) (domain.ExecutionResult, error) {
	raw := intent.Param(domain.ParamPath)

	// The plan may be minutes old; check the path against the filesystem as
	// it is now.
	path, err := e.root.Resolve(raw)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("access to path %q is denied: %w", raw, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("could not read file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return domain.ExecutionResult{}, fmt.Errorf("could not read file %q: %w", raw, ErrNotRegularFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("could not read file: %w", err)
	}
	defer f.Close()

	content, truncated, err := headLines(io.LimitReader(f, MaxReadBytes), MaxOpenLines)
	if err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("could not read file: %w", err)
	}
	if truncated || info.Size() > MaxReadBytes {
		content += TruncationMarker
	}
	return domain.ExecutionResult{
		Result:  content,
		Message: fmt.Sprintf("Here are the first %d lines of %s.", MaxOpenLines, raw),
	}, nil
}

// headLines returns the first n lines of r joined by "\n", and whether any
// further content followed them.
func headLines(r io.Reader, n int) (string, bool, error) {
	br := bufio.NewReader(r)
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if errors.Is(err, io.EOF) {
			lines = append(lines, line)
			return strings.Join(lines, "\n"), false, nil
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
	}
	_, err := br.Peek(1)
	if errors.Is(err, io.EOF) {
		return strings.Join(lines, "\n"), false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.Join(lines, "\n"), true, nil
}
