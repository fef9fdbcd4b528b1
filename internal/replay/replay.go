// Package replay feeds the tail of an existing log file back through
// the renderer, so plain logs from other tools pick up glint's
// decoration and level coloring.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/glintlog/glint"
)

// Read returns at most maxLines from the end of the file at path. A
// missing file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Parse sniffs the level out of a raw log line and builds the event to
// render. Lines with no recognizable level token come back as Info.
func Parse(line string) glint.Event {
	level := glint.LevelInfo
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "ERROR"):
		level = glint.LevelError
	case strings.Contains(upper, "WARN"):
		level = glint.LevelWarn
	case strings.Contains(upper, "DEBUG"):
		level = glint.LevelDebug
	}
	return glint.Event{Level: level, Message: line}
}
