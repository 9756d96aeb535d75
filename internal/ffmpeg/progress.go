package ffmpeg

import (
	"bufio"
	"bytes"
	"fastencode/internal/utils/logging"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

const lastLinesKept = 20

// ProgressParser reads FFmpeg's stderr stream, reporting progress and
// retaining the last lines for error diagnosis.
type ProgressParser struct {
	filename  string
	duration  float64
	lastLines []string
}

// NewProgressParser returns a parser reporting progress for the input file.
func NewProgressParser(inputPath string) *ProgressParser {
	return &ProgressParser{
		filename:  filepath.Base(inputPath),
		lastLines: make([]string, 0, lastLinesKept),
	}
}

// scanFFmpegLines splits on both newlines and carriage returns, since
// FFmpeg rewrites its status line with \r.
func scanFFmpegLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Consume reads the stream until EOF, logging progress as it goes.
func (p *ProgressParser) Consume(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanFFmpegLines)

	for scanner.Scan() {
		p.parseLine(scanner.Text())
	}
}

func (p *ProgressParser) parseLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	p.keepLine(line)

	if idx := strings.Index(line, "Duration:"); idx >= 0 && p.duration == 0 {
		field := strings.TrimSpace(line[idx+len("Duration:"):])
		if comma := strings.Index(field, ","); comma >= 0 {
			field = field[:comma]
		}
		p.duration = parseTimestamp(field)
		return
	}

	if !strings.Contains(line, "time=") {
		return
	}

	elapsed := parseTimestamp(extractField(line, "time="))
	speed := extractField(line, "speed=")

	if p.duration > 0 && elapsed > 0 {
		pct := elapsed / p.duration * 100
		if pct > 100 {
			pct = 100
		}
		logging.P("%s: %.1f%% (speed %s)", p.filename, pct, speed)
	} else if speed != "" {
		logging.P("%s: encoding (speed %s)", p.filename, speed)
	}
}

func (p *ProgressParser) keepLine(line string) {
	if len(p.lastLines) == lastLinesKept {
		copy(p.lastLines, p.lastLines[1:])
		p.lastLines[lastLinesKept-1] = line
		return
	}
	p.lastLines = append(p.lastLines, line)
}

// LastOutput returns the retained tail of the stream, for error messages.
func (p *ProgressParser) LastOutput() string {
	return strings.Join(p.lastLines, "\n")
}

// Duration returns the input duration in seconds, if seen.
func (p *ProgressParser) Duration() float64 {
	return p.duration
}

// extractField returns the whitespace-delimited value following the marker.
func extractField(line, marker string) string {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return ""
	}
	rest := line[idx+len(marker):]
	if end := strings.IndexAny(rest, " \t"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// parseTimestamp converts "HH:MM:SS.ss" into seconds. Returns 0 on
// malformed input (FFmpeg prints "N/A" before the first frame).
func parseTimestamp(ts string) float64 {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0
	}

	return hours*3600 + minutes*60 + seconds
}
