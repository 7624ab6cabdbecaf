/*
 * tostr - Log handler test cases.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// File gets everything, console only above debug.
func TestHandler(t *testing.T) {
	var file, console bytes.Buffer
	debug := false
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)

	log := slog.New(newHandler(&file, &console, &slog.HandlerOptions{Level: level}, &debug))
	log.Debug("render", "kind", "ipv4")
	log.Info("started")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Log file lines got: %d expected: 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "DEBUG: render kind=ipv4") {
		t.Errorf("Log file got: %s expected suffix: %s", lines[0], "DEBUG: render kind=ipv4")
	}
	if !strings.HasSuffix(lines[1], "INFO: started") {
		t.Errorf("Log file got: %s expected suffix: %s", lines[1], "INFO: started")
	}

	if strings.Contains(console.String(), "render") {
		t.Errorf("Console got debug record: %s", console.String())
	}
	if !strings.Contains(console.String(), "started") {
		t.Errorf("Console missing info record: %s", console.String())
	}

	// Debug mode copies everything to console.
	console.Reset()
	debug = true
	h := newHandler(nil, &console, &slog.HandlerOptions{Level: level}, &debug)
	slog.New(h.WithAttrs([]slog.Attr{slog.String("line", "3")})).Debug("render")
	if !strings.Contains(console.String(), "render") || !strings.Contains(console.String(), "line=3") {
		t.Errorf("Console debug got: %s", console.String())
	}
}

// Attributes from With and groups reach the log file.
func TestHandlerAttrs(t *testing.T) {
	var file bytes.Buffer
	debug := false

	log := slog.New(newHandler(&file, &bytes.Buffer{}, nil, &debug))
	log.With("line", 3).Info("bad option", "pos", 7)
	log.WithGroup("file").With("name", "a.cfg").Warn("skipped", "line", 4)

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Log file lines got: %d expected: 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "INFO: bad option line=3 pos=7") {
		t.Errorf("Log file got: %s expected suffix: %s", lines[0], "INFO: bad option line=3 pos=7")
	}
	if !strings.HasSuffix(lines[1], "WARN: skipped file.name=a.cfg file.line=4") {
		t.Errorf("Log file got: %s expected suffix: %s", lines[1], "WARN: skipped file.name=a.cfg file.line=4")
	}
}

// Level filtering follows the options.
func TestEnabled(t *testing.T) {
	debug := false
	h := newHandler(nil, &bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}, &debug)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug enabled at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error not enabled at info level")
	}
}
