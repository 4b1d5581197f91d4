package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	appLog    *log.Logger
	eventFile string
	eventMu   sync.Mutex
)

func initLogger(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "sessions"), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "mevclid.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	appLog = log.New(io.MultiWriter(f, os.Stdout), "", log.LstdFlags)
	eventFile = filepath.Join(dir, "events.jsonl")
	return nil
}

func logEvent(level, src, msg string) {
	if appLog != nil {
		appLog.Printf("%-10s %-22s %s", level, src, msg)
	}
	if eventFile == "" {
		return
	}
	entry := map[string]string{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"src":   src,
		"msg":   msg,
	}
	b, _ := json.Marshal(entry)
	eventMu.Lock()
	appendLine(eventFile, b)
	eventMu.Unlock()
}

func appendLine(path string, data []byte) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	f.Write(append(data, '\n')) //nolint:errcheck
}

// sessionLogger records one connection's command activity to its own file.
type sessionLogger struct {
	f  *os.File
	mu sync.Mutex
}

func newSessionLogger(dir, ip string) (*sessionLogger, error) {
	ts := time.Now().UTC().Format("20060102_150405")
	safe := ""
	for _, c := range ip {
		if c == ':' || c == '.' {
			safe += "_"
		} else {
			safe += string(c)
		}
	}
	path := filepath.Join(dir, "sessions", safe+"_"+ts+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	return &sessionLogger{f: f}, nil
}

func (l *sessionLogger) log(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	fmt.Fprintf(l.f, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}

func (l *sessionLogger) close() {
	if l.f != nil {
		l.f.Close()
	}
}
