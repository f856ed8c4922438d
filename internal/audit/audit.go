// Package audit provides structured event logging for group lifecycle
// events. Events are stored as JSON Lines (JSONL) files, one per group,
// inside the group's directory.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EventType classifies a lifecycle event.
type EventType string

const (
	EventCreate  EventType = "create"
	EventDelete  EventType = "delete"
	EventInstall EventType = "install"
	EventRemove  EventType = "remove"
	EventRestore EventType = "restore"
	EventPurge   EventType = "purge"
	EventSwap    EventType = "swap"
	EventUnswap  EventType = "unswap"
	EventFix     EventType = "fix"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Group     string    `json:"group"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads audit events for groups.
// Events are stored in {groupsDir}/{name}/events.jsonl.
type Logger struct {
	groupsDir string
}

// NewLogger creates a new audit logger over the groups directory.
func NewLogger(groupsDir string) *Logger {
	return &Logger{groupsDir: groupsDir}
}

// eventPath returns the path to the JSONL event log for a group.
func (l *Logger) eventPath(group string) string {
	return filepath.Join(l.groupsDir, group, "events.jsonl")
}

// Log appends an event to the group's audit log.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	path := l.eventPath(event.Group)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, group, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Group:     group,
		Details:   details,
	})
}

// Events reads all events for a group in chronological order.
func (l *Logger) Events(group string) ([]Event, error) {
	path := l.eventPath(group)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Remove deletes the audit log for a group.
func (l *Logger) Remove(group string) error {
	path := l.eventPath(group)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
