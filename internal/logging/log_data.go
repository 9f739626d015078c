package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects fields and millisecond timings for one request; Log emits
// them as a single entry.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  logrus.Fields
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  logrus.Fields{},
		logger:  logger,
	}
}

// AddTiming starts a timer; calling the returned func records the elapsed
// time under entryName, replacing any earlier value.
func (l *LogData) AddTiming(entryName string) func() {
	return l.timer(entryName, false)
}

// AddToExistingTiming is AddTiming for repeated steps: elapsed times
// accumulate under entryName.
func (l *LogData) AddToExistingTiming(entryName string) func() {
	return l.timer(entryName, true)
}

func (l *LogData) timer(entryName string, accumulate bool) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		if accumulate {
			l.timings[entryName] += elapsed
			return
		}
		l.timings[entryName] = elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	fields := make(logrus.Fields, len(l.fields)+len(l.timings))
	for key, value := range l.fields {
		fields[key] = value
	}
	for key, value := range l.timings {
		fields[key] = value
	}
	l.mu.Unlock()

	return logrus.NewEntry(l.logger).WithFields(fields)
}
