// FILE: lixenwraith/devlog/timer.go
package devlog

import "time"

// TimerSet holds all timers used in processLogs
type TimerSet struct {
	retentionTicker *time.Ticker
	retentionChan   <-chan time.Time
}

// setupProcessingTimers creates and configures all necessary timers for the processor
func (l *Logger) setupProcessingTimers() *TimerSet {
	timers := &TimerSet{}

	// Set up retention timer if a check interval is configured
	timers.retentionChan = l.setupRetentionTimer(timers)

	return timers
}

// closeProcessingTimers stops all active timers
func (l *Logger) closeProcessingTimers(timers *TimerSet) {
	if timers.retentionTicker != nil {
		timers.retentionTicker.Stop()
	}
}

// setupRetentionTimer configures the retention check timer.
// The ticker runs whenever an interval is set; retention_days is read per tick.
func (l *Logger) setupRetentionTimer(timers *TimerSet) <-chan time.Time {
	c := l.getConfig()
	retentionCheckInterval := time.Duration(c.RetentionCheckMins * float64(time.Minute))

	if retentionCheckInterval > 0 {
		timers.retentionTicker = time.NewTicker(retentionCheckInterval)
		return timers.retentionTicker.C
	}
	return nil
}
