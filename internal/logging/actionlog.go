package logging

import (
	"fmt"
	"os"
	"time"
)

// ActionLog appends one timestamped line per completed provisioning action
// to a fixed log file.
type ActionLog struct {
	path string

	// now is replaceable for tests.
	now func() time.Time
}

// NewActionLog returns an ActionLog writing to path. An empty path
// disables recording.
func NewActionLog(path string) *ActionLog {
	return &ActionLog{path: path, now: time.Now}
}

// Record appends the outcome of an action. A nil err records success.
// Recording is best effort: the log line never decides an action's fate,
// so write failures are surfaced as warnings only.
func (l *ActionLog) Record(action string, err error) {
	if l == nil || l.path == "" {
		return
	}

	var line string
	if err != nil {
		line = fmt.Sprintf("%s %s: failed: %v\n", l.now().Format("2006-01-02 15:04:05"), action, err)
	} else {
		line = fmt.Sprintf("%s %s: ok\n", l.now().Format("2006-01-02 15:04:05"), action)
	}

	f, ferr := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if ferr != nil {
		Warn("cannot open action log", "path", l.path, "error", ferr)
		return
	}
	defer f.Close()

	if _, werr := f.WriteString(line); werr != nil {
		Warn("cannot write action log", "path", l.path, "error", werr)
	}
}
