package market

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownWindow reports a time-window label outside the supported set.
// Unknown labels fail instead of defaulting: a silent fallback to "all"
// would quietly change the denominator of every percentage downstream.
var ErrUnknownWindow = errors.New("unknown time window")

// Window is a relative lookback period selected by the caller.
type Window string

const (
	WindowAll      Window = "all"
	WindowWeek     Window = "1w"
	WindowTwoWeeks Window = "2w"
	WindowMonth    Window = "1m"
	WindowQuarter  Window = "3m"
)

// ParseWindow validates a window label. The empty string means "no
// filtering on this dimension" and maps to WindowAll.
func ParseWindow(label string) (Window, error) {
	switch Window(label) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowWeek, WindowTwoWeeks, WindowMonth, WindowQuarter:
		return Window(label), nil
	}
	return "", fmt.Errorf("%w %q: want one of 1w, 2w, 1m, 3m, all", ErrUnknownWindow, label)
}

// Days returns the window width in days, 0 for WindowAll.
func (w Window) Days() int {
	switch w {
	case WindowWeek:
		return 7
	case WindowTwoWeeks:
		return 14
	case WindowMonth:
		return 30
	case WindowQuarter:
		return 90
	}
	return 0
}

// Cutoff returns the earliest posting date admitted by the window.
// ok is false for WindowAll, meaning no date filtering at all.
func (w Window) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	days := w.Days()
	if days == 0 {
		return time.Time{}, false
	}
	return now.AddDate(0, 0, -days), true
}
