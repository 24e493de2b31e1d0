package keycolor

import (
	"fmt"
	"strings"
)

// Mode selects which side of the key match survives.
type Mode int

const (
	// KeepTarget keeps pixels matching the key and clears everything else.
	KeepTarget Mode = iota
	// ClearTarget clears pixels matching the key and keeps everything else.
	ClearTarget
)

// ParseMode converts "keep" or "clear" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep":
		return KeepTarget, nil
	case "clear":
		return ClearTarget, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want keep or clear)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case KeepTarget:
		return "keep"
	case ClearTarget:
		return "clear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
