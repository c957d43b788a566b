package core

import "fmt"

// Stage names one phase of the call contract. Within a single host pass the
// stages always run in this order and never concurrently.
type Stage int

const (
	StageEvent Stage = iota
	StageLifecycle
	StageUpdate
	StageLayout
	StagePaint
)

func (s Stage) String() string {
	switch s {
	case StageEvent:
		return "event"
	case StageLifecycle:
		return "lifecycle"
	case StageUpdate:
		return "update"
	case StageLayout:
		return "layout"
	case StagePaint:
		return "paint"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}
