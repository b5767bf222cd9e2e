// Lifecycle states as the scheduler reports them.  No transitions are modeled here: state is read
// verbatim from the report each cycle, and unrecognized codes map to Unknown rather than failing.

package pbs

import "strings"

type JobState int

const (
	JobUnknown JobState = iota
	JobQueued
	JobRunning
	JobExiting
	JobError
)

// Map the scheduler's single-letter job state code.  "C" (completing) folds into Exiting.
func ParseJobState(code string) JobState {
	switch strings.TrimSpace(code) {
	case "Q":
		return JobQueued
	case "R":
		return JobRunning
	case "E", "C":
		return JobExiting
	case "X":
		return JobError
	default:
		return JobUnknown
	}
}

func (s JobState) String() string {
	switch s {
	case JobQueued:
		return "Q"
	case JobRunning:
		return "R"
	case JobExiting:
		return "E"
	case JobError:
		return "X"
	default:
		return "?"
	}
}

func (s JobState) Name() string {
	switch s {
	case JobQueued:
		return "queued"
	case JobRunning:
		return "running"
	case JobExiting:
		return "exiting"
	case JobError:
		return "error"
	default:
		return "unknown"
	}
}

type NodeState int

const (
	NodeUnknown NodeState = iota
	NodeFree
	NodeJobExclusive
	NodeOffline
	NodeDown
)

// Map the node state token.  The report may join several states with commas
// ("down,job-exclusive"); unavailability wins over occupancy.
func ParseNodeState(text string) NodeState {
	state := NodeUnknown
	for _, part := range strings.Split(text, ",") {
		switch strings.TrimSpace(part) {
		case "down":
			return NodeDown
		case "offline":
			state = NodeOffline
		case "job-exclusive":
			if state == NodeUnknown || state == NodeFree {
				state = NodeJobExclusive
			}
		case "free":
			if state == NodeUnknown {
				state = NodeFree
			}
		}
	}
	return state
}

func (s NodeState) String() string {
	switch s {
	case NodeFree:
		return "free"
	case NodeJobExclusive:
		return "job-exclusive"
	case NodeOffline:
		return "offline"
	case NodeDown:
		return "down"
	default:
		return "unknown"
	}
}

// An unavailable node runs nothing and reports stale figures.
func (s NodeState) Unavailable() bool {
	return s == NodeOffline || s == NodeDown
}
