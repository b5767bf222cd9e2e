// The exec-host token of a running job: one CPU slot per entry, each on a numbered compute node.
// A job spanning several nodes via domain decomposition has entries on each of them.

package pbs

import (
	"fmt"
	"strconv"
	"strings"
)

type HostSlot struct {
	Node int
	Cpu  int // -1 when the report carried no slot number
}

type Hosts struct {
	slots []HostSlot
}

func HostsOf(slots ...HostSlot) Hosts {
	return Hosts{slots}
}

// Parse the scheduler's exec-host syntax, "compute-0-1/12+compute-0-2/3".  The node number is the
// numeric tail of the node name; the slot number after "/" may be missing.  An empty token parses
// to the empty host list without error.
func ParseHosts(text string) (Hosts, error) {
	s := strings.TrimSpace(text)
	if absentToken(s) {
		return Hosts{}, nil
	}
	var slots []HostSlot
	for _, entry := range strings.Split(s, "+") {
		name, cpuText, haveCpu := strings.Cut(entry, "/")
		node, err := nodeNumber(name)
		if err != nil {
			return Hosts{}, err
		}
		cpu := -1
		if haveCpu {
			cpu, err = strconv.Atoi(strings.TrimSpace(cpuText))
			if err != nil {
				return Hosts{}, fmt.Errorf("Bad cpu slot in host token %q", entry)
			}
		}
		slots = append(slots, HostSlot{node, cpu})
	}
	return Hosts{slots}, nil
}

// "compute-0-13" -> 13.  Any name with a numeric tail after the last "-" works; a bare number is
// accepted too.
func nodeNumber(name string) (int, error) {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		s = s[i+1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("No node number in host name %q", name)
	}
	return n, nil
}

func (h Hosts) Empty() bool {
	return len(h.slots) == 0
}

// The claimed CPU count: one slot per entry.
func (h Hosts) Count() int {
	return len(h.slots)
}

// Distinct node numbers, in first-seen order.
func (h Hosts) Nodes() []int {
	var nodes []int
	seen := make(map[int]bool)
	for _, s := range h.slots {
		if !seen[s.Node] {
			seen[s.Node] = true
			nodes = append(nodes, s.Node)
		}
	}
	return nodes
}

// The number of CPU slots this job holds on the given node.
func (h Hosts) CpusOn(node int) int {
	n := 0
	for _, s := range h.slots {
		if s.Node == node {
			n++
		}
	}
	return n
}

// Narrowest display form: the node number, starred when the job spans several nodes.
func (h Hosts) String() string {
	if len(h.slots) == 0 {
		return ""
	}
	first := h.slots[0].Node
	for _, s := range h.slots[1:] {
		if s.Node != first {
			return fmt.Sprintf("%d*", first)
		}
	}
	return strconv.Itoa(first)
}

// Comma list of distinct node numbers: "1,2".
func (h Hosts) FormatNodes() string {
	var b strings.Builder
	for i, n := range h.Nodes() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Widest form, one node/cpu pair per slot: "1/2,2/3".
func (h Hosts) FormatSlots() string {
	var b strings.Builder
	for i, s := range h.slots {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s.Node))
		if s.Cpu >= 0 {
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(s.Cpu))
		}
	}
	return b.String()
}
