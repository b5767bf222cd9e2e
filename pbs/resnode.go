// The CPU-allocation token of a job: node count, processors per node, and an optional CPU
// architecture tag ("intel"/"amd").

package pbs

import (
	"fmt"
	"strconv"
	"strings"
)

type ResNode struct {
	Nodes   int
	Ppn     int
	CpuType string
}

// Parse the scheduler's resource token.  The full form is "nodes=2:ppn=4:intel"; degenerate forms
// seen in the wild are "ppn=4", a bare node count, and the compact "2:4:intel".  Other resources
// may trail after a comma and are ignored.  Missing counts default to 1.
func ParseResNode(text string) (ResNode, error) {
	s := strings.TrimSpace(text)
	if absentToken(s) {
		return ResNode{}, fmt.Errorf("Empty resource token")
	}
	// Isolate the nodes clause from any other comma-separated resources.
	if _, after, found := strings.Cut(s, "nodes="); found {
		s = "nodes=" + after
	}
	s, _, _ = strings.Cut(s, ",")

	r := ResNode{Nodes: 1, Ppn: 1}
	bare := 0
	for _, part := range strings.Split(s, ":") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "nodes="):
			n, err := strconv.Atoi(part[len("nodes="):])
			if err != nil || n < 1 {
				return ResNode{}, fmt.Errorf("Bad node count in %q", text)
			}
			r.Nodes = n
		case strings.HasPrefix(part, "ppn="):
			n, err := strconv.Atoi(part[len("ppn="):])
			if err != nil || n < 1 {
				return ResNode{}, fmt.Errorf("Bad ppn count in %q", text)
			}
			r.Ppn = n
		default:
			if n, err := strconv.Atoi(part); err == nil {
				// Compact form: the first bare number is nodes, the second is ppn.
				if n < 1 {
					return ResNode{}, fmt.Errorf("Bad count in %q", text)
				}
				switch bare {
				case 0:
					r.Nodes = n
				case 1:
					r.Ppn = n
				}
				bare++
			} else if part != "" {
				r.CpuType = part
			}
		}
	}
	return r, nil
}

// Total claimed CPUs.
func (r ResNode) Cpus() int {
	return r.Nodes * r.Ppn
}

func (r ResNode) Empty() bool {
	return r.Nodes == 0 && r.Ppn == 0
}

// Compact display form: "2:4:i" - one letter of the CPU type.
func (r ResNode) String() string {
	if r.Empty() {
		return ""
	}
	s := fmt.Sprintf("%d:%d", r.Nodes, r.Ppn)
	if r.CpuType != "" {
		s += ":" + r.CpuType[:1]
	}
	return s
}

// The full form the scheduler accepts as a submission option.
func (r ResNode) PbsString() string {
	if r.Empty() {
		return ""
	}
	s := fmt.Sprintf("nodes=%d:ppn=%d", r.Nodes, r.Ppn)
	if r.CpuType != "" {
		s += ":" + r.CpuType
	}
	return s
}
