// Parser for the node-telemetry report: a flat whitespace-separated table keyed by node name, one
// line per node, produced by
//
//	ganglia disk_total disk_free bytes_in bytes_out cpu_idle
//
// Disk figures are in GB, the byte figures are rates in bytes/second, cpu_idle is a percentage.

package pbs

import (
	"strings"
)

type Telemetry struct {
	DiskTotal Bytes
	DiskFree  Bytes
	NetIn     Bytes
	NetOut    Bytes
	CpuIdle   Ratio
}

// Parse the raw telemetry text into a per-node-name map.  Lines that do not have the expected
// five columns are skipped; a missing report yields an empty map.
func ParseTelemetry(text string) map[string]Telemetry {
	telemetry := make(map[string]Telemetry)
	for _, line := range strings.Split(text, "\n") {
		cols := strings.Fields(line)
		if len(cols) != 6 {
			continue
		}
		var t Telemetry
		var err error
		if t.DiskTotal, err = parseGb(cols[1]); err != nil {
			continue
		}
		if t.DiskFree, err = parseGb(cols[2]); err != nil {
			continue
		}
		if t.NetIn, err = ParseBytes(cols[3]); err != nil {
			continue
		}
		if t.NetOut, err = ParseBytes(cols[4]); err != nil {
			continue
		}
		if t.CpuIdle, err = ParseRatio(cols[5]); err != nil {
			continue
		}
		telemetry[cols[0]] = t
	}
	return telemetry
}

func parseGb(s string) (Bytes, error) {
	v, err := ParseRatio(s)
	if err != nil {
		return Bytes{}, err
	}
	if !v.Present() {
		return Bytes{}, nil
	}
	return BytesOf(v.Value() * 1e9), nil
}

// Left join on node identity: nodes found in the telemetry are enriched, the rest keep absent
// telemetry fields, and telemetry rows with no matching inventory node are discarded.
func MergeTelemetry(nodes []*Node, telemetry map[string]Telemetry) {
	for _, node := range nodes {
		t, found := telemetry[node.Name]
		if !found {
			continue
		}
		node.DiskTotal = t.DiskTotal
		node.DiskFree = t.DiskFree
		node.DiskUsed = t.DiskTotal.Sub(t.DiskFree)
		if t.DiskTotal.Present() && t.DiskTotal.Value() > 0 && node.DiskUsed.Present() {
			node.DiskUtil = RatioOf(node.DiskUsed.Value() / t.DiskTotal.Value())
		}
		node.NetIn = t.NetIn
		node.NetOut = t.NetOut
		node.NetTotal = t.NetIn.Add(t.NetOut)
		node.CpuIdle = t.CpuIdle
		if node.State.Unavailable() {
			node.NetTotal = Bytes{}
		}
	}
}
