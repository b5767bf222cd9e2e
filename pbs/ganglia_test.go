package pbs

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e3
}

var gangliaReport = `compute-0-1 917.9 667.0 675.1 239.7 99.9
compute-0-3 not a number here x
short line
`

func TestParseTelemetry(t *testing.T) {
	telemetry := ParseTelemetry(gangliaReport)
	if len(telemetry) != 1 {
		t.Fatal(telemetry)
	}
	tel, found := telemetry["compute-0-1"]
	if !found {
		t.Fatal(telemetry)
	}
	// Disk figures arrive in GB
	if !near(tel.DiskTotal.Value(), 917.9e9) || !near(tel.DiskFree.Value(), 667.0e9) {
		t.Fatal(tel)
	}
	if tel.NetIn.Value() != 675.1 || tel.NetOut.Value() != 239.7 {
		t.Fatal(tel)
	}
	if tel.CpuIdle.Value() != 99.9 {
		t.Fatal(tel)
	}
}

func TestMergeTelemetry(t *testing.T) {
	nodes := []*Node{
		{Number: 1, Name: "compute-0-1", State: NodeFree},
		{Number: 2, Name: "compute-0-2", State: NodeFree},
	}
	MergeTelemetry(nodes, ParseTelemetry(gangliaReport))

	n := nodes[0]
	if !near(n.DiskUsed.Value(), 250.9e9) {
		t.Fatal(n.DiskUsed)
	}
	if v := n.DiskUtil.String(); v != "0.27" {
		t.Fatal(v)
	}
	if n.NetTotal.Value() != 675.1+239.7 {
		t.Fatal(n.NetTotal)
	}
	if n.CpuIdle.Value() != 99.9 {
		t.Fatal(n.CpuIdle)
	}

	// Left join: the node missing from the telemetry keeps absent fields
	n = nodes[1]
	if n.DiskTotal.Present() || n.DiskUtil.Present() || n.NetTotal.Present() {
		t.Fatal(n)
	}
}

func TestMergeTelemetryDownNode(t *testing.T) {
	nodes := []*Node{{Number: 1, Name: "compute-0-1", State: NodeDown}}
	MergeTelemetry(nodes, ParseTelemetry(gangliaReport))
	// Stale rates are suppressed, static disk sizes are kept
	if nodes[0].NetTotal.Present() {
		t.Fatal(nodes[0].NetTotal)
	}
	if !nodes[0].DiskTotal.Present() {
		t.Fatal(nodes[0].DiskTotal)
	}
}
