package nodes

import (
	"os"
	"path"
	"strings"
	"testing"
)

var pbsnodesReport = `compute-0-1
     state = free
     np = 16
     properties = intel
     jobs = 0/690.hal9000.example.org, 1/690.hal9000.example.org
     status = totmem=66059692kb,physmem=49449668kb,availmem=58229600kb,loadave=2.00

compute-0-2
     state = down
     np = 16
     properties = amd
`

var qstatReport = "Job Id: 690.hal9000.example.org\n" +
	"    Job_Owner = tdegeus@hal9000.example.org\n" +
	"    resources_used.cput = 02:00:00\n" +
	"    resources_used.walltime = 01:00:00\n" +
	"    job_state = R\n" +
	"    exec_host = compute-0-1/0+compute-0-1/1\n"

var gangliaReport = "compute-0-1 917.9 667.0 675.1 239.7 99.9\n"

func write(t *testing.T, name, text string) string {
	t.Helper()
	fn := path.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestNodesReport(t *testing.T) {
	nc := New()
	nc.PbsnodesFile = write(t, "pbsnodes.txt", pbsnodesReport)
	nc.QstatFile = write(t, "qstat.txt", qstatReport)
	nc.Color = "never"
	if err := nc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := nc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatal(out.String())
	}
	// No telemetry: the telemetry columns are pruned entirely
	if strings.Contains(lines[0], "Disk") || strings.Contains(lines[0], "Net") {
		t.Fatal(lines[0])
	}
	// Both cpus of job 690 on this node: 2h cputime over 1h walltime on 2 claimed cpus
	free := lines[2]
	for _, want := range []string{"free", "16", "14", "intel", "1.00"} {
		if !strings.Contains(free, want) {
			t.Fatal(free)
		}
	}
	down := lines[3]
	for _, want := range []string{"down", "0", "--"} {
		if !strings.Contains(down, want) {
			t.Fatal(down)
		}
	}
}

func TestNodesGanglia(t *testing.T) {
	nc := New()
	nc.PbsnodesFile = write(t, "pbsnodes.txt", pbsnodesReport)
	nc.QstatFile = write(t, "qstat.txt", qstatReport)
	nc.GangliaFile = write(t, "ganglia.txt", gangliaReport)
	nc.Color = "never"
	if err := nc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := nc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if !strings.Contains(lines[0], "Disk%") {
		t.Fatal(lines[0])
	}
	// 250.9 of 917.9 GB used
	if !strings.Contains(lines[2], "251gb") || !strings.Contains(lines[2], "0.27") {
		t.Fatal(lines[2])
	}
}

func TestNodesFilter(t *testing.T) {
	nc := New()
	nc.PbsnodesFile = write(t, "pbsnodes.txt", pbsnodesReport)
	nc.QstatFile = write(t, "qstat.txt", qstatReport)
	nc.Color = "never"
	nc.NodeSpec = "2"
	if err := nc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := nc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "free") || !strings.Contains(out.String(), "down") {
		t.Fatal(out.String())
	}
}
