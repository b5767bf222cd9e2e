package jobs

import (
	"os"
	"path"
	"strings"
	"testing"
)

var qstatReport = "Job Id: 690.hal9000.example.org\n" +
	"    Job_Name = job32\n" +
	"    Job_Owner = tdegeus@hal9000.example.org\n" +
	"    resources_used.cput = 995:58:01\n" +
	"    resources_used.mem = 6286932kb\n" +
	"    resources_used.walltime = 142:32:40\n" +
	"    job_state = R\n" +
	"    Resource_List.nodes = 1:ppn=7:intel\n" +
	"    exec_host = compute-0-9/6+compute-0-9/5+compute-0-9/4+compute-0-9/3+comp\n" +
	"\tute-0-9/2+compute-0-9/1+compute-0-9/0\n" +
	"\n" +
	"Job Id: 703.hal9000.example.org\n" +
	"    Job_Name = waiting\n" +
	"    Job_Owner = alice@hal9000.example.org\n" +
	"    job_state = Q\n" +
	"    Resource_List.nodes = nodes=2:ppn=4\n" +
	"    Resource_List.pmem = 2gb\n"

func reportFile(t *testing.T) string {
	t.Helper()
	fn := path.Join(t.TempDir(), "qstat.txt")
	if err := os.WriteFile(fn, []byte(qstatReport), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestJobsReport(t *testing.T) {
	jc := New()
	jc.QstatFile = reportFile(t)
	jc.Color = "never"
	if err := jc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := jc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatal(out.String())
	}
	if !strings.Contains(lines[0], "ID") || !strings.Contains(lines[0], "Name") {
		t.Fatal(lines[0])
	}
	if !strings.HasPrefix(lines[1], "--") {
		t.Fatal(lines[1])
	}
	running := lines[2]
	for _, want := range []string{"690", "tdegeus", "R", "1:7:i", "5.9d", "1.00", "6gb", "job32"} {
		if !strings.Contains(running, want) {
			t.Fatal(running)
		}
	}
	queued := lines[3]
	for _, want := range []string{"703", "alice", "Q", "2:4", "2gb", "--", "waiting"} {
		if !strings.Contains(queued, want) {
			t.Fatal(queued)
		}
	}
}

func TestJobsSortAndFilter(t *testing.T) {
	jc := New()
	jc.QstatFile = reportFile(t)
	jc.Color = "never"
	jc.SortKey = "owner"
	if err := jc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := jc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if !strings.Contains(lines[2], "alice") || !strings.Contains(lines[3], "tdegeus") {
		t.Fatal(out.String())
	}

	jc = New()
	jc.QstatFile = reportFile(t)
	jc.Color = "never"
	jc.UserSpec = "alice"
	if err := jc.Validate(); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := jc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "tdegeus") || !strings.Contains(out.String(), "alice") {
		t.Fatal(out.String())
	}
}

// Sorting by a key that some records lack must leave those records where they were.
func TestJobsSortAbsentScore(t *testing.T) {
	report := "Job Id: 1.hal9000.example.org\n" +
		"    Job_Name = hot\n" +
		"    Job_Owner = alice@hal9000.example.org\n" +
		"    resources_used.cput = 110:00:00\n" +
		"    resources_used.walltime = 100:00:00\n" +
		"    job_state = R\n" +
		"    Resource_List.nodes = 1:ppn=1\n" +
		"\n" +
		"Job Id: 2.hal9000.example.org\n" +
		"    Job_Name = pending\n" +
		"    Job_Owner = bob@hal9000.example.org\n" +
		"    job_state = Q\n" +
		"    Resource_List.nodes = 1:ppn=1\n" +
		"\n" +
		"Job Id: 3.hal9000.example.org\n" +
		"    Job_Name = cold\n" +
		"    Job_Owner = carol@hal9000.example.org\n" +
		"    resources_used.cput = 90:00:00\n" +
		"    resources_used.walltime = 100:00:00\n" +
		"    job_state = R\n" +
		"    Resource_List.nodes = 1:ppn=1\n"
	fn := path.Join(t.TempDir(), "qstat.txt")
	if err := os.WriteFile(fn, []byte(report), 0644); err != nil {
		t.Fatal(err)
	}

	jc := New()
	jc.QstatFile = fn
	jc.Color = "never"
	jc.SortKey = "score"
	if err := jc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := jc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if !strings.Contains(lines[2], "0.90") ||
		!strings.Contains(lines[3], "pending") ||
		!strings.Contains(lines[4], "1.10") {
		t.Fatal(out.String())
	}
}

func TestJobsBadArgs(t *testing.T) {
	jc := New()
	jc.SortKey = "salary"
	if err := jc.Validate(); err == nil {
		t.Fatal("bad sort key accepted")
	}
	jc = New()
	jc.Cols = "id,salary"
	if err := jc.Validate(); err == nil {
		t.Fatal("bad column accepted")
	}
}
