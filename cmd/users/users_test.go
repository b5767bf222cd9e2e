package users

import (
	"os"
	"path"
	"strings"
	"testing"
)

var qstatReport = "Job Id: 1.server\n" +
	"    Job_Owner = bob@server\n" +
	"    job_state = R\n" +
	"    Resource_List.nodes = 1:ppn=4\n" +
	"    resources_used.mem = 2gb\n" +
	"    resources_used.cput = 01:00:00\n" +
	"    resources_used.walltime = 00:15:00\n" +
	"\n" +
	"Job Id: 2.server\n" +
	"    Job_Owner = bob@server\n" +
	"    job_state = Q\n" +
	"    Resource_List.nodes = 1:ppn=4\n" +
	"\n" +
	"Job Id: 3.server\n" +
	"    Job_Owner = alice@server\n" +
	"    job_state = R\n" +
	"    Resource_List.nodes = 1:ppn=2\n" +
	"    resources_used.cput = 00:30:00\n" +
	"    resources_used.walltime = 01:00:00\n"

func TestUsersReport(t *testing.T) {
	uc := New()
	fn := path.Join(t.TempDir(), "qstat.txt")
	if err := os.WriteFile(fn, []byte(qstatReport), 0644); err != nil {
		t.Fatal(err)
	}
	uc.QstatFile = fn
	uc.Color = "never"
	if err := uc.Validate(); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := uc.Perform(&out, os.Stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatal(out.String())
	}
	if !strings.Contains(lines[0], "Owner") || !strings.Contains(lines[0], "Score") {
		t.Fatal(lines[0])
	}
	// Ascending cpu count: alice (2) before bob (8)
	alice := lines[2]
	for _, want := range []string{"alice", "2", "0.25"} {
		if !strings.Contains(alice, want) {
			t.Fatal(alice)
		}
	}
	// Bob: one running job at score 1.00, one queued without a score
	bob := lines[3]
	for _, want := range []string{"bob", "8", "2", "1.00", "2gb"} {
		if !strings.Contains(bob, want) {
			t.Fatal(bob)
		}
	}
}
