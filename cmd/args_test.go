package cmd

import (
	"testing"

	"github.com/tdegeus/mate-cluster/pbs"
)

func TestFilterArgs(t *testing.T) {
	fa := FilterArgs{UserSpec: "tdegeus,alice", NodeSpec: "9", WalltimeSpec: "1h"}
	if err := fa.Validate(); err != nil {
		t.Fatal(err)
	}

	hit := &pbs.Job{Id: "690", Owner: "tdegeus",
		Hosts:    pbs.HostsOf(pbs.HostSlot{Node: 9, Cpu: 0}),
		WallTime: pbs.SecondsOf(7200)}
	if !fa.Match(hit) {
		t.Fatal("expected match")
	}
	if !fa.Selects("alice") || fa.Selects("bob") {
		t.Fatal("bad selection")
	}

	// Wrong owner
	miss := *hit
	miss.Owner = "bob"
	if fa.Match(&miss) {
		t.Fatal("owner filter ignored")
	}
	// Wrong node
	miss = *hit
	miss.Hosts = pbs.HostsOf(pbs.HostSlot{Node: 3, Cpu: 0})
	if fa.Match(&miss) {
		t.Fatal("node filter ignored")
	}
	// Too short
	miss = *hit
	miss.WallTime = pbs.SecondsOf(60)
	if fa.Match(&miss) {
		t.Fatal("walltime filter ignored")
	}
	// No walltime at all cannot meet the minimum
	miss = *hit
	miss.WallTime = pbs.Seconds{}
	if fa.Match(&miss) {
		t.Fatal("absent walltime passed the filter")
	}
}

func TestFilterArgsAbsentMem(t *testing.T) {
	fa := FilterArgs{MemSpec: "2gb"}
	if err := fa.Validate(); err != nil {
		t.Fatal(err)
	}
	if !fa.Match(&pbs.Job{MemUsed: pbs.BytesOf(3e9)}) {
		t.Fatal("expected match")
	}
	if fa.Match(&pbs.Job{MemUsed: pbs.BytesOf(1e9)}) || fa.Match(&pbs.Job{}) {
		t.Fatal("mem filter ignored")
	}
}

func TestFilterArgsName(t *testing.T) {
	fa := FilterArgs{NameSpec: "sim"}
	if err := fa.Validate(); err != nil {
		t.Fatal(err)
	}
	if !fa.Match(&pbs.Job{Name: "big-sim-32"}) || fa.Match(&pbs.Job{Name: "postprocess"}) {
		t.Fatal("name filter broken")
	}
}

func TestFilterArgsErrors(t *testing.T) {
	fa := FilterArgs{NodeSpec: "nine"}
	if err := fa.Validate(); err == nil {
		t.Fatal("bad node spec accepted")
	}
	fa = FilterArgs{MemSpec: "-2gb"}
	if err := fa.Validate(); err == nil {
		t.Fatal("bad mem spec accepted")
	}
}

func TestFormatArgs(t *testing.T) {
	fa := FormatArgs{}
	if err := fa.Validate(); err != nil {
		t.Fatal(err)
	}
	if fa.Placeholder != pbs.Placeholder || fa.Ellipsis != "..." || fa.Separator != "  " {
		t.Fatal(fa)
	}
	fa = FormatArgs{Width: -1}
	if err := fa.Validate(); err == nil {
		t.Fatal("negative width accepted")
	}
}

func TestColorArgs(t *testing.T) {
	ca := ColorArgs{}
	if err := ca.Validate(); err != nil || ca.Color != "auto" {
		t.Fatal(ca, err)
	}
	ca = ColorArgs{Color: "sometimes"}
	if err := ca.Validate(); err == nil {
		t.Fatal("bad color mode accepted")
	}
	ca = ColorArgs{Color: "never"}
	if ca.Enabled(nil) {
		t.Fatal("never is on")
	}
	ca = ColorArgs{Color: "always"}
	if !ca.Enabled(nil) {
		t.Fatal("always is off")
	}
}
