package users

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/pbs"
	"github.com/tdegeus/mate-cluster/table"
)

var defaultOwnerKeys = []string{
	"owner", "jobs", "cpus", "memused", "walltime", "claimtime", "cputime", "score",
}

func (uc *UsersCommand) columns() ([]table.Col, error) {
	keys := uc.ColumnKeys()
	if len(keys) == 0 {
		spec := ""
		common.ApplyDefault(&spec, common.ColumnsUsers)
		keys = cmd.SplitSpec(spec)
	}
	if len(keys) == 0 {
		keys = defaultOwnerKeys
	}
	return table.SelectColumns(ownerColumns(uc.Placeholder), keys)
}

func ownerColumns(ph string) []table.Col {
	owner := func(row any) *pbs.Owner {
		return row.(*pbs.Owner)
	}
	return []table.Col{
		{Key: "owner", Header: "Owner", Min: 6, Rank: 1,
			Fmt: func(r any) string { return owner(r).Owner }},
		{Key: "cpus", Header: "Cpus", Min: 4, Rank: 2, Right: true,
			Fmt: func(r any) string { return strconv.Itoa(owner(r).Cpus) }},
		{Key: "score", Header: "Score", Min: 4, Rank: 3, Right: true,
			Fmt: func(r any) string { return owner(r).Score.StringOr(ph) }},
		{Key: "jobs", Header: "Jobs", Min: 4, Rank: 4, Right: true,
			Fmt: func(r any) string { return strconv.Itoa(owner(r).Jobs) }},
		{Key: "memused", Header: "Mem", Min: 5, Rank: 5, Right: true,
			Fmt: func(r any) string { return owner(r).MemUsed.StringOr(ph) }},
		{Key: "walltime", Header: "Time", Min: 5, Rank: 6, Right: true,
			Fmt: func(r any) string { return owner(r).WallTime.StringOr(ph) }},
		{Key: "claimtime", Header: "Claim", Min: 5, Rank: 7, Right: true,
			Fmt: func(r any) string { return owner(r).ClaimTime.StringOr(ph) }},
		{Key: "cputime", Header: "CPU", Min: 5, Rank: 8, Right: true,
			Fmt: func(r any) string { return owner(r).CpuTime.StringOr(ph) }},
	}
}

// Keys whose value can be absent; rows without one keep their place when sorting.
// MT: Constant after initialization
var ownerSortPresence = map[string]func(*pbs.Owner) bool{
	"score":     func(o *pbs.Owner) bool { return o.Score.Present() },
	"memused":   func(o *pbs.Owner) bool { return o.MemUsed.Present() },
	"walltime":  func(o *pbs.Owner) bool { return o.WallTime.Present() },
	"claimtime": func(o *pbs.Owner) bool { return o.ClaimTime.Present() },
	"cputime":   func(o *pbs.Owner) bool { return o.CpuTime.Present() },
}

// MT: Constant after initialization
var ownerSorters = map[string]func(a, b *pbs.Owner) int{
	"owner": func(a, b *pbs.Owner) int {
		return strings.Compare(a.Owner, b.Owner)
	},
	"jobs": func(a, b *pbs.Owner) int {
		return cmp.Compare(a.Jobs, b.Jobs)
	},
	"cpus": func(a, b *pbs.Owner) int {
		return cmp.Compare(a.Cpus, b.Cpus)
	},
	"memused": func(a, b *pbs.Owner) int {
		return a.MemUsed.Cmp(b.MemUsed)
	},
	"walltime": func(a, b *pbs.Owner) int {
		return a.WallTime.Cmp(b.WallTime)
	},
	"claimtime": func(a, b *pbs.Owner) int {
		return a.ClaimTime.Cmp(b.ClaimTime)
	},
	"cputime": func(a, b *pbs.Owner) int {
		return a.CpuTime.Cmp(b.CpuTime)
	},
	"score": func(a, b *pbs.Owner) int {
		return a.Score.Cmp(b.Score)
	},
}
