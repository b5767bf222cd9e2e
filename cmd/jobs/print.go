package jobs

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/pbs"
	"github.com/tdegeus/mate-cluster/table"
)

// The columns shown when neither -cols nor the rc file asks for others.
var defaultJobKeys = []string{
	"id", "owner", "resnode", "pmem", "memused", "state", "score", "walltime", "name",
}

func (jc *JobsCommand) columns() ([]table.Col, error) {
	keys := jc.ColumnKeys()
	if len(keys) == 0 {
		spec := ""
		common.ApplyDefault(&spec, common.ColumnsJobs)
		keys = cmd.SplitSpec(spec)
	}
	if len(keys) == 0 {
		keys = defaultJobKeys
	}
	return table.SelectColumns(jobColumns(jc.Placeholder), keys)
}

// All known job columns.  Rank is the truncation priority: when the table must shrink, high ranks
// go first.
func jobColumns(ph string) []table.Col {
	job := func(row any) *pbs.Job {
		return row.(*pbs.Job)
	}
	return []table.Col{
		{Key: "id", Header: "ID", Min: 4, Rank: 1, Right: true,
			Fmt: func(r any) string { return job(r).Id }},
		{Key: "state", Header: "S", Min: 1, Rank: 2,
			Fmt: func(r any) string { return job(r).State.String() }},
		{Key: "owner", Header: "Owner", Min: 6, Rank: 3,
			Fmt: func(r any) string { return job(r).Owner }},
		{Key: "score", Header: "Score", Min: 4, Rank: 4, Right: true,
			Fmt: func(r any) string { return job(r).Score.StringOr(ph) }},
		{Key: "walltime", Header: "Time", Min: 5, Rank: 5, Right: true,
			Fmt: func(r any) string { return job(r).WallTime.StringOr(ph) }},
		{Key: "memused", Header: "Mem", Min: 5, Rank: 6, Right: true,
			Fmt: func(r any) string { return job(r).MemUsed.StringOr(ph) }},
		{Key: "resnode", Header: "Res", Min: 5, Rank: 7,
			Fmt: func(r any) string { return job(r).ResNode.String() }},
		{Key: "pmem", Header: "pmem", Min: 4, Rank: 8, Right: true,
			Fmt: func(r any) string { return job(r).MemReq.StringOr(ph) }},
		{Key: "name", Header: "Name", Min: 8, Rank: 9,
			Fmt: func(r any) string { return job(r).Name }},
		{Key: "node", Header: "Node", Min: 4, Rank: 10, Right: true,
			Fmt: func(r any) string { return job(r).Hosts.String() }},
		{Key: "cputime", Header: "CPU", Min: 5, Rank: 11, Right: true,
			Fmt: func(r any) string { return job(r).CpuTime.StringOr(ph) }},
		{Key: "output", Header: "Output", Min: 10, Rank: 12,
			Fmt: func(r any) string { return job(r).OutputPath }},
		{Key: "args", Header: "Args", Min: 10, Rank: 13,
			Fmt: func(r any) string { return job(r).SubmitArgs }},
	}
}

// MT: Constant after initialization
var jobSorters = map[string]func(a, b *pbs.Job) int{
	"id": func(a, b *pbs.Job) int {
		return compareIds(a.Id, b.Id)
	},
	"owner": func(a, b *pbs.Job) int {
		return strings.Compare(a.Owner, b.Owner)
	},
	"name": func(a, b *pbs.Job) int {
		return strings.Compare(a.Name, b.Name)
	},
	"state": func(a, b *pbs.Job) int {
		return int(a.State) - int(b.State)
	},
	"score": func(a, b *pbs.Job) int {
		return a.Score.Cmp(b.Score)
	},
	"walltime": func(a, b *pbs.Job) int {
		return a.WallTime.Cmp(b.WallTime)
	},
	"cputime": func(a, b *pbs.Job) int {
		return a.CpuTime.Cmp(b.CpuTime)
	},
	"memused": func(a, b *pbs.Job) int {
		return a.MemUsed.Cmp(b.MemUsed)
	},
	"pmem": func(a, b *pbs.Job) int {
		return a.MemReq.Cmp(b.MemReq)
	},
}

// Keys whose value can be absent; rows without one keep their place when sorting.
// MT: Constant after initialization
var jobSortPresence = map[string]func(*pbs.Job) bool{
	"score":    func(j *pbs.Job) bool { return j.Score.Present() },
	"walltime": func(j *pbs.Job) bool { return j.WallTime.Present() },
	"cputime":  func(j *pbs.Job) bool { return j.CpuTime.Present() },
	"memused":  func(j *pbs.Job) bool { return j.MemUsed.Present() },
	"pmem":     func(j *pbs.Job) bool { return j.MemReq.Present() },
}

// Job ids are usually plain numbers; compare numerically when they are, lexically otherwise.
func compareIds(a, b string) int {
	na, erra := strconv.Atoi(a)
	nb, errb := strconv.Atoi(b)
	if erra == nil && errb == nil {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(a, b)
}
