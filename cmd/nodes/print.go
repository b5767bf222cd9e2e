package nodes

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/pbs"
	"github.com/tdegeus/mate-cluster/table"
)

// The default set includes the telemetry columns; without -ganglia every telemetry field is blank
// and the columns are pruned from the output.
var defaultNodeKeys = []string{
	"node", "state", "ctype", "ncpu", "cpufree", "memt", "memused", "relmemu", "score",
	"diskused", "reldisku", "net",
}

func (nc *NodesCommand) columns() ([]table.Col, error) {
	keys := nc.ColumnKeys()
	if len(keys) == 0 {
		spec := ""
		common.ApplyDefault(&spec, common.ColumnsNodes)
		keys = cmd.SplitSpec(spec)
	}
	if len(keys) == 0 {
		keys = defaultNodeKeys
	}
	return table.SelectColumns(nodeColumns(nc.Placeholder), keys)
}

func nodeColumns(ph string) []table.Col {
	node := func(row any) *pbs.Node {
		return row.(*pbs.Node)
	}
	return []table.Col{
		{Key: "node", Header: "Node", Min: 4, Rank: 1, Right: true,
			Fmt: func(r any) string { return strconv.Itoa(node(r).Number) }},
		{Key: "state", Header: "State", Min: 4, Rank: 2,
			Fmt: func(r any) string { return node(r).State.String() }},
		{Key: "ncpu", Header: "Ncpu", Min: 4, Rank: 3, Right: true,
			Fmt: func(r any) string { return strconv.Itoa(node(r).Cpus) }},
		{Key: "cpufree", Header: "Free", Min: 4, Rank: 4, Right: true,
			Fmt: func(r any) string { return strconv.Itoa(node(r).CpusFree) }},
		{Key: "score", Header: "Score", Min: 4, Rank: 5, Right: true,
			Fmt: func(r any) string { return node(r).Score.StringOr(ph) }},
		{Key: "memt", Header: "Mem", Min: 5, Rank: 6, Right: true,
			Fmt: func(r any) string { return node(r).MemTotal.StringOr(ph) }},
		{Key: "memused", Header: "Used", Min: 5, Rank: 7, Right: true,
			Fmt: func(r any) string { return node(r).MemUsed.StringOr(ph) }},
		{Key: "relmemu", Header: "Mem%", Min: 4, Rank: 8, Right: true,
			Fmt: func(r any) string { return node(r).MemUtil.StringOr(ph) }},
		{Key: "ctype", Header: "Type", Min: 4, Rank: 9,
			Fmt: func(r any) string { return node(r).CpuType }},
		// Telemetry columns render absent as blank, not as the placeholder: without the telemetry
		// report they are blank everywhere and the layout prunes them.
		{Key: "diskused", Header: "Disk", Min: 5, Rank: 10, Right: true,
			Fmt: func(r any) string { return node(r).DiskUsed.StringOr("") }},
		{Key: "reldisku", Header: "Disk%", Min: 5, Rank: 11, Right: true,
			Fmt: func(r any) string { return node(r).DiskUtil.StringOr("") }},
		{Key: "net", Header: "Net", Min: 5, Rank: 12, Right: true,
			Fmt: func(r any) string { return node(r).NetTotal.StringOr("") }},
		{Key: "load", Header: "Load", Min: 4, Rank: 13, Right: true,
			Fmt: func(r any) string { return node(r).Load.StringOr(ph) }},
		{Key: "cpuidle", Header: "Idle", Min: 4, Rank: 14, Right: true,
			Fmt: func(r any) string { return node(r).CpuIdle.StringOr("") }},
		{Key: "jobs", Header: "Jobs", Min: 4, Rank: 15,
			Fmt: func(r any) string { return strings.Join(node(r).JobIds, ",") }},
	}
}

// Keys whose value can be absent; rows without one keep their place when sorting.
// MT: Constant after initialization
var nodeSortPresence = map[string]func(*pbs.Node) bool{
	"score":    func(n *pbs.Node) bool { return n.Score.Present() },
	"memt":     func(n *pbs.Node) bool { return n.MemTotal.Present() },
	"memused":  func(n *pbs.Node) bool { return n.MemUsed.Present() },
	"relmemu":  func(n *pbs.Node) bool { return n.MemUtil.Present() },
	"diskused": func(n *pbs.Node) bool { return n.DiskUsed.Present() },
	"reldisku": func(n *pbs.Node) bool { return n.DiskUtil.Present() },
	"net":      func(n *pbs.Node) bool { return n.NetTotal.Present() },
	"load":     func(n *pbs.Node) bool { return n.Load.Present() },
}

// MT: Constant after initialization
var nodeSorters = map[string]func(a, b *pbs.Node) int{
	"node": func(a, b *pbs.Node) int {
		return cmp.Compare(a.Number, b.Number)
	},
	"state": func(a, b *pbs.Node) int {
		return int(a.State) - int(b.State)
	},
	"ncpu": func(a, b *pbs.Node) int {
		return cmp.Compare(a.Cpus, b.Cpus)
	},
	"cpufree": func(a, b *pbs.Node) int {
		return cmp.Compare(a.CpusFree, b.CpusFree)
	},
	"score": func(a, b *pbs.Node) int {
		return a.Score.Cmp(b.Score)
	},
	"memt": func(a, b *pbs.Node) int {
		return a.MemTotal.Cmp(b.MemTotal)
	},
	"memused": func(a, b *pbs.Node) int {
		return a.MemUsed.Cmp(b.MemUsed)
	},
	"relmemu": func(a, b *pbs.Node) int {
		return a.MemUtil.Cmp(b.MemUtil)
	},
	"ctype": func(a, b *pbs.Node) int {
		return strings.Compare(a.CpuType, b.CpuType)
	},
	"diskused": func(a, b *pbs.Node) int {
		return a.DiskUsed.Cmp(b.DiskUsed)
	},
	"reldisku": func(a, b *pbs.Node) int {
		return a.DiskUtil.Cmp(b.DiskUtil)
	},
	"net": func(a, b *pbs.Node) int {
		return a.NetTotal.Cmp(b.NetTotal)
	},
	"load": func(a, b *pbs.Node) int {
		return a.Load.Cmp(b.Load)
	},
}
