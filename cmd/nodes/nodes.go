// The nodes verb: one line per compute node, with occupancy, memory pressure, the aggregate
// efficiency of the resident jobs, and (on request) the disk and network telemetry.

package nodes

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/pbs"
	"github.com/tdegeus/mate-cluster/table"
)

type NodesCommand struct {
	cmd.VerboseArgs
	cmd.SourceArgs
	cmd.FilterArgs
	cmd.FormatArgs
	cmd.ColorArgs

	Ganglia bool
}

var _ cmd.ReportCommand = (*NodesCommand)(nil)

func New() *NodesCommand {
	return new(NodesCommand)
}

func (nc *NodesCommand) Summary() []string {
	return []string{
		"Print one line per compute node with its occupancy, memory pressure and",
		"the aggregate cpu efficiency of the jobs it hosts.",
	}
}

func (nc *NodesCommand) Add(fs *cmd.CLI) {
	nc.VerboseArgs.Add(fs)
	nc.SourceArgs.Add(fs)
	nc.FilterArgs.Add(fs)
	nc.FormatArgs.Add(fs)
	nc.ColorArgs.Add(fs)
	fs.Group("data-source")
	fs.BoolVar(&nc.Ganglia, "ganglia", false, "Also query ganglia for disk and network telemetry (slow)")
}

func (nc *NodesCommand) Validate() error {
	var e1, e2 error
	// The rc file can turn the ganglia query on by default.
	if !nc.Ganglia {
		common.ApplyDefaultBool(&nc.Ganglia, common.CommandUseGanglia)
	}
	errs := errors.Join(
		nc.VerboseArgs.Validate(),
		nc.SourceArgs.Validate(),
		nc.FilterArgs.Validate(),
		nc.FormatArgs.Validate(),
		nc.ColorArgs.Validate(),
	)
	if nc.SortKey != "" {
		if _, found := nodeSorters[nc.SortKey]; !found {
			e1 = fmt.Errorf("Unknown -sort column %s", nc.SortKey)
		}
	}
	if errs == nil {
		_, e2 = nc.columns()
	}
	return errors.Join(errs, e1, e2)
}

func (nc *NodesCommand) Perform(stdout, _ io.Writer) error {
	cols, err := nc.columns()
	if err != nil {
		return err
	}

	nodes := nc.FetchNodes()
	jobs := nc.FetchJobs()
	pbs.AttachNodeScores(nodes, jobs)
	if nc.Ganglia || nc.GangliaFile != "" {
		pbs.MergeTelemetry(nodes, nc.FetchTelemetry())
	}
	nodes = slices.DeleteFunc(nodes, func(n *pbs.Node) bool {
		return !nc.MatchNode(n)
	})
	if nc.SortKey != "" {
		cmd.SortRows(nodes, nodeSortPresence[nc.SortKey], nodeSorters[nc.SortKey])
	}

	rows := make([]any, len(nodes))
	for i, n := range nodes {
		rows[i] = n
	}
	scheme := table.NewScheme(nc.Enabled(stdout))
	cmd.PrintReport(stdout, cols, rows, &nc.FormatArgs, scheme, nc.rowClass, nc.cellClass)
	return nil
}

func (nc *NodesCommand) rowClass(row any) table.Class {
	if row.(*pbs.Node).State.Unavailable() {
		return table.ClassDown
	}
	return table.ClassNone
}

func (nc *NodesCommand) cellClass(row any, key string) table.Class {
	n := row.(*pbs.Node)
	if n.State.Unavailable() {
		return table.ClassNone
	}
	switch key {
	case "cpufree":
		if n.CpusFree > 0 {
			return table.ClassFree
		}
	case "memused", "relmemu":
		if n.MemUtil.Present() && n.MemUtil.Value() > 0.8 {
			return table.ClassWarning
		}
	case "diskused", "reldisku":
		if n.DiskUtil.Present() && n.DiskUtil.Value() > 0.7 {
			return table.ClassWarning
		}
	}
	return table.ClassNone
}
