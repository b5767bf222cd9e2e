// Shared argument bundles.  Each verb embeds the bundles it needs; Add registers the flags and
// Validate checks them, joining all complaints per errors.Join so the user sees everything at once.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/pbs"
)

///////////////////////////////////////////////////////////////////////////////////////////////////

type VerboseArgs struct {
	Verbose bool
}

func (va *VerboseArgs) Add(fs *CLI) {
	fs.Group("development")
	fs.BoolVar(&va.Verbose, "v", false, "Print verbose diagnostics")
}

func (va *VerboseArgs) Validate() error {
	return nil
}

func (va *VerboseArgs) VerboseFlag() bool {
	return va.Verbose
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Where the raw reports come from.  Each report normally comes from running a system command, but
// a file override replaces the command wholesale, which is what the tests and offline use need.

const (
	defaultQstatCommand    = "qstat -f"
	defaultPbsnodesCommand = "pbsnodes"
	defaultGangliaCommand  = "ganglia name disk_total disk_free bytes_in bytes_out cpu_idle"
)

type SourceArgs struct {
	QstatFile    string
	PbsnodesFile string
	GangliaFile  string

	qstatCommand    string
	pbsnodesCommand string
	gangliaCommand  string
}

func (sa *SourceArgs) Add(fs *CLI) {
	fs.Group("data-source")
	fs.StringVar(&sa.QstatFile, "qstat-file", "", "Read the qstat -f report from `filename`, not from the system")
	fs.StringVar(&sa.PbsnodesFile, "pbsnodes-file", "", "Read the pbsnodes report from `filename`, not from the system")
	fs.StringVar(&sa.GangliaFile, "ganglia-file", "", "Read the ganglia report from `filename`, not from the system")
}

func (sa *SourceArgs) Validate() error {
	sa.qstatCommand = defaultQstatCommand
	sa.pbsnodesCommand = defaultPbsnodesCommand
	sa.gangliaCommand = defaultGangliaCommand
	common.ApplyDefault(&sa.qstatCommand, common.CommandQstat)
	common.ApplyDefault(&sa.pbsnodesCommand, common.CommandPbsnodes)
	common.ApplyDefault(&sa.gangliaCommand, common.CommandGanglia)
	return nil
}

func (sa *SourceArgs) FetchJobs() []*pbs.Job {
	return pbs.ParseJobs(pbs.FetchReport(sa.QstatFile, sa.qstatCommand))
}

func (sa *SourceArgs) FetchNodes() []*pbs.Node {
	return pbs.ParseNodes(pbs.FetchReport(sa.PbsnodesFile, sa.pbsnodesCommand))
}

func (sa *SourceArgs) FetchTelemetry() map[string]pbs.Telemetry {
	return pbs.ParseTelemetry(pbs.FetchReport(sa.GangliaFile, sa.gangliaCommand))
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Record filters.

type FilterArgs struct {
	UserSpec     string
	NameSpec     string
	NodeSpec     string
	IdSpec       string
	WalltimeSpec string
	MemSpec      string

	Users       []string
	Nodes       []int
	Ids         []string
	MinWalltime pbs.Seconds
	MinMem      pbs.Bytes
}

func (fa *FilterArgs) Add(fs *CLI) {
	fs.Group("record-filter")
	fs.StringVar(&fa.UserSpec, "u", "", "Select jobs by these `owners`, comma-separated")
	fs.StringVar(&fa.NameSpec, "name", "", "Select jobs whose name contains `text`")
	fs.StringVar(&fa.NodeSpec, "n", "", "Select jobs running on these `nodes`, comma-separated numbers")
	fs.StringVar(&fa.IdSpec, "id", "", "Select jobs by these job `ids`, comma-separated")
	fs.StringVar(&fa.WalltimeSpec, "walltime", "", "Select jobs that have run at least this `duration` (e.g. 2d, 12h, 1:30:00)")
	fs.StringVar(&fa.MemSpec, "mem", "", "Select jobs using at least this much `memory` (e.g. 2gb)")
}

func (fa *FilterArgs) Validate() error {
	var e1, e2, e3 error
	fa.Users = SplitSpec(fa.UserSpec)
	fa.Ids = SplitSpec(fa.IdSpec)
	for _, w := range SplitSpec(fa.NodeSpec) {
		n, err := strconv.Atoi(w)
		if err != nil {
			e1 = fmt.Errorf("Invalid node number %s", w)
			break
		}
		fa.Nodes = append(fa.Nodes, n)
	}
	if fa.WalltimeSpec != "" {
		fa.MinWalltime, e2 = pbs.ParseSeconds(fa.WalltimeSpec)
	}
	if fa.MemSpec != "" {
		fa.MinMem, e3 = pbs.ParseBytes(fa.MemSpec)
	}
	return errors.Join(e1, e2, e3)
}

func SplitSpec(spec string) []string {
	var words []string
	for _, w := range strings.Split(spec, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Whether the job passes every filter that was given.

func (fa *FilterArgs) Match(j *pbs.Job) bool {
	if len(fa.Users) > 0 && !slices.Contains(fa.Users, j.Owner) {
		return false
	}
	if fa.NameSpec != "" && !strings.Contains(j.Name, fa.NameSpec) {
		return false
	}
	if len(fa.Ids) > 0 && !slices.Contains(fa.Ids, j.Id) {
		return false
	}
	if len(fa.Nodes) > 0 {
		hit := false
		for _, n := range j.Hosts.Nodes() {
			if slices.Contains(fa.Nodes, n) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	// A job without a value cannot meet a minimum; Cmp alone will not exclude it since absent
	// compares equal to everything.
	if fa.MinWalltime.Present() && (!j.WallTime.Present() || j.WallTime.Cmp(fa.MinWalltime) < 0) {
		return false
	}
	if fa.MinMem.Present() && (!j.MemUsed.Present() || j.MemUsed.Cmp(fa.MinMem) < 0) {
		return false
	}
	return true
}

// Whether the node passes the node filter.  Only -n applies to nodes.

func (fa *FilterArgs) MatchNode(n *pbs.Node) bool {
	return len(fa.Nodes) == 0 || slices.Contains(fa.Nodes, n.Number)
}

// Whether the owner is among the selected ones, for highlighting.

func (fa *FilterArgs) Selects(owner string) bool {
	return len(fa.Users) > 0 && slices.Contains(fa.Users, owner)
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// How the table is printed.

type FormatArgs struct {
	Cols    string
	Long    bool
	SortKey string
	Width   int

	Placeholder string
	Ellipsis    string
	Separator   string
}

func (fa *FormatArgs) Add(fs *CLI) {
	fs.Group("printing")
	fs.StringVar(&fa.Cols, "cols", "", "Print these `columns`, comma-separated, in order")
	fs.BoolVar(&fa.Long, "long", false, "Print all columns at full width, ignoring the terminal width")
	fs.StringVar(&fa.SortKey, "sort", "", "Sort the records by this `column`")
	fs.IntVar(&fa.Width, "width", 0, "Assume a terminal of `n` columns, 0 to autodetect")
}

func (fa *FormatArgs) Validate() error {
	var e1 error
	if fa.Width < 0 {
		e1 = errors.New("-width cannot be negative")
	}
	common.ApplyDefault(&fa.Placeholder, common.OutputPlaceholder)
	common.ApplyDefault(&fa.Ellipsis, common.OutputEllipsis)
	common.ApplyDefault(&fa.Separator, common.OutputSeparator)
	if fa.Placeholder == "" {
		fa.Placeholder = pbs.Placeholder
	}
	if fa.Ellipsis == "" {
		fa.Ellipsis = "..."
	}
	if fa.Separator == "" {
		fa.Separator = "  "
	}
	return e1
}

// The column keys requested with -cols, or nil for the default set.

func (fa *FormatArgs) ColumnKeys() []string {
	return SplitSpec(fa.Cols)
}

///////////////////////////////////////////////////////////////////////////////////////////////////

type ColorArgs struct {
	Color string
}

func (ca *ColorArgs) Add(fs *CLI) {
	fs.Group("printing")
	fs.StringVar(&ca.Color, "color", "", "Colorize the output: `auto`, always, or never")
}

func (ca *ColorArgs) Validate() error {
	common.ApplyDefault(&ca.Color, common.OutputColor)
	if ca.Color == "" {
		ca.Color = "auto"
	}
	switch ca.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("Invalid -color value %s", ca.Color)
}

type fdWriter interface {
	Fd() uintptr
}

func (ca *ColorArgs) Enabled(out io.Writer) bool {
	switch ca.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}
