// The users verb: per-owner totals over the owner's queued and running jobs.

package users

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/pbs"
	"github.com/tdegeus/mate-cluster/table"
)

type UsersCommand struct {
	cmd.VerboseArgs
	cmd.SourceArgs
	cmd.FilterArgs
	cmd.FormatArgs
	cmd.ColorArgs
}

var _ cmd.ReportCommand = (*UsersCommand)(nil)

func New() *UsersCommand {
	return new(UsersCommand)
}

func (uc *UsersCommand) Summary() []string {
	return []string{
		"Print one line per job owner, summing the owner's queued and running",
		"jobs, with the owner's average cpu efficiency score.",
	}
}

func (uc *UsersCommand) Add(fs *cmd.CLI) {
	uc.VerboseArgs.Add(fs)
	uc.SourceArgs.Add(fs)
	uc.FilterArgs.Add(fs)
	uc.FormatArgs.Add(fs)
	uc.ColorArgs.Add(fs)
}

func (uc *UsersCommand) Validate() error {
	var e1, e2 error
	errs := errors.Join(
		uc.VerboseArgs.Validate(),
		uc.SourceArgs.Validate(),
		uc.FilterArgs.Validate(),
		uc.FormatArgs.Validate(),
		uc.ColorArgs.Validate(),
	)
	if uc.SortKey != "" {
		if _, found := ownerSorters[uc.SortKey]; !found {
			e1 = fmt.Errorf("Unknown -sort column %s", uc.SortKey)
		}
	}
	if errs == nil {
		_, e2 = uc.columns()
	}
	return errors.Join(errs, e1, e2)
}

func (uc *UsersCommand) Perform(stdout, _ io.Writer) error {
	cols, err := uc.columns()
	if err != nil {
		return err
	}

	jobs := uc.FetchJobs()
	pbs.AttachJobScores(jobs)
	jobs = slices.DeleteFunc(jobs, func(j *pbs.Job) bool {
		return !uc.Match(j)
	})
	owners := pbs.SummarizeOwners(jobs)
	if uc.SortKey != "" {
		cmd.SortRows(owners, ownerSortPresence[uc.SortKey], ownerSorters[uc.SortKey])
	}

	rows := make([]any, len(owners))
	for i, o := range owners {
		rows[i] = o
	}
	scheme := table.NewScheme(uc.Enabled(stdout))
	cmd.PrintReport(stdout, cols, rows, &uc.FormatArgs, scheme, uc.rowClass, uc.cellClass)
	return nil
}

func (uc *UsersCommand) rowClass(row any) table.Class {
	if uc.Selects(row.(*pbs.Owner).Owner) {
		return table.ClassSelection
	}
	return table.ClassNone
}

func (uc *UsersCommand) cellClass(row any, key string) table.Class {
	o := row.(*pbs.Owner)
	if key == "score" && badOwnerScore(o.Score) {
		return table.ClassWarning
	}
	return table.ClassNone
}

// The band is tighter than for single jobs: averaged over many jobs a drift from 1 means a habit,
// not an outlier.
func badOwnerScore(score pbs.Ratio) bool {
	return score.Present() && (score.Value() < 0.99 || score.Value() > 1.01)
}
