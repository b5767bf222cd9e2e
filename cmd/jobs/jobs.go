// The jobs verb: one line per queued or running job, with resource usage and the cpu efficiency
// score.

package jobs

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/tdegeus/mate-cluster/cmd"
	"github.com/tdegeus/mate-cluster/pbs"
	"github.com/tdegeus/mate-cluster/table"
)

type JobsCommand struct {
	cmd.VerboseArgs
	cmd.SourceArgs
	cmd.FilterArgs
	cmd.FormatArgs
	cmd.ColorArgs
}

var _ cmd.ReportCommand = (*JobsCommand)(nil)

func New() *JobsCommand {
	return new(JobsCommand)
}

func (jc *JobsCommand) Summary() []string {
	return []string{
		"Print one line per job with the job's resource usage and its cpu",
		"efficiency score (cputime per claimed cpu-second, 1.00 = fully used).",
	}
}

func (jc *JobsCommand) Add(fs *cmd.CLI) {
	jc.VerboseArgs.Add(fs)
	jc.SourceArgs.Add(fs)
	jc.FilterArgs.Add(fs)
	jc.FormatArgs.Add(fs)
	jc.ColorArgs.Add(fs)
}

func (jc *JobsCommand) Validate() error {
	var e1, e2 error
	errs := errors.Join(
		jc.VerboseArgs.Validate(),
		jc.SourceArgs.Validate(),
		jc.FilterArgs.Validate(),
		jc.FormatArgs.Validate(),
		jc.ColorArgs.Validate(),
	)
	if jc.SortKey != "" {
		if _, found := jobSorters[jc.SortKey]; !found {
			e1 = fmt.Errorf("Unknown -sort column %s", jc.SortKey)
		}
	}
	if errs == nil {
		_, e2 = jc.columns()
	}
	return errors.Join(errs, e1, e2)
}

func (jc *JobsCommand) Perform(stdout, _ io.Writer) error {
	cols, err := jc.columns()
	if err != nil {
		return err
	}

	jobs := jc.FetchJobs()
	pbs.AttachJobScores(jobs)
	jobs = slices.DeleteFunc(jobs, func(j *pbs.Job) bool {
		return !jc.Match(j)
	})
	if jc.SortKey != "" {
		cmd.SortRows(jobs, jobSortPresence[jc.SortKey], jobSorters[jc.SortKey])
	}

	rows := make([]any, len(jobs))
	for i, j := range jobs {
		rows[i] = j
	}
	scheme := table.NewScheme(jc.Enabled(stdout))
	cmd.PrintReport(stdout, cols, rows, &jc.FormatArgs, scheme, jc.rowClass, jc.cellClass)
	return nil
}

func (jc *JobsCommand) rowClass(row any) table.Class {
	if jc.Selects(row.(*pbs.Job).Owner) {
		return table.ClassSelection
	}
	return table.ClassNone
}

func (jc *JobsCommand) cellClass(row any, key string) table.Class {
	j := row.(*pbs.Job)
	switch key {
	case "score":
		if badJobScore(j.Score) {
			return table.ClassWarning
		}
	case "memused":
		if overcommitted(j) {
			return table.ClassWarning
		}
	}
	return table.ClassNone
}

// A score far from 1 means claimed cpus sit idle (low) or the job steals cycles it did not claim
// (high).
func badJobScore(score pbs.Ratio) bool {
	return score.Present() && (score.Value() < 0.95 || score.Value() > 1.03)
}

// Using serious memory without having told the scheduler via pmem starves co-scheduled jobs.
func overcommitted(j *pbs.Job) bool {
	return !j.MemReq.Present() && j.MemUsed.Present() && j.MemUsed.Value() > 1e9
}
