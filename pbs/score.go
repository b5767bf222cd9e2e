// Derived metrics: the per-job efficiency score, its per-node aggregate, and the per-owner
// summary.  A score near 1.0 means the claimed CPUs were actually kept busy.

package pbs

import (
	"slices"
	"strings"
)

// Attach cputime / (walltime * cpus) to every job that has both times and a positive CPU claim;
// everything else keeps the absent score.  Zero walltime gives no score, not an infinite one.
func AttachJobScores(jobs []*Job) {
	for _, job := range jobs {
		cpus := job.Cpus()
		if !job.CpuTime.Present() || !job.WallTime.Present() || job.WallTime.Value() <= 0 || cpus <= 0 {
			continue
		}
		job.Score = RatioOf(job.CpuTime.Value() / (job.WallTime.Value() * float64(cpus)))
	}
}

// Attach the aggregate score of each node's resident jobs: total CPU-time spent on this node
// divided by the CPU-seconds claimed on it.  A job's cputime is reported as the cross-host sum, so
// a multi-node job contributes proportionally to the slots it holds here.  A node with no resident
// jobs has no score - absent, never zero.
func AttachNodeScores(nodes []*Node, jobs []*Job) {
	byId := make(map[string]*Job, len(jobs))
	for _, job := range jobs {
		byId[job.Id] = job
	}
	for _, node := range nodes {
		var used, claimed float64
		for _, id := range node.JobIds {
			job := byId[id]
			if job == nil {
				continue
			}
			cpusHere := job.Hosts.CpusOn(node.Number)
			cpusTotal := job.Cpus()
			if cpusHere == 0 || cpusTotal == 0 {
				continue
			}
			if !job.CpuTime.Present() || !job.WallTime.Present() {
				continue
			}
			used += job.CpuTime.Value() * float64(cpusHere) / float64(cpusTotal)
			claimed += job.WallTime.Value() * float64(cpusHere)
		}
		if claimed > 0 {
			node.Score = RatioOf(used / claimed)
		}
	}
}

// Group the queued and running jobs by owner and total their resources.  The average score is the
// arithmetic mean over the present per-job scores only; jobs without a score are left out of both
// the numerator and the denominator.  The result is sorted by ascending CPU count, owners with
// equal counts alphabetically.
func SummarizeOwners(jobs []*Job) []*Owner {
	byOwner := make(map[string]*Owner)
	var order []string
	scoreSum := make(map[string]float64)
	scoreCount := make(map[string]int)
	for _, job := range jobs {
		if job.State != JobRunning && job.State != JobQueued {
			continue
		}
		owner := byOwner[job.Owner]
		if owner == nil {
			owner = &Owner{Owner: job.Owner}
			byOwner[job.Owner] = owner
			order = append(order, job.Owner)
		}
		cpus := job.Cpus()
		owner.Jobs++
		owner.Cpus += cpus
		owner.MemUsed = owner.MemUsed.Add(job.MemUsed)
		owner.WallTime = owner.WallTime.Add(job.WallTime)
		owner.CpuTime = owner.CpuTime.Add(job.CpuTime)
		if job.WallTime.Present() {
			owner.ClaimTime = owner.ClaimTime.Add(SecondsOf(job.WallTime.Value() * float64(cpus)))
		}
		if job.Score.Present() {
			scoreSum[job.Owner] += job.Score.Value()
			scoreCount[job.Owner]++
		}
	}
	owners := make([]*Owner, 0, len(order))
	for _, name := range order {
		owner := byOwner[name]
		if n := scoreCount[name]; n > 0 {
			owner.Score = RatioOf(scoreSum[name] / float64(n))
		}
		owners = append(owners, owner)
	}
	slices.SortStableFunc(owners, func(a, b *Owner) int {
		if a.Cpus != b.Cpus {
			return a.Cpus - b.Cpus
		}
		return strings.Compare(a.Owner, b.Owner)
	})
	return owners
}
