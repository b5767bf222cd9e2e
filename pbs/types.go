// Typed records for the three reports.  Records are per-invocation snapshots: every field is set
// once during parsing and never mutated afterward, except that the derived Score fields are
// attached after parsing (see score.go).

package pbs

type Job struct {
	Id         string
	Owner      string
	Name       string
	State      JobState
	Hosts      Hosts
	ResNode    ResNode
	MemUsed    Bytes
	MemReq     Bytes // the pmem submission option
	CpuTime    Seconds
	WallTime   Seconds
	SubmitArgs string
	OutputPath string

	// cputime / (walltime * cpus); attached by AttachJobScores
	Score Ratio
}

// The claimed CPU count: the exec-host slots when the job has been placed, else the requested
// allocation.  Queued jobs have no exec-host yet.
func (j *Job) Cpus() int {
	if !j.Hosts.Empty() {
		return j.Hosts.Count()
	}
	return j.ResNode.Cpus()
}

type Node struct {
	Number    int
	Name      string
	State     NodeState
	Cpus      int
	CpusFree  int
	CpuType   string
	JobIds    []string // distinct resident job ids, in slot order
	SlotsUsed int
	MemTotal  Bytes
	MemPhys   Bytes
	MemAvail  Bytes
	MemUsed   Bytes // MemTotal - MemAvail
	MemUtil   Ratio // MemUsed / MemTotal
	Load      Ratio

	// Telemetry, present only when the telemetry report was supplied and had this node.
	DiskTotal Bytes
	DiskFree  Bytes
	DiskUsed  Bytes
	DiskUtil  Ratio
	NetIn     Bytes // inbound byte rate
	NetOut    Bytes
	NetTotal  Bytes
	CpuIdle   Ratio

	// Aggregate efficiency of the resident jobs; attached by AttachNodeScores
	Score Ratio
}

// Per-owner totals over the owner's queued and running jobs; derived, recomputed each invocation.
type Owner struct {
	Owner     string
	Jobs      int
	Cpus      int
	MemUsed   Bytes
	WallTime  Seconds
	CpuTime   Seconds
	ClaimTime Seconds // walltime * cpus, per job
	Score     Ratio   // mean of the present job scores
}
