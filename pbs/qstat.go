// Parser for the job-queue report, the output of `qstat -f`: one block per job, introduced by a
// "Job Id:" header line and followed by indented "key = value" lines, hard-wrapped with "\n\t".

package pbs

import (
	"strings"
)

// Parse the raw report text into the ordered job list.  A malformed block is skipped; a missing or
// empty report yields an empty list.  Fields missing from a block stay absent - the parser never
// substitutes zeroes for values the scheduler did not report.
func ParseJobs(text string) []*Job {
	// Undo the report's hard word-wrap before splitting into blocks.
	unfolded := strings.ReplaceAll(text, "\n\t", "")
	blocks := strings.Split(unfolded, "Job Id:")
	jobs := make([]*Job, 0, len(blocks))
	for _, block := range blocks[1:] {
		if job := parseJobBlock(block); job != nil {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

func parseJobBlock(block string) *Job {
	header, rest, _ := strings.Cut(block, "\n")
	// The job id proper is the leading component of "690.server.domain".
	id, _, _ := strings.Cut(strings.TrimSpace(header), ".")
	if id == "" {
		return nil
	}
	fields := parseKeyValueLines(rest)

	job := &Job{Id: id}
	job.Name = fields["Job_Name"]
	job.Owner, _, _ = strings.Cut(fields["Job_Owner"], "@")
	job.State = ParseJobState(fields["job_state"])
	job.SubmitArgs = fields["submit_args"]
	// Output_Path is "host:/path"; the host part is noise here.
	if out, found := fields["Output_Path"]; found {
		if _, p, colon := strings.Cut(out, ":"); colon {
			job.OutputPath = p
		} else {
			job.OutputPath = out
		}
	}
	if v, found := fields["Resource_List.nodes"]; found {
		if rn, err := ParseResNode(v); err == nil {
			job.ResNode = rn
		}
	}
	if hosts, err := ParseHosts(fields["exec_host"]); err == nil {
		job.Hosts = hosts
	}
	job.MemReq = parseBytesField(fields, "Resource_List.pmem")
	job.MemUsed = parseBytesField(fields, "resources_used.mem")
	job.CpuTime = parseSecondsField(fields, "resources_used.cput")
	job.WallTime = parseSecondsField(fields, "resources_used.walltime")
	return job
}

// A bad value in one field must not take down the record; it stays absent like a missing one.

func parseBytesField(fields kvFields, key string) Bytes {
	v, err := ParseBytes(fields[key])
	if err != nil {
		return Bytes{}
	}
	return v
}

func parseSecondsField(fields kvFields, key string) Seconds {
	v, err := ParseSeconds(fields[key])
	if err != nil {
		return Seconds{}
	}
	return v
}

type kvFields map[string]string

// Split indented "key = value" lines into a map.  Lines without the separator are ignored.
func parseKeyValueLines(text string) kvFields {
	fields := make(kvFields)
	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, " = ")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}
