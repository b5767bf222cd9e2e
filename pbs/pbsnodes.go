// Parser for the node-inventory report, the output of `pbsnodes`: one block per node separated by
// blank lines.  The first line is the node name; "key = value" lines follow, and the "status" line
// packs further comma-separated "key=value" attributes (memory totals, load average).

package pbs

import (
	"strconv"
	"strings"
)

// Parse the raw report text into the ordered node list.  Malformed blocks are skipped; a missing
// report yields an empty list.
func ParseNodes(text string) []*Node {
	blocks := strings.Split(text, "\n\n")
	nodes := make([]*Node, 0, len(blocks))
	for _, block := range blocks {
		if node := parseNodeBlock(block); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func parseNodeBlock(block string) *Node {
	block = strings.TrimLeft(block, "\n")
	header, rest, _ := strings.Cut(block, "\n")
	name := strings.TrimSpace(header)
	if name == "" || strings.ContainsAny(name, " =") {
		return nil
	}
	number, err := nodeNumber(name)
	if err != nil {
		return nil
	}
	fields := parseKeyValueLines(rest)

	node := &Node{Number: number, Name: name}
	node.State = ParseNodeState(fields["state"])
	if n, err := strconv.Atoi(fields["np"]); err == nil {
		node.Cpus = n
	}
	// The properties list carries the CPU architecture tag.
	node.CpuType, _, _ = strings.Cut(fields["properties"], ",")
	node.JobIds, node.SlotsUsed = parseNodeJobs(fields["jobs"])

	status := parseStatusAttrs(fields["status"])
	node.MemTotal = parseBytesField(status, "totmem")
	node.MemPhys = parseBytesField(status, "physmem")
	node.MemAvail = parseBytesField(status, "availmem")
	if v, err := ParseRatio(status["loadave"]); err == nil {
		node.Load = v
	}

	node.MemUsed = node.MemTotal.Sub(node.MemAvail)
	if node.MemTotal.Present() && node.MemTotal.Value() > 0 && node.MemUsed.Present() {
		node.MemUtil = RatioOf(node.MemUsed.Value() / node.MemTotal.Value())
	}
	node.CpusFree = node.Cpus - node.SlotsUsed
	if node.State.Unavailable() {
		// The figures of an unreachable node are stale; report nothing rather than nonsense.
		node.CpusFree = 0
		node.MemUsed = Bytes{}
		node.MemUtil = Ratio{}
	}
	return node
}

// The jobs line lists one entry per occupied CPU slot: "0/101.server,1/102.server,...".  We want
// the distinct job ids in slot order, and the slot count.
func parseNodeJobs(text string) (ids []string, slots int) {
	if strings.TrimSpace(text) == "" {
		return nil, 0
	}
	seen := make(map[string]bool)
	for _, entry := range strings.Split(text, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		slots++
		// Strip the slot prefix and the server suffix: "0/101.server" -> "101".
		if _, after, found := strings.Cut(entry, "/"); found {
			entry = after
		}
		id, _, _ := strings.Cut(entry, ".")
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, slots
}

// "rectime=1402990773,varattr=,jobs=...,totmem=66059692kb,..." -> map.
func parseStatusAttrs(text string) kvFields {
	fields := make(kvFields)
	for _, attr := range strings.Split(text, ",") {
		key, value, found := strings.Cut(attr, "=")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}
