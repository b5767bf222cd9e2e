// Acquiring the raw report texts.  Every source degrades to the empty report on failure: a slow or
// broken telemetry command must not keep the job table from printing.

package pbs

import (
	"os"
	"strings"

	"github.com/tdegeus/mate-cluster/common"
	"github.com/tdegeus/mate-cluster/process"
)

// Return the raw report text from the override file when one was given, else from running the
// command line.  Failures are logged and yield "", which the parsers turn into an empty record
// list.
func FetchReport(file string, commandLine string) string {
	if file != "" {
		text, err := os.ReadFile(file)
		if err != nil {
			common.Log.Warningf("Cannot read report file %s: %s", file, err.Error())
			return ""
		}
		return string(text)
	}
	words := strings.Fields(commandLine)
	if len(words) == 0 {
		return ""
	}
	text, err := process.Output(words[0], words[1:]...)
	if err != nil {
		common.Log.Warningf("Report command failed: %s", err.Error())
		return ""
	}
	return text
}
