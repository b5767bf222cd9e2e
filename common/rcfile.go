package common

import (
	"errors"
	"os"
	"path"

	ini "github.com/lars-t-hansen/ini"
)

// Defaults are read once from ~/.myqstat, an ini file.  Anything set there can be overridden on
// the command line; anything absent falls back to the built-in defaults.
//
// Recognized settings:
//
//   [commands]
//   qstat = /usr/bin/qstat
//   pbsnodes = /usr/bin/pbsnodes
//   ganglia = /usr/bin/ganglia
//   use-ganglia = on | off
//
//   [output]
//   color = auto | always | never
//   placeholder = --
//   ellipsis = ...
//   separator = "  "
//
//   [columns]
//   jobs = id,owner,...
//   nodes = node,state,...
//   users = owner,cpus,...

// MT: Constant after initialization
var (
	p     = ini.NewParser()
	store *ini.Store

	commands          = p.AddSection("commands")
	CommandQstat      = commands.AddString("qstat")
	CommandPbsnodes   = commands.AddString("pbsnodes")
	CommandGanglia    = commands.AddString("ganglia")
	CommandUseGanglia = commands.AddString("use-ganglia")

	output            = p.AddSection("output")
	OutputColor       = output.AddString("color")
	OutputPlaceholder = output.AddString("placeholder")
	OutputEllipsis    = output.AddString("ellipsis")
	OutputSeparator   = output.AddString("separator")

	columns      = p.AddSection("columns")
	ColumnsJobs  = columns.AddString("jobs")
	ColumnsNodes = columns.AddString("nodes")
	ColumnsUsers = columns.AddString("users")
)

func init() {
	home := os.Getenv("HOME")
	if home == "" {
		return
	}
	fn := path.Join(path.Clean(home), ".myqstat")
	input, err := os.Open(fn)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			Log.Errorf("Error in trying to open %s: %s", fn, err.Error())
		}
		return
	}
	defer input.Close()
	store, err = p.Parse(input)
	if err != nil {
		Log.Errorf("Error in trying to parse %s: %s", fn, err.Error())
		return
	}
}

func HasDefault(f *ini.Field) bool {
	return store != nil && f.Present(store)
}

// Install the rc-file value in *sp if *sp still holds the empty string and the rc file has a
// value.  Environment variables in the value are expanded.
func ApplyDefault(sp *string, f *ini.Field) bool {
	if *sp != "" || !HasDefault(f) {
		return false
	}
	*sp = os.ExpandEnv(f.StringVal(store))
	return true
}

// As ApplyDefault, but for on/off settings; unrecognized values are ignored.
func ApplyDefaultBool(bp *bool, f *ini.Field) bool {
	if !HasDefault(f) {
		return false
	}
	switch f.StringVal(store) {
	case "on", "yes", "true":
		*bp = true
	case "off", "no", "false":
		*bp = false
	default:
		return false
	}
	return true
}
