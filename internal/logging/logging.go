// Package logging configures commonlog for classdump and hands out loggers
// named under the "classdump" root.
package logging

import (
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const Root = "classdump"

// Configure sets the maximum level for every logger. Verbosity 0 keeps
// notices and above, each increment adds a level (1 info, 2 debug) and
// negative values silence progressively more. An empty path logs to stderr.
func Configure(verbosity int, path string) {
	if path == "" {
		commonlog.Configure(verbosity, nil)
		return
	}
	commonlog.Configure(verbosity, &path)
}

// Get returns the logger for a dotted name below Root, e.g.
// Get("cli") is "classdump.cli".
func Get(name ...string) commonlog.Logger {
	return commonlog.GetLogger(Name(name...))
}

func Name(name ...string) string {
	return strings.Join(append([]string{Root}, name...), ".")
}
