package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of a grid layout run
// (template resolution, placement, sizing).
var ProgressLogger = log.New(os.Stdout, "gridlayout.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported CSS
// values, invalid declarations or out of range grid lines.
var WarningLogger = log.New(os.Stdout, "gridlayout.warning: ", log.Lmsgprefix)
