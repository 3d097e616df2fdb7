package version

import (
	"fmt"
)

const (
	Version = "0.3"
)

// VersionString is printed by the command line tools.
var VersionString = fmt.Sprintf("Go-GridLayout %s", Version)
