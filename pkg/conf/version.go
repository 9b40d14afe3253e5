package conf

import (
	"fmt"
	"runtime"
)

// Populated at build time through ldflags
var (
	version   = "dev"
	gitCommit = "unknown"
)

// PrintVersion shows the binary build info
func PrintVersion() {
	fmt.Printf("davsh %s (%s) %s/%s %s\n",
		version,
		gitCommit,
		runtime.GOOS,
		runtime.GOARCH,
		runtime.Version(),
	)
}
