package conf

import (
	"os"
	"runtime"
)

func ensurePath(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// The session file holds credentials, keep directory perms restrictive
		if err = os.MkdirAll(path, 0700); err != nil {
			return err
		}
	}
	return nil
}

// GetDavshHome returns the directory holding session state, creating it
// if needed. DAVSH_HOME overrides the default under the user home.
func GetDavshHome() string {
	davshHome := os.Getenv("DAVSH_HOME")
	if davshHome == "" {
		userHome, err := os.UserHomeDir()
		if err == nil {
			if runtime.GOOS == "windows" {
				davshHome = userHome + string(os.PathSeparator) + "davsh" + string(os.PathSeparator)
				if err = ensurePath(davshHome); err == nil {
					return davshHome
				}
			} else {
				davshHome = userHome + string(os.PathSeparator) + ".davsh" + string(os.PathSeparator)
				if err = ensurePath(davshHome); err == nil {
					return davshHome
				}
			}
		}
		davshHome, err = os.Getwd()
		if err != nil {
			davshHome = "." + string(os.PathSeparator)
		}

	}
	return davshHome
}
