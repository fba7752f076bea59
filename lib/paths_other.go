//go:build !windows

package lib

import "os"

func localAppData() (string, error) {
	return os.UserCacheDir()
}
