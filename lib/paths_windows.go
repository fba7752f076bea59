//go:build windows

package lib

import (
	"syscall"

	"github.com/lxn/win"
)

func localAppData() (string, error) {
	buf := make([]uint16, win.MAX_PATH)
	win.SHGetSpecialFolderPath(win.HWND(0), &buf[0], win.CSIDL_LOCAL_APPDATA, false)

	return syscall.UTF16ToString(buf), nil
}
