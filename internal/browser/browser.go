// Package browser opens rendered pages in the desktop browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Command returns the program and arguments that open target on goos.
func Command(goos, target string) (string, []string) {
	var cmd string
	var args []string

	switch goos {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", ""}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}
	return cmd, append(args, target)
}

// Open starts the platform opener for target and does not wait for it.
func Open(target string) error {
	name, args := Command(runtime.GOOS, target)
	return exec.Command(name, args...).Start()
}
