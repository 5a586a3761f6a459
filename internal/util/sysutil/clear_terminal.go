package sysutil

import (
	"io"
	"os/exec"
	"runtime"
)

// clearCommand returns the command that clears the terminal screen on
// goos, or nil when the operating system is not supported.
func clearCommand(goos string) []string {
	switch goos {
	case "windows":
		return []string{"cmd", "/c", "cls"}
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return []string{"clear"}
	}
	return nil
}

// ClearTerminal clears the terminal screen in supported operating systems,
// writing the escape sequences to w.
func ClearTerminal(w io.Writer) error {
	args := clearCommand(runtime.GOOS)
	if args == nil {
		return nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = w
	return cmd.Run()
}
