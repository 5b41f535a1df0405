//go:build !windows

package pdf

import "os/exec"

// hideConsole is a no-op outside Windows.
func hideConsole(*exec.Cmd) {}
