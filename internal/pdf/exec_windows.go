//go:build windows

package pdf

import (
	"os/exec"
	"syscall"
)

// hideConsole keeps pdftoppm from flashing a console window when the exporter
// is launched from a GUI shell.
func hideConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: 0x08000000, // CREATE_NO_WINDOW
	}
}
