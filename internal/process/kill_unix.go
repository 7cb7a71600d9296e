//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// SetGroup places cmd in its own process group so a timed-out LaTeX engine
// can be killed together with any children it spawned.
func SetGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// KillGroup kills a process and all its children by sending SIGKILL to the
// process group (negative PID).
func KillGroup(pid int) {
	// Best-effort cleanup; the exec layer reaps the direct child regardless
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
