//go:build !unix

package backend

import "os/exec"

// setProcessGroup is a no-op: exec.CommandContext kills the direct child.
func setProcessGroup(cmd *exec.Cmd) {}
