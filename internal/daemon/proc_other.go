//go:build !windows

package daemon

import "os/exec"

// setProcAttributes is a no-op off Windows. The channel still runs against
// any executable that speaks the daemon protocol, which is how the test
// harness drives it.
func setProcAttributes(_ *exec.Cmd) {}
