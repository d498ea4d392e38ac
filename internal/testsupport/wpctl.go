package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StatusReport is a trimmed `wpctl status -k` capture used across tests.
const StatusReport = `PipeWire 'pipewire-0' [1.2.7, user@host, cookie:1234]
 └─ Clients:
        33. WirePlumber                         [1.2.7, user@host, pid:1200]

Audio
 ├─ Devices:
 │      48. Built-in Audio                      [alsa]
 │      52. WH-1000XM4                          [bluez5]
 │  
 ├─ Sinks:
 │      50. Built-in Audio Analog Stereo        [vol: 0.40]
 │  *   61. WH-1000XM4                          [vol: 0.85 MUTED]
 │      64. HDMI 2.0 Output                     [vol: 1.00]
 │  
 ├─ Sources:
 │  *   51. Built-in Audio Analog Stereo        [vol: 0.60]
 │      62. WH-1000XM4 Headset Mic              [vol: 0.70]
 │  
 ├─ Filters:
 │      70. echo-cancel-sink                    [Audio/Sink]
 │  
 └─ Streams:
        80. Firefox
             81. output_FL       > WH-1000XM4:playback_FL	[active]

Video
 ├─ Devices:
 │      44. Integrated Camera                   [v4l2]
 │  
`

// StubWpctl is a fake wpctl executable that prints a canned status report
// and records every invocation.
type StubWpctl struct {
	Binary  string
	callLog string
}

// NewStubWpctl writes a stub wpctl into a temp dir. The stub prints report
// for `status` and exits with exitCode for every command.
func NewStubWpctl(t testing.TB, report string, exitCode int) StubWpctl {
	t.Helper()

	dir := t.TempDir()
	reportPath := filepath.Join(dir, "status.txt")
	if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
		t.Fatalf("write status report: %v", err)
	}
	callLog := filepath.Join(dir, "calls.log")
	script := fmt.Sprintf(`#!/bin/sh
echo "$*" >> %q
if [ "$1" = "status" ]; then
  cat %q
fi
exit %d
`, callLog, reportPath, exitCode)
	binary := filepath.Join(dir, "wpctl")
	if err := os.WriteFile(binary, []byte(script), 0o755); err != nil {
		t.Fatalf("write wpctl stub: %v", err)
	}
	return StubWpctl{Binary: binary, callLog: callLog}
}

// Calls returns the argument lists the stub received, one per invocation.
func (s StubWpctl) Calls(t testing.TB) []string {
	t.Helper()

	data, err := os.ReadFile(s.callLog)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read call log: %v", err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
