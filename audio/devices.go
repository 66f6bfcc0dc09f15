// ABOUTME: Audio output device enumeration and selection
// ABOUTME: Parses aplay -l output into an ordered device list with a synthetic default

package audio

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// DefaultLabel is the synthetic first entry meaning "let the player pick"
const DefaultLabel = "default"

// Device represents a single audio output sink
type Device struct {
	Label     string
	IsDefault bool
}

// Runner executes a command and returns its standard output.
// Injectable so tests can substitute canned aplay output.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs the command for real
func ExecRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Matches hardware rows of `aplay -l`, e.g.
// "card 0: PCH [HDA Intel PCH], device 0: ALC295 Analog [ALC295 Analog]"
var deviceLineRegex = regexp.MustCompile(`^card (\d+):.* device (\d+):`)

// Detect probes the host audio subsystem and returns the ordered device list.
// The first entry is always the synthetic default. If probing yields no
// hardware devices a single hw:0,0 fallback is appended so the list is never
// length 1.
func Detect(run Runner, aplayPath string) []Device {
	devices := []Device{{Label: DefaultLabel, IsDefault: true}}

	out, err := run(aplayPath, "-l")
	if err == nil {
		devices = append(devices, parseDeviceList(string(out))...)
	}

	if len(devices) == 1 {
		devices = append(devices, Device{Label: "hw:0,0"})
	}

	return devices
}

// parseDeviceList extracts hw:<card>,<device> entries from aplay -l output
func parseDeviceList(output string) []Device {
	var devices []Device

	for _, line := range strings.Split(output, "\n") {
		m := deviceLineRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		devices = append(devices, Device{Label: fmt.Sprintf("hw:%s,%s", m[1], m[2])})
	}

	return devices
}

// Registry tracks the detected devices and the currently selected index
type Registry struct {
	devices []Device
	index   int
}

// NewRegistry creates a registry over the detected devices.
// A persisted index beyond the list length wraps modulo the list length.
// An empty device list collapses to the synthetic default entry.
func NewRegistry(devices []Device, index int) *Registry {
	if len(devices) == 0 {
		devices = []Device{{Label: DefaultLabel, IsDefault: true}}
	}

	if index < 0 {
		index = 0
	}

	return &Registry{
		devices: devices,
		index:   index % len(devices),
	}
}

// Current returns the selected device label; index 0 is always "default"
func (r *Registry) Current() string {
	return r.devices[r.index].Label
}

// Cycle advances to the next device, wrapping, and returns the new index
func (r *Registry) Cycle() int {
	r.index = (r.index + 1) % len(r.devices)

	return r.index
}

// Index returns the currently selected device index
func (r *Registry) Index() int {
	return r.index
}

// Len returns the number of detected devices
func (r *Registry) Len() int {
	return len(r.devices)
}
