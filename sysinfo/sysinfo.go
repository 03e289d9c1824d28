// Package sysinfo gathers the host facts shown in the info panel.
//
// Every probe is best effort: a fact that cannot be read is left at its zero
// value and the matching line is omitted from the output.
package sysinfo

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"distrofetch/logging"
)

// DefaultTimeout bounds a full Collect run.
const DefaultTimeout = 2 * time.Second

// Facts holds the values gathered from the host.
type Facts struct {
	// Username is the current user's login name
	Username string
	// Hostname is the machine's network name
	Hostname string
	// OS is the human readable operating system name, e.g. "Fedora Linux 40 (Workstation Edition)"
	OS string
	// Model is the hardware vendor and product
	Model string
	// Kernel is the kernel release
	Kernel string
	// Uptime since boot
	Uptime time.Duration
	// Shell is the name of the login shell
	Shell string
	// Terminal is the terminal emulator, when it can be told from the environment
	Terminal string
	// CPU is the processor brand string
	CPU string
	// Cores is the number of logical CPUs
	Cores int
	// Load is the 15 minute load average, nil where the platform has none
	Load *float64
	// MemUsed and MemTotal are in bytes
	MemUsed  uint64
	MemTotal uint64
	// Disks lists mounted physical partitions, one per device
	Disks []Disk
}

// Disk is the usage of one mounted partition, in bytes.
type Disk struct {
	Device string
	Mount  string
	Used   uint64
	Total  uint64
}

// Collect probes the host. It never fails; ctx bounds the time spent in the
// slower probes.
func Collect(ctx context.Context) *Facts {
	logger := logging.Get("sysinfo")
	f := &Facts{
		Username: username(),
		Kernel:   kernelRelease(),
		OS:       osName(),
		Model:    hostModel(),
		Shell:    shellName(os.Getenv),
		Terminal: terminalName(os.Getenv),
	}

	if hi, err := host.InfoWithContext(ctx); err != nil {
		logger.Debug().Err(err).Msg("host info unavailable")
	} else {
		f.Hostname = hi.Hostname
		f.Uptime = time.Duration(hi.Uptime) * time.Second
		if f.Kernel == "" {
			f.Kernel = hi.KernelVersion
		}
		if f.OS == "" {
			f.OS = strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
		}
	}
	if f.Hostname == "" {
		f.Hostname, _ = os.Hostname()
	}

	if infos, err := cpu.InfoWithContext(ctx); err != nil || len(infos) == 0 {
		logger.Debug().Err(err).Msg("cpu info unavailable")
	} else {
		f.CPU = strings.Join(strings.Fields(infos[0].ModelName), " ")
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		f.Cores = n
	} else {
		f.Cores = runtime.NumCPU()
	}

	// Windows has no load average; gopsutil only emulates one from a
	// background sampler that has not run yet at this point.
	if runtime.GOOS != "windows" {
		if avg, err := load.AvgWithContext(ctx); err != nil {
			logger.Debug().Err(err).Msg("load average unavailable")
		} else {
			l := avg.Load15
			f.Load = &l
		}
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		logger.Debug().Err(err).Msg("memory info unavailable")
	} else {
		f.MemUsed, f.MemTotal = vm.Used, vm.Total
	}

	f.Disks = collectDisks(ctx)
	return f
}

func collectDisks(ctx context.Context) []Disk {
	logger := logging.Get("sysinfo")
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		logger.Debug().Err(err).Msg("partitions unavailable")
		return nil
	}

	seen := make(map[string]bool)
	var disks []Disk
	for _, p := range parts {
		if seen[p.Device] {
			continue
		}
		u, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		seen[p.Device] = true
		disks = append(disks, Disk{Device: p.Device, Mount: p.Mountpoint, Used: u.Used, Total: u.Total})
	}
	return disks
}

func username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		// Windows reports DOMAIN\user
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// shellName returns the base name of the login shell, falling back to the
// Windows command interpreter.
func shellName(getenv func(string) string) string {
	for _, key := range []string{"SHELL", "COMSPEC", "ComSpec"} {
		if v := getenv(key); v != "" {
			base := filepath.Base(strings.ReplaceAll(v, `\`, "/"))
			return strings.TrimSuffix(base, ".exe")
		}
	}
	return ""
}

// terminalName detects the terminal emulator from its environment markers.
func terminalName(getenv func(string) string) string {
	// Check for Windows Terminal
	if getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}

	// Check for other terminals via TERM_PROGRAM
	if term := getenv("TERM_PROGRAM"); term != "" {
		return term
	}

	// Fallback to TERM environment variable
	return getenv("TERM")
}
