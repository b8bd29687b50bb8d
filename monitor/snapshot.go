package monitor

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"wtop/model"
)

// TakeSnapshot enumerates the process table once and reads the system-wide
// CPU and memory counters. Per-process queries may fail on their own (the
// process exited between enumeration and query, or access was denied); such
// processes are still included with zero memory and unknown CPU time. Only a
// failed enumeration returns an error.
func TakeSnapshot() ([]model.ProcessSample, model.SystemSample, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, model.SystemSample{}, fmt.Errorf("enumerate processes: %w", err)
	}

	samples := make([]model.ProcessSample, 0, len(procs))
	for _, p := range procs {
		if p == nil || p.Pid <= 0 {
			continue
		}

		s := model.ProcessSample{Pid: p.Pid}

		name, err := p.Name()
		if err != nil || name == "" {
			name = "<unknown>"
		}
		s.Name = name

		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			s.RSS = mi.RSS
		}
		if t, err := p.Times(); err == nil && t != nil {
			s.CPUTime = t.User + t.System
			s.HasTimes = true
		}
		if created, err := p.CreateTime(); err == nil {
			s.Created = created
		}

		samples = append(samples, s)
	}

	return samples, takeSystemSample(), nil
}

// takeSystemSample reads the global counters. Failures leave the affected
// fields zero; the rate calculator treats a non-advancing system clock as a
// zero-percent interval rather than an error.
func takeSystemSample() model.SystemSample {
	var sys model.SystemSample

	if times, err := cpu.Times(false); err == nil && len(times) > 0 {
		t := times[0]
		sys.User = t.User + t.Nice
		sys.Kernel = t.System + t.Irq + t.Softirq + t.Steal
		sys.Idle = t.Idle + t.Iowait
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		sys.TotalMem = vm.Total
		sys.AvailMem = vm.Available
	}
	return sys
}
