package model

// ProcessSample is one point-in-time observation of a single process. It is
// rebuilt from scratch every cycle and discarded after rate computation.
type ProcessSample struct {
	Pid  int32
	Name string

	// RSS is the resident (working set) memory in bytes. Zero when the
	// per-process memory query failed.
	RSS uint64

	// CPUTime is the cumulative user+kernel CPU time in seconds consumed by
	// the process since it started. Valid only when HasTimes is set; the
	// per-process time query can fail independently of enumeration.
	CPUTime  float64
	HasTimes bool

	// Created is the process creation time in milliseconds since the epoch.
	// Used to tell apart two unrelated processes that reuse the same PID.
	Created int64
}

// SystemSample holds the system-wide cumulative counters for one cycle.
type SystemSample struct {
	// Cumulative CPU seconds since boot, split by where they were spent.
	Idle   float64
	Kernel float64
	User   float64

	// Physical memory in bytes.
	TotalMem uint64
	AvailMem uint64
}

// TotalTime is the system's total cumulative CPU time. It is the reference
// clock against which per-process deltas are measured.
func (s SystemSample) TotalTime() float64 {
	return s.Idle + s.Kernel + s.User
}

// Busy is the cumulative non-idle CPU time.
func (s SystemSample) Busy() float64 {
	return s.Kernel + s.User
}

// UsedMem is the physical memory currently in use, in bytes.
func (s SystemSample) UsedMem() uint64 {
	if s.AvailMem > s.TotalMem {
		return 0
	}
	return s.TotalMem - s.AvailMem
}

// RankedProcess is a ProcessSample with its CPU utilization over the last
// sampling interval. Produced by the rate calculator, consumed by the
// filter/sort step and the renderer, then discarded.
type RankedProcess struct {
	ProcessSample
	CPU float64
}
