package monitor

import "wtop/model"

// baseline holds the previous cycle's cumulative counters for one PID.
type baseline struct {
	procTime float64
	sysTime  float64
	created  int64
}

// Calculator turns successive cumulative-time samples into per-interval CPU
// percentages. It is the only state carried across cycles: a baseline per
// observed PID plus the previous system sample. Not safe for concurrent use;
// the engine calls it from a single goroutine.
type Calculator struct {
	baselines map[int32]baseline
	prevSys   model.SystemSample
	havePrev  bool
}

func NewCalculator() *Calculator {
	return &Calculator{baselines: make(map[int32]baseline)}
}

// ComputeRates derives a CPU percentage for every sample and for the system
// as a whole, then replaces the baselines with the current counters.
//
// A process with no baseline (first observation, or a PID reused by a new
// process since last cycle) rates 0%. A non-advancing or backwards system
// clock also rates 0%, never a division fault. sysOK is false on the very
// first call, when no previous system sample exists.
func (c *Calculator) ComputeRates(samples []model.ProcessSample, sys model.SystemSample) (ranked []model.RankedProcess, sysCPU float64, sysOK bool) {
	sysNow := sys.TotalTime()

	ranked = make([]model.RankedProcess, 0, len(samples))
	seen := make(map[int32]struct{}, len(samples))

	for _, s := range samples {
		seen[s.Pid] = struct{}{}

		pct := 0.0
		if s.HasTimes {
			if b, ok := c.baselines[s.Pid]; ok && b.created == s.Created {
				procDelta := s.CPUTime - b.procTime
				sysDelta := sysNow - b.sysTime
				if sysDelta > 0 && procDelta > 0 {
					pct = 100 * procDelta / sysDelta
				}
			}
			c.baselines[s.Pid] = baseline{
				procTime: s.CPUTime,
				sysTime:  sysNow,
				created:  s.Created,
			}
		}

		ranked = append(ranked, model.RankedProcess{ProcessSample: s, CPU: pct})
	}

	// Sweep baselines for PIDs gone from this snapshot, bounding the map to
	// the live process count.
	for pid := range c.baselines {
		if _, ok := seen[pid]; !ok {
			delete(c.baselines, pid)
		}
	}

	if c.havePrev {
		busyDelta := sys.Busy() - c.prevSys.Busy()
		idleDelta := sys.Idle - c.prevSys.Idle
		if total := busyDelta + idleDelta; total > 0 {
			sysCPU = 100 * busyDelta / total
		}
		sysOK = true
	}
	c.prevSys = sys
	c.havePrev = true

	return ranked, sysCPU, sysOK
}

// BaselineCount reports how many PIDs currently have a baseline.
func (c *Calculator) BaselineCount() int {
	return len(c.baselines)
}
