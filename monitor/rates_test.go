package monitor

import (
	"math"
	"testing"

	"wtop/model"
)

func procSample(pid int32, cpuTime float64, created int64) model.ProcessSample {
	return model.ProcessSample{
		Pid:      pid,
		Name:     "proc",
		CPUTime:  cpuTime,
		HasTimes: true,
		Created:  created,
	}
}

// sysSample builds a system sample whose TotalTime is idle+kernel+user.
func sysSample(idle, kernel, user float64) model.SystemSample {
	return model.SystemSample{Idle: idle, Kernel: kernel, User: user}
}

func TestFirstObservationRatesZero(t *testing.T) {
	c := NewCalculator()

	ranked, _, sysOK := c.ComputeRates(
		[]model.ProcessSample{procSample(1, 1000, 7)},
		sysSample(1000, 2000, 2000),
	)

	if sysOK {
		t.Fatalf("system CPU%% should be unavailable on the first call")
	}
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked process, got %d", len(ranked))
	}
	if ranked[0].CPU != 0 {
		t.Fatalf("first observation must rate 0%%, got %.2f", ranked[0].CPU)
	}
}

func TestPerProcessRate(t *testing.T) {
	c := NewCalculator()

	// Baseline cycle: c=1000, s=5000.
	c.ComputeRates(
		[]model.ProcessSample{procSample(1, 1000, 7)},
		sysSample(1000, 2000, 2000),
	)

	// Next cycle: c=1200, s=5500 -> 100*200/500 = 40%.
	ranked, _, _ := c.ComputeRates(
		[]model.ProcessSample{procSample(1, 1200, 7)},
		sysSample(1200, 2100, 2200),
	)

	if got := ranked[0].CPU; math.Abs(got-40) > 1e-9 {
		t.Fatalf("expected 40%%, got %.4f", got)
	}
}

func TestProcessConsumingAllElapsedTime(t *testing.T) {
	c := NewCalculator()

	c.ComputeRates(
		[]model.ProcessSample{procSample(1, 0, 7)},
		sysSample(1000, 2000, 2000),
	)
	ranked, _, _ := c.ComputeRates(
		[]model.ProcessSample{procSample(1, 500, 7)},
		sysSample(1000, 2250, 2250),
	)

	if got := ranked[0].CPU; math.Abs(got-100) > 1e-9 {
		t.Fatalf("expected 100%%, got %.4f", got)
	}
}

func TestSystemCPUPercent(t *testing.T) {
	c := NewCalculator()

	_, _, sysOK := c.ComputeRates(nil, sysSample(100, 50, 50))
	if sysOK {
		t.Fatalf("no previous sample; system CPU%% must be unavailable")
	}

	// idle 100->120, kernel 50->70, user 50->60: busy delta 30, idle delta 20,
	// 100*30/50 = 60%.
	_, sysCPU, sysOK := c.ComputeRates(nil, sysSample(120, 70, 60))
	if !sysOK {
		t.Fatalf("system CPU%% should be available on the second call")
	}
	if math.Abs(sysCPU-60) > 1e-9 {
		t.Fatalf("expected 60%%, got %.4f", sysCPU)
	}
}

func TestZeroElapsedTimeRatesZero(t *testing.T) {
	c := NewCalculator()
	sys := sysSample(1000, 2000, 2000)

	c.ComputeRates([]model.ProcessSample{procSample(1, 1000, 7)}, sys)
	ranked, sysCPU, sysOK := c.ComputeRates([]model.ProcessSample{procSample(1, 1000, 7)}, sys)

	if ranked[0].CPU != 0 {
		t.Fatalf("zero elapsed system time must rate 0%%, got %.4f", ranked[0].CPU)
	}
	if !sysOK || sysCPU != 0 {
		t.Fatalf("zero elapsed system time must yield 0%% system CPU, got %.4f (ok=%v)", sysCPU, sysOK)
	}
}

func TestBaselineReplacedEvenWithoutRate(t *testing.T) {
	c := NewCalculator()
	sys := sysSample(1000, 2000, 2000)

	c.ComputeRates([]model.ProcessSample{procSample(1, 1000, 7)}, sys)
	// Same system clock: no rate, but the baseline must still move to c=1100.
	c.ComputeRates([]model.ProcessSample{procSample(1, 1100, 7)}, sys)

	ranked, _, _ := c.ComputeRates(
		[]model.ProcessSample{procSample(1, 1200, 7)},
		sysSample(1200, 2100, 2200),
	)
	// 100*(1200-1100)/500 = 20%, not 100*(1200-1000)/500.
	if got := ranked[0].CPU; math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected 20%%, got %.4f", got)
	}
}

func TestPidReuseResetsBaseline(t *testing.T) {
	c := NewCalculator()

	c.ComputeRates(
		[]model.ProcessSample{procSample(42, 1000, 7)},
		sysSample(1000, 2000, 2000),
	)

	// Same PID, different creation time: a new process instance. Its huge
	// apparent time delta must not produce a rate.
	ranked, _, _ := c.ComputeRates(
		[]model.ProcessSample{procSample(42, 5, 99)},
		sysSample(1200, 2100, 2200),
	)
	if ranked[0].CPU != 0 {
		t.Fatalf("reused PID must rate 0%% on first observation, got %.4f", ranked[0].CPU)
	}

	// And the fresh baseline belongs to the new instance: 100*50/200 = 25%.
	ranked, _, _ = c.ComputeRates(
		[]model.ProcessSample{procSample(42, 55, 99)},
		sysSample(1250, 2150, 2300),
	)
	if got := ranked[0].CPU; math.Abs(got-25) > 1e-9 {
		t.Fatalf("expected 25%%, got %.4f", got)
	}
}

func TestBaselineSweep(t *testing.T) {
	c := NewCalculator()

	samples := []model.ProcessSample{
		procSample(1, 10, 7),
		procSample(2, 20, 7),
		procSample(3, 30, 7),
	}
	c.ComputeRates(samples, sysSample(1000, 2000, 2000))
	if got := c.BaselineCount(); got != 3 {
		t.Fatalf("expected 3 baselines, got %d", got)
	}

	c.ComputeRates(samples[:1], sysSample(1100, 2100, 2100))
	if got := c.BaselineCount(); got != 1 {
		t.Fatalf("exited PIDs must be swept, got %d baselines", got)
	}
}

func TestUnknownCPUTimeDegradesGracefully(t *testing.T) {
	c := NewCalculator()

	broken := model.ProcessSample{Pid: 9, Name: "gone"}
	ranked, _, _ := c.ComputeRates(
		[]model.ProcessSample{broken},
		sysSample(1000, 2000, 2000),
	)

	if len(ranked) != 1 {
		t.Fatalf("process with failed time query must still be listed")
	}
	if ranked[0].CPU != 0 {
		t.Fatalf("unknown CPU time must rate 0%%, got %.4f", ranked[0].CPU)
	}
	if c.BaselineCount() != 0 {
		t.Fatalf("no baseline should be written for an unknown CPU time")
	}
}
