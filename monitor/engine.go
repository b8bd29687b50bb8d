package monitor

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"wtop/config"
	"wtop/ui"
)

// Engine drives the sampling cycle: take a snapshot, compute rates, push the
// result to the TUI, repeat on a fixed cadence. The baseline state lives in
// the Calculator and is touched only from the collect goroutine; the TUI owns
// the view state, so the two sides only meet through bubbletea messages and
// the paused flag.
type Engine struct {
	calc    *Calculator
	program *tea.Program
	logger  *log.Logger

	// paused is set by the UI while the help screen is showing. Sampling is
	// skipped entirely for those ticks.
	paused atomic.Bool

	reload chan config.Config
}

func NewEngine(logger *log.Logger) *Engine {
	return &Engine{
		calc:   NewCalculator(),
		logger: logger,
		reload: make(chan config.Config, 1),
	}
}

// Run starts the TUI and the background collect loop, blocking until the
// program exits or ctx is cancelled.
func (e *Engine) Run(ctx context.Context, cfg *config.Config) error {
	tuiModel := ui.NewModel(cfg.Rows, &e.paused)
	e.program = tea.NewProgram(tuiModel, tea.WithAltScreen())

	go e.collectLoop(ctx, cfg)
	go e.watchConfig(ctx)

	if _, err := e.program.Run(); err != nil {
		return err
	}
	return ctx.Err()
}

func (e *Engine) collectLoop(ctx context.Context, cfg *config.Config) {
	interval := cfg.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Kept so a failed enumeration can redisplay the previous cycle.
	var last ui.Data
	var haveLast bool

	for {
		select {
		case <-ctx.Done():
			e.program.Quit()
			return

		case next := <-e.reload:
			if d := next.Interval(); d != interval {
				interval = d
				ticker.Reset(d)
			}
			ui.SendConfig(e.program, next.Rows)
			e.logger.Println("config reloaded")

		case <-ticker.C:
			if e.paused.Load() {
				continue
			}
			e.collect(&last, &haveLast)
		}
	}
}

func (e *Engine) collect(last *ui.Data, haveLast *bool) {
	samples, sys, err := TakeSnapshot()
	if err != nil {
		e.logger.Printf("snapshot failed: %v", err)
		if *haveLast {
			last.Degraded = true
			ui.SendData(e.program, *last)
		}
		return
	}

	ranked, sysCPU, sysOK := e.calc.ComputeRates(samples, sys)
	*last = ui.Data{
		Ranked:   ranked,
		SysCPU:   sysCPU,
		SysOK:    sysOK,
		MemUsed:  sys.UsedMem(),
		MemTotal: sys.TotalMem,
	}
	*haveLast = true
	ui.SendData(e.program, *last)
}

// watchConfig hot-applies edits to the config file.
func (e *Engine) watchConfig(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		e.logger.Printf("config watch unavailable: %v", err)
		return
	}
	defer w.Close()

	if err := w.Add(config.Path()); err != nil {
		e.logger.Printf("config watch unavailable: %v", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			cfg, err := config.Load()
			if err != nil {
				e.logger.Printf("config reload failed: %v", err)
				continue
			}
			select {
			case e.reload <- *cfg:
			default:
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			e.logger.Printf("config watch: %v", err)
		}
	}
}
