// Package term hosts a simulation in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"sand-ca/internal/core"
	pcore "sand-ca/pkg/core"
)

// Options configure a Host.
type Options struct {
	Interval time.Duration
	// Seed is the seed the sim was last reset with. It also seeds the
	// stream that r draws new boards from.
	Seed  int64
	Sound core.Sounder
}

var (
	sandStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	emptyStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Host drives a sim on a tcell screen: it ticks on a fixed interval, paints
// on mouse presses and handles the pause/reset/step keys. The sim itself has
// no notion of pausing.
type Host struct {
	screen   tcell.Screen
	sim      core.Sim
	sound    core.Sounder
	interval time.Duration
	seed     int64
	seeds    *pcore.RNG

	paused  bool
	pressed bool
}

// New wraps an initialized screen. The caller owns the screen's lifecycle.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Host {
	if opts.Interval <= 0 {
		opts.Interval = core.DefaultInterval
	}
	if opts.Sound == nil {
		opts.Sound = core.Silent{}
	}
	screen.EnableMouse()
	return &Host{
		screen:   screen,
		sim:      sim,
		sound:    opts.Sound,
		interval: opts.Interval,
		seed:     opts.Seed,
		seeds:    pcore.NewRNG(opts.Seed),
	}
}

// Seed returns the seed of the board currently shown.
func (h *Host) Seed() int64 { return h.seed }

// Paused reports whether timed ticks are suspended.
func (h *Host) Paused() bool { return h.paused }

// Run processes input and ticks until the user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.Handle(ev) {
				return nil
			}
			h.Draw()
		case <-ticker.C:
			if h.paused {
				continue
			}
			h.sim.Step()
			h.Draw()
		}
	}
}

// Handle applies one input event. It returns false when the user asked to
// quit.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				h.paused = !h.paused
			case 'n':
				h.sim.Step()
			case 'r':
				h.reset(h.seeds.NextSeed())
			case 's':
				h.reset(h.seed)
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down {
			h.paint(ev.Position())
		}
		h.pressed = down
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) reset(seed int64) {
	h.seed = seed
	h.sim.Reset(seed)
	h.sound.Reset()
}

func (h *Host) paint(col, row int) {
	painter, ok := h.sim.(core.Painter)
	if !ok {
		return
	}
	x, y, ok := h.sim.Size().FromScreen(col, row)
	if !ok {
		return
	}
	painter.Paint(x, y)
	if !h.pressed {
		h.sound.Click()
	}
}

// Draw re-reads every cell of the sim and shows it, with a status line below
// the grid.
func (h *Host) Draw() {
	size := h.sim.Size()
	cells := h.sim.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if cells[row*size.W+col] != 0 {
				h.screen.SetContent(col, row, '█', nil, sandStyle)
			} else {
				h.screen.SetContent(col, row, ' ', nil, emptyStyle)
			}
		}
	}
	h.drawStatus(size.H)
	h.screen.Show()
}

func (h *Host) drawStatus(row int) {
	line := h.statusLine()
	width, _ := h.screen.Size()
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(line) {
			r = rune(line[col])
		}
		h.screen.SetContent(col, row, r, nil, statusStyle)
	}
}

func (h *Host) statusLine() string {
	state := "running"
	if h.paused {
		state = "paused"
	}
	line := h.sim.Name() + " " + state
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		if p, ok := snap.Lookup("ticks"); ok {
			line += " tick " + p.Value
		}
		if p, ok := snap.Lookup("population"); ok {
			line += " sand " + p.Value
		}
	}
	return fmt.Sprintf("%s | p pause r new s replay n step q quit", line)
}
