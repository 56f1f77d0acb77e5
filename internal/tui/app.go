package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MyelinBots/catmanager-go/internal/roster"
	"github.com/MyelinBots/catmanager-go/internal/services/catmanager"
	"github.com/MyelinBots/catmanager-go/internal/services/context_manager"
	"github.com/gdamore/tcell/v2"
)

const (
	columns     = 5
	cardHeight  = 10
	headerLines = 2
	toastTTL    = 2 * time.Second
	frameRate   = 100 * time.Millisecond
	restockSize = 10
)

type toast struct {
	text  string
	until time.Time
}

type Options struct {
	Screen       tcell.Screen
	Manager      catmanager.CatManager
	Roster       *roster.Roster
	TickInterval time.Duration
	Now          func() time.Time
	// Player is credited for actions taken from the keyboard.
	Player string
}

// App is the terminal front end: a grid of cat cards driven by the keyboard.
// Input, ticks and drawing all happen on the Run loop.
type App struct {
	screen  tcell.Screen
	manager catmanager.CatManager
	roster  *roster.Roster
	ctx     context.Context
	now     func() time.Time

	width, height int
	selected      int
	marked        int
	top           int
	toasts        []toast
	confirmQuit   bool
	quit          bool

	interval time.Duration
	lastTick time.Time
}

func NewApp(opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 10 * time.Second
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	a := &App{
		screen:   opts.Screen,
		manager:  opts.Manager,
		roster:   opts.Roster,
		ctx:      context_manager.SetNickContext(context.Background(), opts.Player),
		now:      opts.Now,
		marked:   -1,
		interval: opts.TickInterval,
		lastTick: opts.Now(),
	}
	a.width, a.height = a.screen.Size()
	return a
}

// Run draws and handles events until the user quits or ctx is done.
// The screen is finalized on return.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pump(a.screen.PollEvent, events, done)

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.HandleEvent(ev)
		case <-ticker.C:
			a.Step(a.now())
		}
		if a.quit {
			return nil
		}
		a.draw()
	}
}

// pump forwards polled events until poll returns nil or done is closed.
func pump(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Step runs the shelter tick when due and drops expired toasts.
func (a *App) Step(now time.Time) {
	if now.Sub(a.lastTick) >= a.interval {
		a.lastTick = now
		obituaries := a.manager.Tick(now)
		for _, msg := range obituaries {
			a.notify(msg)
		}
		if len(obituaries) > 0 {
			// indexes shifted
			a.marked = -1
		}
		a.clampSelection()
	}

	live := a.toasts[:0]
	for _, t := range a.toasts {
		if now.Before(t.until) {
			live = append(live, t)
		}
	}
	a.toasts = live
}

// HandleEvent applies one terminal event. It reports false once the app
// should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
	return !a.quit
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		a.quit = true
		return
	}

	if a.confirmQuit {
		switch {
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
			a.quit = true
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
			a.confirmQuit = false
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		a.confirmQuit = true
	case tcell.KeyLeft:
		a.move(-1)
	case tcell.KeyRight:
		a.move(1)
	case tcell.KeyUp:
		a.move(-columns)
	case tcell.KeyDown:
		a.move(columns)
	case tcell.KeyRune:
		a.handleRune(ev.Rune())
	}
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'q':
		a.confirmQuit = true
	case 'h':
		a.move(-1)
	case 'l':
		a.move(1)
	case 'k':
		a.move(-columns)
	case 'j':
		a.move(columns)
	case 'n':
		msg, err := a.manager.Spawn(a.ctx, 1)
		a.report(msg, err)
		if err == nil {
			a.selected = a.roster.Len() - 1
		}
	case 'f':
		a.onSelected(a.manager.Feed)
	case 'p':
		a.onSelected(a.manager.Play)
	case 's':
		a.onSelected(a.manager.Sleep)
	case 'm':
		a.mate()
	case 'r':
		a.notify(a.manager.Restock(restockSize))
	}
}

func (a *App) onSelected(fn func(ctx context.Context, index int) (string, error)) {
	if a.roster.Len() == 0 {
		a.notify("The shelter is empty. Press n to take in a cat.")
		return
	}
	a.report(fn(a.ctx, a.selected+1))
}

// mate marks the selected cat, or pairs it with the marked one.
func (a *App) mate() {
	if a.roster.Len() == 0 {
		return
	}
	switch a.marked {
	case -1:
		a.marked = a.selected
		e, _ := a.roster.Get(a.selected + 1)
		a.notify(fmt.Sprintf("%s is marked. Select a partner and press m.", e.Cat.Name))
	case a.selected:
		a.marked = -1
		a.notify("Mark cleared.")
	default:
		first := a.marked
		a.marked = -1
		a.report(a.manager.Mate(a.ctx, first+1, a.selected+1))
	}
}

func (a *App) move(delta int) {
	n := a.roster.Len()
	if n == 0 {
		a.selected = 0
		return
	}
	next := a.selected + delta
	if next < 0 || next >= n {
		return
	}
	a.selected = next
}

func (a *App) clampSelection() {
	n := a.roster.Len()
	a.selected = min(a.selected, max(n-1, 0))
	if a.marked >= n {
		a.marked = -1
	}
}

func (a *App) report(msg string, err error) {
	if err != nil {
		a.notify("⚠ " + err.Error())
		return
	}
	a.notify(msg)
}

func (a *App) notify(msg string) {
	a.toasts = append(a.toasts, toast{text: msg, until: a.now().Add(toastTTL)})
}

func (a *App) Selected() int { return a.selected }

func (a *App) Marked() int { return a.marked }

func (a *App) ConfirmingQuit() bool { return a.confirmQuit }

func (a *App) Toasts() []string {
	out := make([]string, len(a.toasts))
	for i, t := range a.toasts {
		out[i] = t.text
	}
	return out
}
