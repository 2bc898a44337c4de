package term

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifecode/pkg/life"
)

const leftWidth = 30

type binding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

var modeDescr = map[bool]string{
	true:  aurora.Colorize("running", aurora.CyanFg).String(),
	false: aurora.Colorize("paused", aurora.BlueFg).String(),
}

// Options configure the terminal player.
type Options struct {
	RuleName string // label shown in the status view
	Seed     int64  // seed shown in the status view, replaced on reseed
	TPS      int    // generations per second while running
}

// UI drives a world interactively in the terminal. The world is touched
// only from the gocui main loop: key handlers run there directly and the
// generation clock posts its steps through gui.Update.
type UI struct {
	g        *gocui.Gui
	world    *life.World
	frame    *Frame
	bindings []binding

	ruleName   string
	seed       int64
	tps        int
	liveRune   rune
	liveFiller string

	running bool
	stopc   chan struct{}
}

// New builds the terminal player around a prepared world. The caller seeds
// the world beforehand.
func New(world *life.World, opts Options) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("open terminal ui: %w", err)
	}
	g.Mouse = true

	if opts.TPS <= 0 {
		opts.TPS = 10
	}
	if opts.RuleName == "" {
		opts.RuleName = world.Rule().Encode()
	}

	size := world.Size()
	live, _ := world.Glyphs()
	ui := &UI{
		g:          g,
		world:      world,
		frame:      NewFrame(size.W, size.H),
		ruleName:   opts.RuleName,
		seed:       opts.Seed,
		tps:        opts.TPS,
		liveRune:   live,
		liveFiller: aurora.Green(string(live)).BgBrightGreen().String(),
		stopc:      make(chan struct{}),
	}
	ui.bindings = []binding{
		{gocui.KeyCtrlC, "^C", "Exit", ui.cmdQuit, ""},
		{'n', "N", "Next step", ui.cmdStep, ""},
		{'r', "R", "Run", ui.cmdRun, ""},
		{'s', "S", "Stop", ui.cmdStop, ""},
		{'c', "C", "Clear", ui.cmdClear, ""},
		{'w', "W", "Random reseed", ui.cmdReseed, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", ui.cmdClick, "board"},
	}

	g.SetManagerFunc(ui.layout)
	if err := ui.bindKeys(); err != nil {
		g.Close()
		return nil, err
	}
	return ui, nil
}

// Run starts the interactive loop and blocks until the user quits.
func (ui *UI) Run() error {
	go ui.runLoop()
	err := ui.g.MainLoop()
	close(ui.stopc)
	ui.g.Close()
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (ui *UI) bindKeys() error {
	for _, kb := range ui.bindings {
		h := kb.handler
		err := ui.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(_ *gocui.Gui, v *gocui.View) error { return h(v) })
		if err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return nil
}

func (ui *UI) runLoop() {
	ticker := time.NewTicker(time.Second / time.Duration(ui.tps))
	defer ticker.Stop()
	for {
		select {
		case <-ui.stopc:
			return
		case <-ticker.C:
			ui.g.Update(func(g *gocui.Gui) error {
				if !ui.running {
					return nil
				}
				ui.world.Step()
				return ui.refresh(g)
			})
		}
	}
}

func (ui *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("header", -1, -1, maxX+1, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	if v, err := g.View("header"); err == nil {
		v.Clear()
		fmt.Fprintf(v, " lifecode [%s]", ui.ruleName)
	}

	if maxY < 12 || maxX < leftWidth+8 {
		_ = g.DeleteView("status")
		_ = g.DeleteView("board")
		_ = g.DeleteView("help")
		return nil
	}

	if v, err := g.SetView("status", 0, 1, leftWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("board", leftWidth+1, 1, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, kb := range ui.bindings {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		fmt.Fprintln(v, b.String())
	}

	return ui.refresh(g)
}

func (ui *UI) refresh(g *gocui.Gui) error {
	if err := ui.renderBoard(g); err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err := ui.renderStatus(g); err != nil && err != gocui.ErrUnknownView {
		return err
	}
	return nil
}

func (ui *UI) renderBoard(g *gocui.Gui) error {
	v, err := g.View("board")
	if err != nil {
		return err
	}
	v.Clear()

	maxW, maxH := v.Size()
	size := ui.world.Size()
	crop := size.W > maxW || size.H > maxH

	ui.world.Render(ui.frame)

	var b bytes.Buffer
	for y := 0; y < size.H; y++ {
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("board larger than the view").BgBlack().String())
			break
		}
		for x, r := range ui.frame.Row(y) {
			if x >= maxW {
				break
			}
			if r == ui.liveRune {
				b.WriteString(ui.liveFiller)
			} else {
				b.WriteRune(r)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
	return nil
}

func (ui *UI) renderStatus(g *gocui.Gui) error {
	v, err := g.View("status")
	if err != nil {
		return err
	}
	v.Clear()

	size := ui.world.Size()
	_, _ = fmt.Fprintln(v, ui.prop("Rule", "%s", ui.ruleName))
	_, _ = fmt.Fprintln(v, ui.prop("Code", "%s", ui.world.Rule().Encode()))
	_, _ = fmt.Fprintln(v, ui.prop("Size", "%d x %d", size.W, size.H))
	_, _ = fmt.Fprintln(v, ui.prop("Seed", "%d", ui.seed))
	_, _ = fmt.Fprintln(v, ui.prop("Speed", "%d gen/s", ui.tps))
	_, _ = fmt.Fprintln(v, ui.prop("Generation", "%d", ui.world.Generation()))
	_, _ = fmt.Fprintln(v, ui.prop("Population", "%d", ui.world.Population()))
	_, _ = fmt.Fprintln(v, ui.prop("Mode", "%s", modeDescr[ui.running]))
	return nil
}

func (ui *UI) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (ui *UI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (ui *UI) cmdStep(_ *gocui.View) error {
	ui.world.Step()
	return ui.refresh(ui.g)
}

func (ui *UI) cmdRun(_ *gocui.View) error {
	ui.running = true
	return ui.refresh(ui.g)
}

func (ui *UI) cmdStop(_ *gocui.View) error {
	ui.running = false
	return ui.refresh(ui.g)
}

func (ui *UI) cmdClear(_ *gocui.View) error {
	ui.running = false
	ui.world.Clear()
	return ui.refresh(ui.g)
}

func (ui *UI) cmdReseed(_ *gocui.View) error {
	ui.seed = time.Now().UnixNano()
	ui.world.Reset(ui.seed)
	return ui.refresh(ui.g)
}

func (ui *UI) cmdClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ui.world.Toggle(cx, cy)
	return ui.refresh(ui.g)
}
