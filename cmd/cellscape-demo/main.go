// Command cellscape-demo wires every cellscape package into a running
// terminal program: a demo scene (an animated sprite, a syntax-
// highlighted source panel) driven by the render/event/input/logger
// threads spec 5. describes as cooperating via a single pause lock.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cellscape/cell"
	"cellscape/color"
	"cellscape/config"
	"cellscape/element"
	"cellscape/engine"
	"cellscape/event"
	"cellscape/focus"
	"cellscape/input"
	"cellscape/logging"
	"cellscape/term"
	"cellscape/widgets"
	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Parse("cellscape-demo", os.Args[1:])
	if err != nil {
		return trace.Wrap(err, "parsing flags")
	}

	log, closeLog := newLogger(settings.LoggerFileName)
	defer closeLog()

	t := term.New(os.Stdin, os.Stdout)
	if err := t.Init(term.Options{AltScreen: true, Mouse: true}); err != nil {
		return trace.Wrap(err, "initializing terminal")
	}
	defer t.Cleanup()
	t.WatchFatalSignals()

	width, height := t.Size()
	tree := element.NewTree(width, height, nil)
	eng := engine.New(tree, os.Stdout, settings.EnableWordWrapping, log)
	eng.Init()

	t.WatchResize(func(w, h int) {
		eng.WithPause(func() { tree.Resize(w, h) })
	}, nil)

	registry := focus.NewRegistry(log)
	loop := event.NewLoop(eng, log)

	reporter := logging.NewReporter(log, tree, loop.Memory(), eng.WithPause)
	reporter.SetLifetime(settings.LogWindowLifetime)

	if err := buildScene(tree, registry, loop); err != nil {
		return trace.Wrap(err, "building demo scene")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return eng.RenderLoop(gctx) })
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error { return reporter.Run(gctx) })
	g.Go(func() error {
		runInput(gctx, t, eng, registry, reporter, settings.MousePressDownCooldown)
		return nil
	})

	eng.RequestRender()
	return g.Wait()
}

// newLogger builds the structured sink: settings.LoggerFileName (spec
// 6.) redirects it to a file instead of stderr, the original's own
// output stream while running full-screen.
func newLogger(path string) (*logrus.Entry, func()) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	if path == "" {
		l.SetOutput(os.Stderr)
		return logrus.NewEntry(l), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l.SetOutput(os.Stderr)
		l.WithError(err).Warn("could not open log file, falling back to stderr")
		return logrus.NewEntry(l), func() {}
	}
	l.SetOutput(f)
	return logrus.NewEntry(l), func() { _ = f.Close() }
}

// runInput is the input thread: read available bytes, decode, run
// click/press synthesis, then dispatch under the engine's pause lock
// (spec 4.10-4.12). Raw mode delivers Ctrl+C as a decoded
// KeyCtrlLetter 'c' rather than SIGINT; it takes the same Cleanup-then-
// exit path WatchFatalSignals takes.
func runInput(ctx context.Context, t *term.Terminal, eng *engine.Engine, registry *focus.Registry, reporter *logging.Reporter, cooldown time.Duration) {
	reader := input.NewReader(os.Stdin, int(os.Stdin.Fd()))
	decoder := input.NewDecoder()
	synth := input.NewClickPressSynthesizer(cooldown)
	var mouseX, mouseY int

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		raw, err := reader.ReadAvailable()
		if err != nil {
			reporter.TerminalIOFailure(err)
			time.Sleep(event.MinUpdateSpeed)
			continue
		}
		if len(raw) == 0 {
			if !t.IsTTY() {
				time.Sleep(event.MinUpdateSpeed)
			}
			continue
		}

		events := synth.Process(decoder.Decode(raw), time.Now())
		for _, e := range events {
			if e.Kind == input.KeyCtrlLetter && e.Rune == 'c' {
				t.Cleanup()
				os.Exit(0)
			}
			if e.Kind == input.MouseMove || e.X != 0 || e.Y != 0 {
				mouseX, mouseY = e.X, e.Y
			}
		}

		eng.WithPause(func() {
			focus.Dispatch(registry, events, mouseX, mouseY)
		})
	}
}

// buildScene populates the root with a small demonstration layout: an
// animated two-frame sprite (widgets.Canvas, registered so the event
// loop advances it every tick) beside a syntax-highlighted source
// panel (widgets.CodeView) the arrow keys scroll.
func buildScene(tree *element.Tree, registry *focus.Registry, loop *event.Loop) error {
	root := tree.Root

	canvas, err := widgets.NewCanvas("sprite", 4, 2, [][]cell.Cell{
		{cell.New('-'), cell.New('-'), cell.New('-'), cell.New('-'), cell.New(' '), cell.New(' '), cell.New(' '), cell.New(' ')},
		{cell.New(' '), cell.New(' '), cell.New(' '), cell.New(' '), cell.New('-'), cell.New('-'), cell.New('-'), cell.New('-')},
	})
	if err != nil {
		return trace.Wrap(err, "building sprite canvas")
	}
	canvas.Host.SetPosition(1, 1)
	if err := root.AddChild(canvas.Host); err != nil {
		return trace.Wrap(err, "attaching sprite canvas")
	}
	loop.AddAdvancer(canvas)

	const sample = "package main\n\nfunc main() {\n\tprintln(\"hello\")\n}\n"
	code, err := widgets.NewCodeView("source", root.Width-10, root.Height-6, sample, "go")
	if err != nil {
		return trace.Wrap(err, "building code view")
	}
	code.Host.Style.Border = true
	code.Host.Style.Title = "main.go"
	code.Host.SetPosition(8, 4)
	if err := root.AddChild(code.Host); err != nil {
		return trace.Wrap(err, "attaching code view")
	}

	registry.Register(&focus.Handler{
		Name: "source-scroll",
		Host: code.Host,
		Criteria: focus.Criteria{input.KeyUp, input.KeyDown, input.ScrollUp, input.ScrollDown},
		Job: func(e input.Event) (bool, error) {
			switch e.Kind {
			case input.KeyUp, input.ScrollUp:
				code.ScrollBy(-1)
			case input.KeyDown, input.ScrollDown:
				code.ScrollBy(1)
			}
			return true, nil
		},
	})

	footer := widgets.NewTextRow("footer", root.Width, "tab/click to focus, arrows to scroll, ctrl+c to quit", color.White)
	footer.SetPosition(0, root.Height-1)
	if err := root.AddChild(footer); err != nil {
		return trace.Wrap(err, "attaching footer")
	}

	return nil
}
