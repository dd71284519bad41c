package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabstack/audio"
	"github.com/lixenwraith/tabstack/config"
	"github.com/lixenwraith/tabstack/engine"
	"github.com/lixenwraith/tabstack/event"
	"github.com/lixenwraith/tabstack/geom"
	"github.com/lixenwraith/tabstack/model"
	"github.com/lixenwraith/tabstack/render"
	"github.com/lixenwraith/tabstack/switcher"
)

var demoColors = []tcell.Color{
	tcell.NewRGBColor(40, 44, 62),
	tcell.NewRGBColor(56, 40, 52),
	tcell.NewRGBColor(36, 52, 44),
	tcell.NewRGBColor(58, 50, 34),
	tcell.NewRGBColor(34, 48, 60),
}

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	orientation := render.Portrait
	if cfg.Layout.Orientation == "landscape" {
		orientation = render.Landscape
	}
	caps := engine.DefaultCapabilities()
	if cfg.Layout.Tablet {
		caps = engine.TabletCapabilities()
	}

	m := model.NewTabModel()
	surface := render.NewSurface(screen, orientation, themeFrom(cfg), caps.TiltSupported, m)
	sw := switcher.New(m, surface, caps)
	sw.Reset(cfg.Layout.DragThreshold)
	sw.SetFeedback(feedbackFrom(cfg))
	m.SetAddButtonShown(true)

	nextTab := 6
	addTab := func() {
		tab := model.NewTab(fmt.Sprintf("tab %d", nextTab))
		tab.SetContentColor(demoColors[(nextTab-1)%len(demoColors)])
		nextTab++
		sw.AddTab(tab)
	}

	status := "tab: toggle | a: add | x: close | q: quit"
	sw.SetEventHandler(func(ev event.Event) {
		switch ev.Type {
		case event.EventSelectRequest:
			p := ev.Payload.(*event.TabPayload)
			status = fmt.Sprintf("selected tab %d", p.Index)
		case event.EventCloseRequest:
			status = "tab closed"
		case event.EventAddRequest:
			addTab()
			status = "tab added"
		case event.EventSwitcherShown:
			status = "drag to browse, swipe sideways to close, tap to pick"
		case event.EventSwitcherHidden:
			status = "tab: toggle | a: add | x: close | q: quit"
		}
	})

	for i := 1; i <= 5; i++ {
		tab := model.NewTab(fmt.Sprintf("tab %d", i))
		tab.SetContentColor(demoColors[(i-1)%len(demoColors)])
		m.Add(tab)
	}
	m.Select(0)

	// Dedicated input goroutine; the main loop owns the switcher
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	mouseDown := false

	for {
		select {
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				sw.OnGlobalLayout()

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyTab:
					sw.ToggleSwitcher()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'a':
					addTab()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'x':
					if !m.IsEmpty() {
						sw.RemoveTab(m.SelectedIndex())
					}
				}

			case *tcell.EventMouse:
				x, y := ev.Position()
				p := geom.Point{X: float64(x), Y: float64(y)}
				pressed := ev.Buttons()&tcell.Button1 != 0
				switch {
				case pressed && !mouseDown:
					mouseDown = true
					sw.HandleTouchEvent(switcher.TouchEvent{Kind: switcher.TouchDown, Point: p, Time: ev.When()})
				case pressed:
					sw.HandleTouchEvent(switcher.TouchEvent{Kind: switcher.TouchMove, Point: p, Time: ev.When()})
				case mouseDown:
					mouseDown = false
					sw.HandleTouchEvent(switcher.TouchEvent{Kind: switcher.TouchUp, Point: p, Time: ev.When()})
				}
			}

		case now := <-ticker.C:
			sw.Advance(now)
			surface.Draw()
			drawStatus(screen, status)
			screen.Show()
		}
	}
}

func drawStatus(screen tcell.Screen, status string) {
	w, h := screen.Size()
	style := tcell.StyleDefault.
		Background(tcell.NewRGBColor(30, 34, 42)).
		Foreground(tcell.NewRGBColor(160, 168, 180))
	for x := 0; x < w; x++ {
		screen.SetContent(x, h-1, ' ', nil, style)
	}
	for i, r := range status {
		if 1+i >= w {
			break
		}
		screen.SetContent(1+i, h-1, r, nil, style)
	}
}

// themeFrom merges configured hex colors over the default theme
func themeFrom(cfg *config.Config) render.Theme {
	theme := render.DefaultTheme()
	set := func(dst *tcell.Color, hex string) {
		if hex != "" {
			*dst = tcell.GetColor(hex)
		}
	}
	set(&theme.Background, cfg.Theme.Background)
	set(&theme.CardBody, cfg.Theme.CardBody)
	set(&theme.CardBorder, cfg.Theme.CardBorder)
	set(&theme.CardTitle, cfg.Theme.CardTitle)
	set(&theme.Selected, cfg.Theme.Selected)
	return theme
}

// feedbackFrom builds the audio service from the file configuration with
// environment overrides on top
func feedbackFrom(cfg *config.Config) *audio.Feedback {
	acfg := audio.LoadConfig()
	if cfg.Audio.Enabled {
		acfg.Enabled = true
		acfg.MasterVolume = cfg.Audio.Volume
	}
	return audio.NewFeedback(acfg)
}
