package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/disintegration/imaging"
	"github.com/esimov/sheet"
	"github.com/esimov/sheet/utils"
	"golang.org/x/term"

	// Registers WEBP support for the background image decoder.
	_ "golang.org/x/image/webp"
)

const HelpBanner = `
┌─┐┬ ┬┌─┐┌─┐┌┬┐
└─┐├─┤├┤ ├┤  │
└─┘┴ ┴└─┘└─┘ ┴

Draggable bottom sheet demo for Gio.
    Version: %s

`

type (
	C = layout.Context
	D = layout.Dimensions
)

// fitModes are the accepted values of the -fit flag.
var fitModes = []string{"fill", "fit", "center"}

// spinner used to instantiate and call the progress indicator.
var spinner *utils.Spinner

// Version indicates the current build version.
var Version string

var (
	// Flags
	source   = flag.String("in", "", "Background image path or URL")
	width    = flag.Int("width", 480, "Window width")
	height   = flag.Int("height", 720, "Window height")
	title    = flag.String("title", "Bottom sheet", "Window title")
	imgFit   = flag.String("fit", "fill", "Background scaling mode: fill, fit, center")
	blur     = flag.Float64("blur", 0, "Background blur sigma")
	duration = flag.Int("duration", 250, "Opening animation duration in milliseconds")
	peek     = flag.Int("peek", 0, "Content strip kept visible while collapsed, in dp")
	navbar   = flag.Bool("navbar", true, "Show the bottom navigation bar")
	surface  = flag.String("surface", "", "Sheet surface color as a hex string")
	scrim    = flag.String("scrim", "", "Scrim color as a hex string")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	if !utils.Contains(fitModes, *imgFit) {
		log.Fatalf(utils.DecorateText(fmt.Sprintf("-fit must be one of: fill, fit, center, got %q!\n", *imgFit), utils.ErrorMessage))
	}
	if *duration <= 0 {
		log.Fatalf(utils.DecorateText("-duration must be a positive number of milliseconds!\n", utils.ErrorMessage))
	}

	d := newDemo()

	if *source != "" {
		now := time.Now()
		img, err := loadBackground(*source)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the background image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		d.bg = paint.NewImageOp(img)
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}

	go func() {
		w := app.NewWindow(
			app.Title(*title),
			app.Size(unit.Px(float32(*width)), unit.Px(float32(*height))),
		)
		if err := d.run(w); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadBackground fetches, decodes and prepares the backdrop image,
// reporting the progress on the terminal.
func loadBackground(src string) (image.Image, error) {
	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SHEET", utils.StatusMessage),
		utils.DecorateText("is preparing the background...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	// Progress feedback is pointless when stderr is redirected.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		spinner.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ SHEET", utils.StatusMessage),
			utils.DecorateText("is preparing the background... ✔", utils.DefaultMessage))
		spinner.Start()
		defer spinner.Stop()
	}

	path := src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		defer os.Remove(f.Name())
		path = f.Name()
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	switch *imgFit {
	case "fill":
		img = imaging.Fill(img, *width, *height, imaging.Center, imaging.Lanczos)
	case "fit":
		img = imaging.Fit(img, *width, *height, imaging.Lanczos)
	case "center":
		b := img.Bounds()
		img = imaging.CropCenter(img, utils.Min(b.Dx(), *width), utils.Min(b.Dy(), *height))
	}
	if *blur > 0 {
		img = imaging.Blur(img, *blur)
	}
	return img, nil
}

// demo wires the sheet, its compositor and the backdrop into one UI.
type demo struct {
	th    *material.Theme
	sheet *sheet.Sheet
	comp  *sheet.Compositor

	surface color.NRGBA
	scrim   color.NRGBA

	bg    paint.ImageOp
	bgFit widget.Fit
	bgPos layout.Direction

	open   widget.Clickable
	tabs   []barTab
	active int
	rows   []actionRow
	choice string
}

type barTab struct {
	name  string
	click widget.Clickable
}

type actionRow struct {
	name  string
	click widget.Clickable
}

func newDemo() *demo {
	s := sheet.NewSheet()
	s.Anim.Duration = time.Duration(*duration) * time.Millisecond
	s.MinContentHeight = unit.Dp(float32(*peek))

	d := &demo{
		th:    material.NewTheme(gofont.Collection()),
		sheet: s,
		comp:  sheet.NewCompositor(s.Dims()),
		tabs:  []barTab{{name: "Library"}, {name: "Albums"}, {name: "Search"}},
		rows: []actionRow{
			{name: "Set as wallpaper"},
			{name: "Share"},
			{name: "Copy"},
			{name: "Save to gallery"},
			{name: "Details"},
			{name: "Remove"},
		},
	}
	d.th.Palette.ContrastBg = color.NRGBA{R: 15, G: 139, B: 141, A: 0xff}

	// A dismissal discards the pending choice.
	s.OnDragEnd = func(closing bool) {
		if closing {
			d.choice = ""
		}
	}

	if *surface != "" {
		d.surface = utils.HexToRGBA(*surface)
	}
	if *scrim != "" {
		d.scrim = utils.HexToRGBA(*scrim)
	}

	switch *imgFit {
	case "fill":
		d.bgFit = widget.Cover
	case "fit":
		d.bgFit, d.bgPos = widget.Contain, layout.Center
	case "center":
		d.bgFit, d.bgPos = widget.Unscaled, layout.Center
	}
	return d
}

func (d *demo) run(w *app.Window) error {
	cancel := d.sheet.Dims().Listen(w.Invalidate)
	defer cancel()

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			d.draw(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			switch e.Name {
			case key.NameEscape:
				w.Close()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

func (d *demo) draw(gtx C) {
	for d.open.Clicked() {
		d.sheet.Toggle()
	}
	for i := range d.tabs {
		for d.tabs[i].click.Clicked() {
			d.active = i
		}
	}
	for i := range d.rows {
		for d.rows[i].click.Clicked() {
			d.choice = d.rows[i].name
			d.sheet.Close()
		}
	}

	d.comp.Layout(gtx, d.overlay, d.backdrop)
}

// overlay produces the sheet as the single overlay layer.
func (d *demo) overlay(index int, dims *sheet.Dimensions) (layout.Widget, bool) {
	if index > 0 {
		return nil, false
	}
	return func(gtx C) D {
		st := sheet.Modal(d.th, d.sheet)
		st.Surface = d.surface
		st.ScrimColor = d.scrim

		var nav layout.Widget
		if *navbar {
			nav = d.navBar
		}
		return st.Layout(gtx, nav, d.sheetContent)
	}, true
}

// navBar draws the bottom navigation tabs on a solid bar.
func (d *demo) navBar(gtx C) D {
	children := make([]layout.FlexChild, 0, len(d.tabs))
	for i := range d.tabs {
		t := &d.tabs[i]
		col := d.th.Palette.ContrastFg
		if i != d.active {
			col.A = 0x99
		}
		children = append(children, layout.Flexed(1, func(gtx C) D {
			return material.Clickable(gtx, &t.click, func(gtx C) D {
				return layout.UniformInset(unit.Dp(14)).Layout(gtx, func(gtx C) D {
					return layout.Center.Layout(gtx, func(gtx C) D {
						lbl := material.Body2(d.th, t.name)
						lbl.Color = col
						return lbl.Layout(gtx)
					})
				})
			})
		}))
	}

	macro := op.Record(gtx.Ops)
	dims := layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx, children...)
	call := macro.Stop()

	paint.FillShape(gtx.Ops, d.th.Palette.ContrastBg, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}

// sheetContent lays out the header and the action rows of the panel.
func (d *demo) sheetContent(gtx C) D {
	children := make([]layout.FlexChild, 0, len(d.rows)+1)
	children = append(children, layout.Rigid(func(gtx C) D {
		return layout.Inset{
			Top:    unit.Dp(4),
			Bottom: unit.Dp(8),
			Left:   unit.Dp(16),
			Right:  unit.Dp(16),
		}.Layout(gtx, material.H6(d.th, "Photo actions").Layout)
	}))
	for i := range d.rows {
		r := &d.rows[i]
		children = append(children, layout.Rigid(func(gtx C) D {
			return material.Clickable(gtx, &r.click, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.UniformInset(unit.Dp(14)).Layout(gtx, material.Body1(d.th, r.name).Layout)
			})
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

// backdrop paints the host surface behind the sheet: the prepared
// image or a gradient fallback, the open control and a status line.
func (d *demo) backdrop(gtx C) D {
	max := gtx.Constraints.Max

	if d.bg.Size() != (image.Point{}) {
		widget.Image{
			Src:      d.bg,
			Scale:    1 / float32(gtx.Px(unit.Dp(1))),
			Fit:      d.bgFit,
			Position: d.bgPos,
		}.Layout(gtx)
	} else {
		paint.LinearGradientOp{
			Stop1:  f32.Pt(float32(max.X)/2, 0),
			Color1: color.NRGBA{R: 3, G: 18, B: 14, A: 0xff},
			Stop2:  f32.Pt(float32(max.X)/2, float32(max.Y)),
			Color2: color.NRGBA{R: 15, G: 139, B: 141, A: 0xff},
		}.Add(gtx.Ops)
		defer clip.Rect{Max: max}.Push(gtx.Ops).Pop()
		paint.PaintOp{}.Add(gtx.Ops)
	}

	layout.Inset{Top: unit.Dp(16), Left: unit.Dp(16)}.Layout(gtx, func(gtx C) D {
		msg := fmt.Sprintf("state: %s", d.sheet.Anim.Status())
		if d.choice != "" {
			msg = fmt.Sprintf("%s, picked %q", msg, d.choice)
		}
		lbl := material.Caption(d.th, msg)
		lbl.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xde}
		return lbl.Layout(gtx)
	})

	// The control stays clear of the resting sheet chrome, whose
	// heights the sheet reported through the shared cells.
	rest := d.comp.Dims.NavBarHeight.Get() +
		d.comp.Dims.DragHandleHeight.Get() +
		d.comp.Dims.MinContentHeight.Get()
	layout.Inset{Bottom: unit.Px(float32(rest + gtx.Px(unit.Dp(24))))}.Layout(gtx, func(gtx C) D {
		return layout.S.Layout(gtx, material.Button(d.th, &d.open, "Show actions").Layout)
	})

	return D{Size: max}
}
