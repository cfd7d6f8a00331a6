/*
Package sheet provides a draggable bottom sheet panel for Gio, which rests
collapsed above the lower edge of the window, expands with an eased or physics
driven animation and tracks the finger for as long as a drag gesture holds it.

The package provides a command line demo, supporting various flags for the
window, the backdrop image and the sheet chrome. To check the supported
commands type:

	$ sheet --help

In case you wish to integrate the API in a self constructed environment here is
a simple example:

	package main

	import (
		"gioui.org/app"
		"gioui.org/font/gofont"
		"gioui.org/io/system"
		"gioui.org/layout"
		"gioui.org/op"
		"gioui.org/widget/material"

		"github.com/esimov/sheet"
	)

	func main() {
		go func() {
			w := app.NewWindow()
			th := material.NewTheme(gofont.Collection())
			s := sheet.NewSheet()

			var ops op.Ops
			for e := range w.Events() {
				if e, ok := e.(system.FrameEvent); ok {
					gtx := layout.NewContext(&ops, e)
					sheet.Modal(th, s).Layout(gtx, nil,
						func(gtx layout.Context) layout.Dimensions {
							return material.H6(th, "Sheet content").Layout(gtx)
						})
					e.Frame(gtx.Ops)
				}
			}
		}()
		app.Main()
	}
 */
package sheet
