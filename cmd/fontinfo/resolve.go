package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/fontengine"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	styleValue = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleFound = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (a *app) resolveCommand() *cobra.Command {
	var (
		size   int
		mode   string
		sample string
		noFT   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a font and print its metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseMode(mode)
			if err != nil {
				return err
			}
			sz, err := parseSize(size)
			if err != nil {
				return err
			}
			s, err := a.settings()
			if err != nil {
				return err
			}

			opts := []fontengine.Option{
				fontengine.WithAssets(fontengine.NewBitmapAssets(a.store())),
				fontengine.WithFatalHandler(fontengine.PanicOnFatal),
			}
			if noFT {
				opts = append(opts, fontengine.WithoutOutlineBackend())
			}

			return recoverFatal(func() {
				r := fontengine.New(s, fontengine.NewDefaultSkin(), opts...)
				defer r.Close()
				a.printResolved(r, sz, req, sample)
			})
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", -1, "logical font size (negative for the mode default)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "font mode: standard, fallback, mono, simple, simplemono")
	cmd.Flags().StringVar(&sample, "text", "Hello, world!", "text to measure")
	cmd.Flags().BoolVar(&noFT, "no-outline", false, "resolve without the outline backend")
	return cmd
}

func (a *app) printResolved(r *fontengine.Resolver, size fontengine.SizeRequest, mode fontengine.RequestMode, sample string) {
	row := func(k string, v any) {
		fmt.Fprintln(a.out, styleKey.Render(k)+styleValue.Render(fmt.Sprint(v)))
	}

	fmt.Fprintln(a.out, styleTitle.Render("Resolved font"))
	row("active mode", r.ActiveMode())
	row("default size", r.DefaultFontSize())

	f := r.GetFont(size, mode)
	if f == nil {
		row("font", styleDim.Render("none, using the skin font"))
	} else {
		row("font", styleFound.Render(f.Name()))
		dim := f.Dimension(sample)
		row("dimension", fmt.Sprintf("%dx%d", dim.X, dim.Y))
	}
	row("text width", r.TextWidth(sample, size, mode))
	row("text height", r.TextHeight(size, mode))
	row("line height", r.LineHeight(size, mode))
}

// recoverFatal runs fn and returns the *fontengine.FatalError it panics
// with, if any.
func recoverFatal(fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			fe, ok := rec.(*fontengine.FatalError)
			if !ok {
				panic(rec)
			}
			err = fe
		}
	}()
	fn()
	return nil
}
