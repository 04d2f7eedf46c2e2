package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/model"
)

// DetailSheet opens a dialog for the selected movie and clears the
// selection when the dialog closes
type DetailSheet struct {
	window       fyne.Window
	selection    *catalog.Selection
	localization *Localization
	loader       PosterLoader
	logger       *slog.Logger

	dialog      dialog.Dialog
	current     model.Movie
	unsubscribe func()
}

// NewDetailSheet creates a sheet driven by selection
func NewDetailSheet(window fyne.Window, selection *catalog.Selection, localization *Localization, loader PosterLoader, logger *slog.Logger) *DetailSheet {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailSheet{
		window:       window,
		selection:    selection,
		localization: localization,
		loader:       loader,
		logger:       logger,
	}
}

// Bind follows the selection
func (d *DetailSheet) Bind() {
	if d.unsubscribe != nil {
		return
	}
	d.unsubscribe = d.selection.Subscribe(func(m model.Movie, selected bool) {
		fyne.Do(func() {
			if selected {
				d.show(m)
			} else {
				d.hide()
			}
		})
	})
}

// Unbind stops following the selection
func (d *DetailSheet) Unbind() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
}

// Visible reports whether the sheet is open and for which movie
func (d *DetailSheet) Visible() (model.Movie, bool) {
	return d.current, d.dialog != nil
}

func (d *DetailSheet) show(m model.Movie) {
	previous := d.dialog
	dlg := dialog.NewCustom(m.DisplayTitle(), d.localization.GetText(KeyClose), d.content(m), d.window)
	dlg.SetOnClosed(func() {
		// replaced sheets must not clear the newer selection
		if d.dialog != dlg {
			return
		}
		d.dialog = nil
		d.current = model.Movie{}
		d.selection.Clear()
	})
	dlg.Resize(fyne.NewSize(DetailSheetWidth, DetailSheetH))

	d.dialog = dlg
	d.current = m
	if previous != nil {
		previous.Hide()
	}
	dlg.Show()
}

func (d *DetailSheet) hide() {
	if d.dialog == nil {
		return
	}
	dlg := d.dialog
	d.dialog = nil
	d.current = model.Movie{}
	dlg.Hide()
}

func (d *DetailSheet) content(m model.Movie) fyne.CanvasObject {
	backdrop := canvas.NewImageFromResource(nil)
	backdrop.FillMode = canvas.ImageFillContain
	backdrop.SetMinSize(fyne.NewSize(DetailSheetWidth, BackdropHeight))

	if url := m.BackdropURL(model.BackdropSize); url != "" && d.loader != nil {
		go func() {
			res, err := d.loader(url)
			if err != nil {
				d.logger.Debug("backdrop unavailable", "movie", m.ID, "error", err)
				return
			}
			fyne.Do(func() {
				backdrop.Resource = res
				backdrop.Refresh()
			})
		}()
	}

	title := widget.NewLabel(m.DisplayTitle())
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Wrapping = fyne.TextWrapWord

	meta := widget.NewLabel(detailMeta(m, d.localization))
	meta.Importance = widget.LowImportance

	overview := m.Overview
	if strings.TrimSpace(overview) == "" {
		overview = d.localization.GetText(KeyNoOverview)
	}
	overviewLabel := widget.NewLabel(overview)
	overviewLabel.Wrapping = fyne.TextWrapWord

	return container.NewBorder(
		container.NewVBox(backdrop, title, meta),
		nil, nil, nil,
		container.NewVScroll(overviewLabel),
	)
}

// detailMeta renders "Released 2021-05-01 · ★ 7.3"
func detailMeta(m model.Movie, localization *Localization) string {
	parts := []string{}
	if m.ReleaseDate != "" {
		parts = append(parts, localization.GetText(KeyReleased)+" "+m.ReleaseDate)
	}
	parts = append(parts, ratingText(m))
	return strings.Join(parts, MiddleDotSeparator)
}
