package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"cork/internal/i18n"
)

const systemLanguage = "System"

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	sound         *widget.Check
	volume        *widget.Slider
	flash         *widget.Check
	clearBoundary *widget.Check
	launchAtLogin *widget.Check
	language      *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Cork " + i18n.T("Preferences"))

	sound := widget.NewCheck(i18n.T("Play sound"), nil)
	volume := widget.NewSlider(0, 1)
	volume.Step = 0.05
	sound.OnChanged = func(checked bool) {
		if checked {
			volume.Enable()
		} else {
			volume.Disable()
		}
	}

	flash := widget.NewCheck(i18n.T("Flash tray icon"), nil)
	clearBoundary := widget.NewCheck(i18n.T("Clearing laps also resets the split boundary"), nil)
	launchAtLogin := widget.NewCheck(i18n.T("Launch at login"), nil)
	language := widget.NewSelect(languageOptions(), nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(i18n.T("Countdown"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		volume,
		flash,
		widget.NewLabelWithStyle(i18n.T("Stopwatch"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		clearBoundary,
		widget.NewSeparator(),
		launchAtLogin,
		container.NewHBox(widget.NewLabel(i18n.T("Language")), language),
	)

	saveButton := widget.NewButton(i18n.T("Save"), nil)
	cancelButton := widget.NewButton(i18n.T("Cancel"), nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		sound:         sound,
		volume:        volume,
		flash:         flash,
		clearBoundary: clearBoundary,
		launchAtLogin: launchAtLogin,
		language:      language,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.volume.SetValue(settings.SoundVolume)
	if settings.SoundEnabled {
		prefs.volume.Enable()
	} else {
		prefs.volume.Disable()
	}
	prefs.flash.SetChecked(settings.FlashIcon)
	prefs.clearBoundary.SetChecked(settings.ClearLapsResetsBoundary)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
	prefs.language.SetSelected(languageLabel(settings.Language))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked
	settings.SoundVolume = prefs.volume.Value
	settings.FlashIcon = prefs.flash.Checked
	settings.ClearLapsResetsBoundary = prefs.clearBoundary.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked
	settings.Language = languageCode(prefs.language.Selected)

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func languageOptions() []string {
	return append([]string{systemLanguage, "en"}, i18n.Supported...)
}

func languageLabel(code string) string {
	if code == "" {
		return systemLanguage
	}
	return code
}

func languageCode(label string) string {
	if label == systemLanguage {
		return ""
	}
	return label
}
