// Package i18n translates the handful of labels shown in the tray menu and
// the panel. The language is chosen once at startup.
package i18n

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// EnvLanguage overrides every other language source when set.
const EnvLanguage = "CORK_LANG"

// Supported lists the languages with translations besides English.
var Supported = []string{"de", "es", "pt"}

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Start":           {"de": "Start", "es": "Iniciar", "pt": "Iniciar"},
	"Stop":            {"de": "Stopp", "es": "Parar", "pt": "Parar"},
	"Reset":           {"de": "Zurücksetzen", "es": "Reiniciar", "pt": "Zerar"},
	"Lap":             {"de": "Runde", "es": "Vuelta", "pt": "Volta"},
	"Laps:":           {"de": "Runden:", "es": "Vueltas:", "pt": "Voltas:"},
	"Clear Laps":      {"de": "Runden löschen", "es": "Borrar vueltas", "pt": "Limpar voltas"},
	"Clear":           {"de": "Löschen", "es": "Borrar", "pt": "Limpar"},
	"Stopwatch":       {"de": "Stoppuhr", "es": "Cronómetro", "pt": "Cronômetro"},
	"Countdown":       {"de": "Countdown", "es": "Cuenta atrás", "pt": "Contagem"},
	"Time Remaining:": {"de": "Verbleibend:", "es": "Tiempo restante:", "pt": "Tempo restante:"},
	"Enter Time:":     {"de": "Uhrzeit:", "es": "Hora:", "pt": "Horário:"},
	"Show Cork":       {"de": "Cork anzeigen", "es": "Mostrar Cork", "pt": "Mostrar Cork"},
	"Clear countdown": {"de": "Countdown löschen", "es": "Borrar cuenta atrás", "pt": "Limpar contagem"},
	"Preferences":     {"de": "Einstellungen", "es": "Preferencias", "pt": "Preferências"},
	"Quit":            {"de": "Beenden", "es": "Salir", "pt": "Sair"},
	"Countdown done":  {"de": "Countdown beendet", "es": "Cuenta atrás terminada", "pt": "Contagem encerrada"},
	"Save":            {"de": "Speichern", "es": "Guardar", "pt": "Salvar"},
	"Cancel":          {"de": "Abbrechen", "es": "Cancelar", "pt": "Cancelar"},
	"Play sound":      {"de": "Ton abspielen", "es": "Reproducir sonido", "pt": "Tocar som"},
	"Flash tray icon": {"de": "Symbol blinken", "es": "Parpadear icono", "pt": "Piscar ícone"},
	"Launch at login": {"de": "Beim Anmelden starten", "es": "Iniciar al entrar", "pt": "Iniciar no login"},
	"Language":        {"de": "Sprache", "es": "Idioma", "pt": "Idioma"},
	"Clearing laps also resets the split boundary": {
		"de": "Runden löschen setzt auch die Zwischenzeit zurück",
		"es": "Borrar vueltas también reinicia el parcial",
		"pt": "Limpar voltas também zera o parcial",
	},
}

// Init selects the language. The CORK_LANG environment variable wins, then
// preferred (usually the saved preference), then the system locale.
func Init(preferred string) {
	selected := Detect(os.Getenv(EnvLanguage), preferred, systemLocales)
	mu.Lock()
	lang = selected
	mu.Unlock()
	log.Printf("language set to: %s", selected)
}

// Detect resolves the language from the override, the preference and the
// locales reported by the system, falling back to English.
func Detect(override, preferred string, locales func() ([]string, error)) string {
	if code, ok := match(override); ok {
		return code
	}
	if code, ok := match(preferred); ok {
		return code
	}
	if locales == nil {
		return "en"
	}
	userLocales, err := locales()
	if err != nil {
		log.Printf("could not get user locale, defaulting to english: %v", err)
		return "en"
	}
	for _, userLocale := range userLocales {
		if code, ok := match(userLocale); ok {
			return code
		}
	}
	return "en"
}

// T returns the translation of key for the selected language.
func T(key string) string {
	mu.RLock()
	current := lang
	mu.RUnlock()
	if translated, ok := translations[key][current]; ok {
		return translated
	}
	return key
}

// Lang returns the selected language code.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

func match(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	if strings.HasPrefix(value, "en") {
		return "en", true
	}
	for _, code := range Supported {
		if strings.HasPrefix(value, code) {
			return code, true
		}
	}
	return "", false
}

func systemLocales() ([]string, error) {
	return locale.GetLocales()
}
