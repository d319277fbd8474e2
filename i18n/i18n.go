package i18n

import (
	"log"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Pomodoro Timer": {
		"pt": "Temporizador Pomodoro",
		"es": "Temporizador Pomodoro",
		"ru": "Таймер Помодоро",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Time's up!": {
		"pt": "Acabou o tempo!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
	"Your Pomodoro session is over!": {
		"pt": "Sua sessão Pomodoro terminou!",
		"es": "¡Tu sesión Pomodoro ha terminado!",
		"ru": "Ваша сессия Помодоро окончена!",
	},
}

func init() {
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		return
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		return
	}

	log.Printf("Detected user locale: %s", userLocales[0])
	SetLang(FromLocale(userLocales[0]))
	log.Printf("Language set to: %s", GetLang())
}

// FromLocale maps a locale such as "pt_BR" or "es-ES" to a supported
// language, falling back to english.
func FromLocale(loc string) string {
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(strings.ToLower(loc), l) {
			return l
		}
	}
	return "en"
}

// SetLang switches the language used by T.
func SetLang(l string) {
	mu.Lock()
	defer mu.Unlock()
	lang = l
}

func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
