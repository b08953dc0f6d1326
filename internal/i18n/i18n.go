// Package i18n translates the handful of user-facing labels.
package i18n

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// EnvLang overrides the detected language when set.
const EnvLang = "POMOTASK_LANG"

var (
	mu   sync.RWMutex
	lang = "en"
)

var supported = []string{"ru", "pt", "es"}

var translations = map[string]map[string]string{
	"Focus": {
		"ru": "Фокус",
		"pt": "Foco",
		"es": "Enfoque",
	},
	"Short Break": {
		"ru": "Короткий перерыв",
		"pt": "Pausa curta",
		"es": "Descanso corto",
	},
	"Long Break": {
		"ru": "Длинный перерыв",
		"pt": "Pausa longa",
		"es": "Descanso largo",
	},
	"Session %d": {
		"ru": "Сессия %d",
		"pt": "Sessão %d",
		"es": "Sesión %d",
	},
	"Start": {
		"ru": "Старт",
		"pt": "Iniciar",
		"es": "Iniciar",
	},
	"Pause": {
		"ru": "Пауза",
		"pt": "Pausar",
		"es": "Pausar",
	},
	"Reset": {
		"ru": "Сброс",
		"pt": "Resetar",
		"es": "Reiniciar",
	},
	"Skip": {
		"ru": "Пропустить",
		"pt": "Pular",
		"es": "Saltar",
	},
	"Timer": {
		"ru": "Таймер",
		"pt": "Timer",
		"es": "Temporizador",
	},
	"Tasks": {
		"ru": "Задачи",
		"pt": "Tarefas",
		"es": "Tareas",
	},
	"Add": {
		"ru": "Добавить",
		"pt": "Adicionar",
		"es": "Añadir",
	},
	"New task": {
		"ru": "Новая задача",
		"pt": "Nova tarefa",
		"es": "Nueva tarea",
	},
	"Settings": {
		"ru": "Настройки",
		"pt": "Configurações",
		"es": "Ajustes",
	},
	"Preferences": {
		"ru": "Настройки",
		"pt": "Preferências",
		"es": "Preferencias",
	},
	"Quit": {
		"ru": "Выход",
		"pt": "Sair",
		"es": "Salir",
	},
	"Save": {
		"ru": "Сохранить",
		"pt": "Salvar",
		"es": "Guardar",
	},
	"Cancel": {
		"ru": "Отмена",
		"pt": "Cancelar",
		"es": "Cancelar",
	},
	"Sound": {
		"ru": "Звук",
		"pt": "Som",
		"es": "Sonido",
	},
	"Start at login": {
		"ru": "Запускать при входе",
		"pt": "Iniciar com o sistema",
		"es": "Iniciar al arrancar",
	},
	"Focus length": {
		"ru": "Длительность фокуса",
		"pt": "Duração do foco",
		"es": "Duración del enfoque",
	},
	"Short break length": {
		"ru": "Короткий перерыв",
		"pt": "Pausa curta",
		"es": "Descanso corto",
	},
	"Long break length": {
		"ru": "Длинный перерыв",
		"pt": "Pausa longa",
		"es": "Descanso largo",
	},
	"Long break every": {
		"ru": "Длинный перерыв каждые",
		"pt": "Pausa longa a cada",
		"es": "Descanso largo cada",
	},
	"Status: %s": {
		"ru": "Статус: %s",
		"pt": "Estado: %s",
		"es": "Estado: %s",
	},
	"Delete": {
		"ru": "Удалить",
		"pt": "Excluir",
		"es": "Eliminar",
	},
	"%d open": {
		"ru": "Открыто: %d",
		"pt": "%d abertas",
		"es": "%d abiertas",
	},
	"paused": {
		"ru": "пауза",
		"pt": "pausado",
		"es": "en pausa",
	},
	"No tasks yet": {
		"ru": "Задач пока нет",
		"pt": "Nenhuma tarefa ainda",
		"es": "Aún no hay tareas",
	},
}

func init() {
	SetLang(Detect())
}

// Detect picks the language from POMOTASK_LANG or the system locale,
// falling back to English.
func Detect() string {
	if forced := strings.TrimSpace(os.Getenv(EnvLang)); forced != "" {
		return forced
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Printf("i18n: could not get user locale, defaulting to english: %v", err)
		return "en"
	}
	for _, userLocale := range userLocales {
		if matched := match(userLocale); matched != "" {
			return matched
		}
	}
	return "en"
}

// SetLang switches the active language. Unknown languages fall back to English.
func SetLang(value string) {
	matched := match(value)
	if matched == "" {
		matched = "en"
	}
	mu.Lock()
	lang = matched
	mu.Unlock()
}

// Lang returns the active language code.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T returns key in the active language, or key itself when untranslated.
func T(key string) string {
	current := Lang()
	if translated, ok := translations[key][current]; ok {
		return translated
	}
	return key
}

func match(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(value, "en") {
		return "en"
	}
	for _, code := range supported {
		if strings.HasPrefix(value, code) {
			return code
		}
	}
	return ""
}
