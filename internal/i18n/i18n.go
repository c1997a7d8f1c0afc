// i18n: переводы из встроенных JSON (en, ar); вложенные таблицы, ключи через точку.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed locales/en.json locales/ar.json
var localeFS embed.FS

var (
	mu    sync.RWMutex
	packs = make(map[string]map[string]any) // язык -> вложенная таблица строк
)

// Поддерживаемые языки (только эти; ar — единственный RTL).
const (
	LangEN = "en"
	LangAR = "ar"

	DefaultLang = LangEN
)

// Supported возвращает true только для en и ar.
func Supported(lang string) bool {
	return lang == LangEN || lang == LangAR
}

// IsRTL — true только для арабского; всегда вычисляется, нигде не хранится.
func IsRTL(lang string) bool { return lang == LangAR }

// Direction возвращает "rtl" для ar и "ltr" для всех остальных.
func Direction(lang string) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

// Load загружает встроенные JSON по каждому языку; при ошибке чтения или
// разбора язык получает запасную таблицу (сервис стартует всегда).
func Load() error {
	mu.Lock()
	defer mu.Unlock()
	for _, lang := range []string{LangEN, LangAR} {
		data, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			packs[lang] = defaultMessages()
			continue
		}
		var table map[string]any
		if err := json.Unmarshal(data, &table); err != nil {
			packs[lang] = defaultMessages()
			continue
		}
		packs[lang] = table
	}
	return nil
}

// defaultMessages — запасные сообщения при отсутствии или ошибке JSON.
func defaultMessages() map[string]any {
	return map[string]any{
		"errors": map[string]any{
			"unauthorized": "unauthorized",
			"forbidden":    "forbidden",
			"bad_request":  "bad request",
			"internal":     "internal server error",
		},
		"ok": "ok",
	}
}

// Resolve возвращает строку по ключу вида "dashboard.title" для языка lang.
// Любой отсутствующий сегмент, не-таблица по пути или не-строка в листе —
// fail open: возвращается сам ключ, без ошибок и nil. Плейсхолдеры {name}
// заменяются значениями из params (все вхождения); неизвестные остаются как есть.
func Resolve(lang, key string, params map[string]any) string {
	mu.RLock()
	table := packs[lang]
	mu.RUnlock()
	if table == nil {
		return key
	}

	leaf, ok := lookup(table, key)
	if !ok {
		return key
	}
	return substitute(leaf, params)
}

// T — сокращение для Resolve без параметров (сообщения ответов API).
func T(lang, key string) string {
	return Resolve(lang, key, nil)
}

// lookup спускается по таблице по сегментам ключа; успех только если лист — строка.
func lookup(table map[string]any, key string) (string, bool) {
	node := any(table)
	for _, seg := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[seg]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// substitute заменяет все вхождения {name} на строковое значение параметра.
func substitute(s string, params map[string]any) string {
	if len(params) == 0 {
		return s
	}
	for name, value := range params {
		s = strings.ReplaceAll(s, "{"+name+"}", fmt.Sprint(value))
	}
	return s
}

// Table возвращает копию всей таблицы языка (для гидратации фронта через /translations).
func Table(lang string) map[string]any {
	mu.RLock()
	defer mu.RUnlock()
	table, ok := packs[lang]
	if !ok {
		return map[string]any{}
	}
	return copyTable(table)
}

func copyTable(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			out[k] = copyTable(m)
			continue
		}
		out[k] = v
	}
	return out
}
