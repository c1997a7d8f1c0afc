// Package locale — серверная часть языкового состояния браузера: единственный
// ключ хранения (cookie writerai_lang), порядок разрешения query → cookie →
// Accept-Language → en. Направление текста всегда выводится из языка.
package locale

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/writerai/backend/internal/i18n"
)

const (
	// CookieName — единственный ключ, под которым хранится выбранный язык.
	CookieName = "writerai_lang"
	// QueryParam — ?lang=ar переключает язык и персистится в cookie.
	QueryParam = "lang"

	cookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

var matchTags = []language.Tag{language.English, language.Arabic} // порядок = приоритет
var matchLangs = []string{i18n.LangEN, i18n.LangAR}
var matcher = language.NewMatcher(matchTags)

// Resolve определяет язык запроса. Второй результат — true, если язык пришёл
// из query-параметра и его нужно записать в cookie. Нераспознанные значения
// пропускаются молча (остаёмся на предыдущем источнике, без ошибок).
func Resolve(r *http.Request) (string, bool) {
	if r == nil {
		return i18n.DefaultLang, false
	}

	if v := strings.TrimSpace(r.URL.Query().Get(QueryParam)); i18n.Supported(v) {
		return v, true
	}

	if c, err := r.Cookie(CookieName); err == nil && i18n.Supported(c.Value) {
		return c.Value, false
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if lang, ok := matchAccept(accept); ok {
			return lang, false
		}
	}

	return i18n.DefaultLang, false
}

// matchAccept сопоставляет Accept-Language с en/ar через x/text.
func matchAccept(header string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return matchLangs[idx], true
}

// SetCookie персистит выбранный язык (один год, SameSite=Lax, доступна скрипту —
// клиент читает её для первичного рендера).
func SetCookie(w http.ResponseWriter, lang string, secure bool) {
	if !i18n.Supported(lang) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
