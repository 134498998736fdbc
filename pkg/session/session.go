// Package session identifies storefront visitors and keeps their mounted product feeds.
//
// Visitor identity and language live in a signed cookie, feeds live in memory
// in the Registry and are unmounted after staying unused for the idle timeout.
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/umputun/storefront/pkg/i18n"
)

const (
	keyVisitor = "visitor_id"
	keyLang    = "lang"
)

type ctxKey struct{}

// Visitor is the identity of a storefront visitor
type Visitor struct {
	ID    string
	Lang  string
	IsNew bool
}

// Params for the session manager
type Params struct {
	Secret      string // signing secret, random when empty so sessions do not survive restart
	Name        string
	MaxAge      time.Duration
	Secure      bool
	DefaultLang string
}

// Manager reads and writes visitor cookies
type Manager struct {
	store       *sessions.CookieStore
	name        string
	defaultLang string
}

// NewManager makes a session manager
func NewManager(params Params) *Manager {
	if params.Name == "" {
		params.Name = "storefront"
	}
	if params.MaxAge <= 0 {
		params.MaxAge = 30 * 24 * time.Hour
	}
	params.DefaultLang = i18n.Normalize(params.DefaultLang, i18n.English)
	secret := params.Secret
	if secret == "" {
		lgr.Printf("[WARN] session secret is not set, using random one")
		secret = uuid.NewString() + uuid.NewString()
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   params.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(params.MaxAge.Seconds()))

	return &Manager{store: store, name: params.Name, defaultLang: params.DefaultLang}
}

// Visitor returns the visitor of the request, a new visitor gets an id and a cookie.
// Language of a new visitor is taken from Accept-Language.
func (m *Manager) Visitor(w http.ResponseWriter, r *http.Request) (Visitor, error) {
	sess := m.get(r)

	id, _ := sess.Values[keyVisitor].(string)
	lang, _ := sess.Values[keyLang].(string)
	if id != "" && i18n.Supported(lang) {
		return Visitor{ID: id, Lang: lang}, nil
	}

	if id == "" {
		id = uuid.NewString()
	}
	lang = i18n.FromAcceptLanguage(r.Header.Get("Accept-Language"), m.defaultLang)
	sess.Values[keyVisitor], sess.Values[keyLang] = id, lang
	if err := sess.Save(r, w); err != nil {
		return Visitor{}, fmt.Errorf("save session: %w", err)
	}
	return Visitor{ID: id, Lang: lang, IsNew: true}, nil
}

// SetLang stores the visitor language, unsupported languages are rejected
func (m *Manager) SetLang(w http.ResponseWriter, r *http.Request, lang string) error {
	if !i18n.Supported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	sess := m.get(r)
	if id, _ := sess.Values[keyVisitor].(string); id == "" {
		sess.Values[keyVisitor] = uuid.NewString()
	}
	sess.Values[keyLang] = lang
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Middleware resolves the visitor and puts it into the request context
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := m.Visitor(w, r)
		if err != nil {
			lgr.Printf("[WARN] failed to resolve visitor: %v", err)
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
		if v.IsNew {
			lgr.Printf("[DEBUG] new visitor %s, lang %s", v.ID, v.Lang)
		}
		next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), v)))
	})
}

// get returns the request session, a broken or forged cookie gives a fresh one
func (m *Manager) get(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		lgr.Printf("[DEBUG] can't decode session cookie, starting new session: %v", err)
	}
	if sess == nil {
		sess = sessions.NewSession(m.store, m.name)
		sess.Options = m.store.Options
	}
	if sess.Values == nil {
		sess.Values = map[any]any{}
	}
	return sess
}

// WithVisitor returns a context carrying the visitor
func WithVisitor(ctx context.Context, v Visitor) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}

// FromContext returns the visitor stored by Middleware
func FromContext(ctx context.Context) (Visitor, bool) {
	v, ok := ctx.Value(ctxKey{}).(Visitor)
	return v, ok
}
