package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var Locales embed.FS

// Keys under which the request language and the service live on a gin context.
const (
	LanguageContextKey = "language"
	ServiceContextKey  = "i18n_service"
)

// Service resolves message keys into localized text.
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	defaultLanguage string
}

// NewService loads every locales/*.json file found in fsys.
func NewService(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "locales/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = messages
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// NewDefault loads the catalogs embedded in the binary.
func NewDefault(defaultLang string) (*Service, error) {
	return NewService(Locales, defaultLang)
}

// T translates key into lang, falling back to the default language and then
// to the key itself. Params are applied as a text/template ({{.Field}}).
func (s *Service) T(lang, key string, params ...map[string]any) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.lookup(lang, key)
	if message == "" {
		message = s.lookup(s.defaultLanguage, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) string {
	if messages, ok := s.translations[lang]; ok {
		return messages[key]
	}
	return ""
}

func (s *Service) DefaultLanguage() string {
	return s.defaultLanguage
}

func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}

// BestMatch picks the first supported language in an Accept-Language header.
// "en-US,ru;q=0.8" -> "en" when only the base language is available.
func (s *Service) BestMatch(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		lang := strings.TrimSpace(part)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if lang == "" {
			continue
		}
		if s.IsLanguageSupported(lang) {
			return lang
		}
		if idx := strings.Index(lang, "-"); idx != -1 && s.IsLanguageSupported(lang[:idx]) {
			return lang[:idx]
		}
	}
	return ""
}
