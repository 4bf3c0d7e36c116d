package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_LocalesAndFallback(t *testing.T) {
	tr := NewTranslator("pt-BR")

	if got := tr.T("pt-BR", "push.reminder.title", nil); got != "Evento hoje na igreja" {
		t.Fatalf("pt-BR: got %q", got)
	}
	if got := tr.T("en", "push.reminder.title", nil); got != "Church event today" {
		t.Fatalf("en: got %q", got)
	}
	// Unknown locale falls back to the default.
	if got := tr.T("fr", "push.reminder.title", nil); got != "Evento hoje na igreja" {
		t.Fatalf("fallback: got %q", got)
	}
	// Unknown key falls back to the key itself.
	if got := tr.T("pt-BR", "api.chave.inexistente", nil); got != "api.chave.inexistente" {
		t.Fatalf("missing key: got %q", got)
	}
}

func TestTranslator_TemplateData(t *testing.T) {
	tr := NewTranslator("pt-BR")

	got := tr.T("pt-BR", "push.reminder.body", map[string]any{
		"Title": "Culto de Celebração",
		"Start": "19:00",
		"Place": "Salão Principal",
	})
	for _, want := range []string{"Culto de Celebração", "19:00", "Salão Principal"} {
		if !strings.Contains(got, want) {
			t.Fatalf("body %q missing %q", got, want)
		}
	}
}
