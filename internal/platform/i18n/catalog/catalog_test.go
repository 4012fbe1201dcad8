package catalog

import (
	"strings"
	"testing"
	"testing/fstest"
)

// TestDefaultBundleLocales ensures the embedded bundle ships the base and
// Russian locales.
func TestDefaultBundleLocales(t *testing.T) {
	bundle := Default()
	if bundle == nil {
		t.Fatal("expected default bundle, got nil")
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %q in default bundle", BaseLocale)
	}
	if !bundle.HasLocale("ru-RU") {
		t.Fatal("expected ru-RU locale in default bundle")
	}
}

// TestDefaultBundleNamespaces ensures every embedded locale defines the same
// namespaces.
func TestDefaultBundleNamespaces(t *testing.T) {
	bundle := Default()
	want := []string{"cpa", "errors", "health", "performance", "report", "scenarios"}

	for _, locale := range bundle.Locales() {
		got := bundle.Namespaces(locale)
		if len(got) != len(want) {
			t.Fatalf("locale %s: expected %d namespaces, got %d (%v)", locale, len(want), len(got), got)
		}
		for i, namespace := range want {
			if got[i] != namespace {
				t.Fatalf("locale %s: expected namespace %q at %d, got %q", locale, namespace, i, got[i])
			}
		}
	}
}

// TestDefaultBundleLocalesShareKeys ensures ru-RU translates every base key.
func TestDefaultBundleLocalesShareKeys(t *testing.T) {
	bundle := Default()
	base := bundle.LocaleMessages(BaseLocale)
	russian := bundle.LocaleMessages("ru-RU")

	if len(base) == 0 {
		t.Fatal("expected base locale messages, got none")
	}
	if len(base) != len(russian) {
		t.Fatalf("expected ru-RU to carry %d keys, got %d", len(base), len(russian))
	}
	for key := range base {
		if _, ok := russian[key]; !ok {
			t.Fatalf("expected ru-RU translation for key %q", key)
		}
	}
}

// TestMessageFallsBackToBaseLocale ensures unknown locales resolve through the
// base locale.
func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle := Default()

	baseValue, ok := bundle.Message(BaseLocale, "health.recommendation.lower_bids")
	if !ok {
		t.Fatal("expected base locale message for health.recommendation.lower_bids")
	}
	fallbackValue, ok := bundle.Message("fr-FR", "health.recommendation.lower_bids")
	if !ok {
		t.Fatal("expected fallback message for unknown locale")
	}
	if fallbackValue != baseValue {
		t.Fatalf("expected fallback %q, got %q", baseValue, fallbackValue)
	}

	if _, ok := bundle.Message(BaseLocale, "health.recommendation.unmapped"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
	if _, ok := bundle.Message(BaseLocale, ""); ok {
		t.Fatal("expected blank key lookup to fail")
	}
}

// TestNamespaceMessagesWithFallback ensures namespace lookups report which
// locale satisfied them.
func TestNamespaceMessagesWithFallback(t *testing.T) {
	bundle := Default()

	locale, messages := bundle.NamespaceMessagesWithFallback("ru-RU", "errors")
	if locale != "ru-RU" {
		t.Fatalf("expected ru-RU lookup, got %q", locale)
	}
	if len(messages) == 0 {
		t.Fatal("expected ru-RU error messages, got none")
	}

	locale, messages = bundle.NamespaceMessagesWithFallback("fr-FR", "errors")
	if locale != BaseLocale {
		t.Fatalf("expected fallback locale %q, got %q", BaseLocale, locale)
	}
	if len(messages) == 0 {
		t.Fatal("expected fallback error messages, got none")
	}
}

// TestRenderMessage ensures template execution, base-locale fallback, and
// the unknown-key degradation.
func TestRenderMessage(t *testing.T) {
	bundle := Default()

	got := bundle.RenderMessage("ru-RU", "health.alert.no_conversions",
		map[string]string{"Clicks": "60"})
	want := "⚠️ 60 кликов, 0 конверсий"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got = bundle.RenderMessage("fr-FR", "health.alert.no_conversions",
		map[string]string{"Clicks": "60"})
	want = "⚠️ 60 clicks, 0 conversions"
	if got != want {
		t.Fatalf("expected fallback %q, got %q", want, got)
	}

	if got := bundle.RenderMessage(BaseLocale, "health.alert.unmapped", nil); got != "health.alert.unmapped" {
		t.Fatalf("expected unknown key to render as itself, got %q", got)
	}
}

// TestLoadFromFS ensures a minimal catalog filesystem loads and registers.
func TestLoadFromFS(t *testing.T) {
	catalogFS := fstest.MapFS{
		"locales/en-US/health.yaml": &fstest.MapFile{Data: []byte(strings.Join([]string{
			`locale: "en-US"`,
			`namespace: "health"`,
			`messages:`,
			`  "health.status.healthy": "healthy"`,
		}, "\n"))},
		"locales/ru-RU/health.yaml": &fstest.MapFile{Data: []byte(strings.Join([]string{
			`locale: "ru-RU"`,
			`namespace: "health"`,
			`messages:`,
			`  "health.status.healthy": "стабильная"`,
		}, "\n"))},
	}

	bundle, err := LoadFromFS(catalogFS)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if err := bundle.Register(); err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}

	value, ok := bundle.Message("ru-RU", "health.status.healthy")
	if !ok {
		t.Fatal("expected ru-RU message")
	}
	if value != "стабильная" {
		t.Fatalf("expected %q, got %q", "стабильная", value)
	}
}

// TestLoadFromFSRejectsInvalidCatalogs ensures malformed catalog files fail
// loading with a clear error.
func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	base := `locale: "en-US"
namespace: "health"
messages:
  "health.status.healthy": "healthy"`

	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "no catalog files",
			files:   map[string]string{},
			wantErr: "no catalog files found",
		},
		{
			name: "locale path mismatch",
			files: map[string]string{
				"locales/pt-BR/health.yaml": base,
			},
			wantErr: "must match path locale",
		},
		{
			name: "namespace filename mismatch",
			files: map[string]string{
				"locales/en-US/report.yaml": base,
			},
			wantErr: "must match filename namespace",
		},
		{
			name: "duplicate key across namespaces",
			files: map[string]string{
				"locales/en-US/health.yaml": base,
				"locales/en-US/report.yaml": `locale: "en-US"
namespace: "report"
messages:
  "health.status.healthy": "duplicate"`,
			},
			wantErr: "duplicate key",
		},
		{
			name: "missing base locale",
			files: map[string]string{
				"locales/ru-RU/health.yaml": `locale: "ru-RU"
namespace: "health"
messages:
  "health.status.healthy": "стабильная"`,
			},
			wantErr: "base locale en-US is not defined",
		},
		{
			name: "unquoted message value",
			files: map[string]string{
				"locales/en-US/health.yaml": `locale: "en-US"
namespace: "health"
messages:
  "health.status.healthy": healthy`,
			},
			wantErr: "parse message entry",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			catalogFS := fstest.MapFS{}
			for path, content := range tc.files {
				catalogFS[path] = &fstest.MapFile{Data: []byte(content)}
			}
			_, err := LoadFromFS(catalogFS)
			if err == nil {
				t.Fatal("expected load error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

// TestParseCatalogFile covers the quoted-subset parser directly.
func TestParseCatalogFile(t *testing.T) {
	data := []byte(strings.Join([]string{
		`# demo catalog`,
		`locale: "en-US"`,
		`namespace: "health"`,
		`messages:`,
		`  "health.status.healthy": "healthy: \"stable\""`,
		``,
	}, "\n"))

	parsed, err := parseCatalogFile(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.Locale != "en-US" {
		t.Fatalf("expected locale en-US, got %q", parsed.Locale)
	}
	if parsed.Namespace != "health" {
		t.Fatalf("expected namespace health, got %q", parsed.Namespace)
	}
	want := `healthy: "stable"`
	if parsed.Messages["health.status.healthy"] != want {
		t.Fatalf("expected %q, got %q", want, parsed.Messages["health.status.healthy"])
	}
}
