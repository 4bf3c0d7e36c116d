package output

// T is the minimal i18n contract for user-facing texts (API messages and
// push notifications). data is an optional template-placeholder map.
type T interface {
	T(locale, key string, data map[string]any) string
}
