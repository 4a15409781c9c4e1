package httpd

import "strings"

// Header maps field names to a single value. Keys are kept as received;
// lookups fall back to a case-insensitive match.
type Header map[string]string

func (h Header) Get(key string) string {
	v, _ := h.Lookup(key)
	return v
}

// Lookup reports the value for key, preferring an exact key match.
func (h Header) Lookup(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	if v, ok := h[key]; ok {
		return v, true
	}
	for k, v := range h {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Set replaces every case variant of key with a single entry.
func (h Header) Set(key, value string) {
	if h == nil {
		return
	}
	h.Del(key)
	h[key] = value
}

func (h Header) Del(key string) {
	if h == nil {
		return
	}
	for k := range h {
		if strings.EqualFold(k, key) {
			delete(h, k)
		}
	}
}
