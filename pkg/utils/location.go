package utils

import "strings"

// TrimScheme remove o esquema (ex.: "sqlite://") do início da localização sem diferenciar
// maiúsculas de minúsculas. Retorna false quando a localização não começa com o esquema.
func TrimScheme(location, scheme string) (string, bool) {
	if len(location) < len(scheme) || !strings.EqualFold(location[:len(scheme)], scheme) {
		return location, false
	}
	return location[len(scheme):], true
}
