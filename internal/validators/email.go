package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid comprueba que el dominio del correo existe de
// verdad: primero registros MX y, si no hay, al menos una dirección.
// No valida el buzón, solo descarta dominios inventados.
func IsEmailDomainValid(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}
