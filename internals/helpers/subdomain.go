// file: internals/helpers/subdomain.go
package helper

import (
	"net"
	"regexp"
	"strings"
)

// Subdomínios reservados: nunca resolvem para uma igreja.
// "www" e "admin" roteiam para o plano de controle.
var reservedSubdomains = map[string]bool{
	"www":   true,
	"admin": true,
}

var subdomainRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsReservedSubdomain: true para chaves que sinalizam "sem contexto de tenant".
func IsReservedSubdomain(s string) bool {
	return reservedSubdomains[strings.ToLower(strings.TrimSpace(s))]
}

// IsValidSubdomain valida o formato (minúsculas, dígitos e hífen) antes de
// qualquer lookup no banco.
func IsValidSubdomain(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return false
	}
	return subdomainRe.MatchString(s)
}

// NormalizeSubdomain: comparação é sempre case-insensitive.
func NormalizeSubdomain(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SubdomainFromHost extrai o subdomínio de um Host header.
// Ex.: "graca.minhaigreja.app:443" → "graca". Host raiz, IP ou localhost → "".
func SubdomainFromHost(host, rootDomain string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return ""
	}
	if hostOnly, _, err := net.SplitHostPort(h); err == nil {
		h = hostOnly
	}
	if h == "localhost" || h == "localhost.localdomain" || net.ParseIP(h) != nil {
		return ""
	}
	root := strings.ToLower(strings.TrimSpace(rootDomain))
	if root == "" || h == root {
		return ""
	}
	if !strings.HasSuffix(h, "."+root) {
		return ""
	}
	sub := strings.TrimSuffix(h, "."+root)
	// apenas um nível: "a.b.root" não é tenant
	if strings.Contains(sub, ".") {
		return ""
	}
	return sub
}
