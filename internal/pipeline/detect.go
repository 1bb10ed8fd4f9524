package pipeline

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"icptargets/internal"
)

var hostValidate = validator.New()

// ClassifyHost reports what kind of target a value looks like.
func ClassifyHost(value string) internal.HostKind {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return internal.HostOther
	case hostValidate.Var(v, "ip") == nil:
		return internal.HostIP
	case hostValidate.Var(v, "cidr") == nil:
		return internal.HostCIDR
	case hostValidate.Var(v, "fqdn") == nil:
		return internal.HostDomain
	default:
		return internal.HostOther
	}
}

// CountHosts classifies every value once and also returns the values that are
// neither a domain, an IP nor a CIDR.
func CountHosts(values []string) (internal.HostStats, []string) {
	stats := internal.HostStats{}
	var other []string
	for _, v := range values {
		kind := ClassifyHost(v)
		stats[kind]++
		if kind == internal.HostOther {
			other = append(other, v)
		}
	}
	return stats, other
}
