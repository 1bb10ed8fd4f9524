package internal

// OrganizationRecord is one report row: an organization and its unique domains/IPs.
type OrganizationRecord struct {
	Organization string
	DomainsIPs   []string
}

type SkipReason string

const (
	SkipNameMismatch   SkipReason = "name_mismatch"
	SkipSheetNotFound  SkipReason = "sheet_not_found"
	SkipColumnNotFound SkipReason = "column_not_found"
	SkipNoValues       SkipReason = "no_values"
	SkipReadError      SkipReason = "read_error"
)

// SkipReasons lists every SkipReason in reporting order.
var SkipReasons = []SkipReason{
	SkipNameMismatch,
	SkipSheetNotFound,
	SkipColumnNotFound,
	SkipNoValues,
	SkipReadError,
}

type HostKind string

const (
	HostDomain HostKind = "domain"
	HostIP     HostKind = "ip"
	HostCIDR   HostKind = "cidr"
	HostOther  HostKind = "other"
)

type HostStats map[HostKind]int
