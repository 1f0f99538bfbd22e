package probe

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

var dnsTimeout = 3 * time.Second

// ClassifyDNS resolves the host and names the failure class, so transport
// errors in the run log distinguish dead DNS from dead endpoints.
//
// Classes: RESOLVES, NXDOMAIN, NO_A_RECORD, SERVFAIL_or_TIMEOUT,
// INVALID_NAME.
func ClassifyDNS(host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, "://") {
		return "INVALID_NAME"
	}

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	r := &net.Resolver{}
	ips, err := r.LookupIP(ctx, "ip", host)
	if err == nil && len(ips) > 0 {
		return "RESOLVES"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			// The name may still exist with only NS records.
			if nss, nsErr := r.LookupNS(ctx, host); nsErr == nil && len(nss) > 0 {
				return "NO_A_RECORD"
			}
			return "NXDOMAIN"
		case dnsErr.IsTemporary, dnsErr.IsTimeout:
			return "SERVFAIL_or_TIMEOUT"
		}
	}
	return "SERVFAIL_or_TIMEOUT"
}
