package probe

import "testing"

func TestClassifyDNS_InvalidNames(t *testing.T) {
	cases := []string{"", "   ", "http://example.com"}
	for _, host := range cases {
		if got := ClassifyDNS(host); got != "INVALID_NAME" {
			t.Fatalf("ClassifyDNS(%q): want INVALID_NAME, got %s", host, got)
		}
	}
}

func TestClassifyDNS_LiteralResolves(t *testing.T) {
	// IP literals never hit the network.
	if got := ClassifyDNS("127.0.0.1"); got != "RESOLVES" {
		t.Fatalf("want RESOLVES, got %s", got)
	}
}
