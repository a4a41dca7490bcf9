package nmeadecode

import "testing"

func TestCountryLookup(t *testing.T) {
	code, ok := Country(227006760)
	if !ok || code != "FR" {
		t.Fatalf("Country(227006760) = %q, %v, want FR, true", code, ok)
	}
	name, ok := CountryName(227006760)
	if !ok || name != "France" {
		t.Fatalf("CountryName(227006760) = %q, %v, want France, true", name, ok)
	}
}

func TestCountryLookupUnassigned(t *testing.T) {
	if _, ok := Country(999999999); ok {
		t.Fatal("expected unassigned MID to report false")
	}
}
