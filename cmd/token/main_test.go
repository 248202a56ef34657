package main

import "testing"

func TestSplitScopes(t *testing.T) {
	got := splitScopes(" tax.calculate, ,mortgage.calculate,")
	if len(got) != 2 || got[0] != "tax.calculate" || got[1] != "mortgage.calculate" {
		t.Fatalf("unexpected scopes: %v", got)
	}
	if got := splitScopes(""); len(got) != 0 {
		t.Fatalf("expected no scopes, got %v", got)
	}
}
