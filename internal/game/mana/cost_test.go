package mana

import "testing"

func TestParseCost_Simple(t *testing.T) {
	cost, err := ParseCost("{1}{G}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.Generic != 1 || cost.Green != 1 {
		t.Errorf("expected {1}{G}, got %+v", cost)
	}
	if cost.ConvertedCost() != 2 {
		t.Errorf("expected converted cost 2, got %d", cost.ConvertedCost())
	}
}

func TestParseCost_Repeated(t *testing.T) {
	cost, err := ParseCost("{2}{R}{R}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.Generic != 2 || cost.Red != 2 {
		t.Errorf("expected {2}{R}{R}, got %+v", cost)
	}
}

func TestParseCost_Colorless(t *testing.T) {
	cost, err := ParseCost("{C}{C}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.Colorless != 2 {
		t.Errorf("expected 2 colorless, got %+v", cost)
	}
}

func TestParseCost_Empty(t *testing.T) {
	cost, err := ParseCost("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cost.IsFree() {
		t.Errorf("empty cost must be free, got %+v", cost)
	}
}

func TestParseCost_Invalid(t *testing.T) {
	for _, bad := range []string{"{Q}", "3G", "{-1}", "{W/U}"} {
		if _, err := ParseCost(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestCost_String(t *testing.T) {
	cost, _ := ParseCost("{3}{W}{W}")
	if got := cost.String(); got != "{3}{W}{W}" {
		t.Errorf("expected {3}{W}{W}, got %s", got)
	}
	if got := (Cost{}).String(); got != "{0}" {
		t.Errorf("expected {0} for free cost, got %s", got)
	}
}
