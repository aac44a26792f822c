package app

import "testing"

func TestExtract_IDAndDates(t *testing.T) {
	e := Extract("réserver 507f1f77bcf86cd799439011 2024-01-15 2024-01-20")
	if e.PropertyID != "507f1f77bcf86cd799439011" {
		t.Fatalf("id: %q", e.PropertyID)
	}
	if e.CheckIn != "2024-01-15" || e.CheckOut != "2024-01-20" {
		t.Fatalf("dates: %q %q", e.CheckIn, e.CheckOut)
	}
	if !e.Complete() {
		t.Fatalf("expected complete entities")
	}
}

func TestExtract_FirstMatchesOnly(t *testing.T) {
	e := Extract("aaaaaaaaaaaaaaaaaaaaaaaa bbbbbbbbbbbbbbbbbbbbbbbb 2024-01-01 2024-01-02 2024-01-03")
	if e.PropertyID != "aaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("expected first id, got %q", e.PropertyID)
	}
	if e.CheckIn != "2024-01-01" || e.CheckOut != "2024-01-02" {
		t.Fatalf("expected first two dates, got %q %q", e.CheckIn, e.CheckOut)
	}
}

func TestExtract_Partial(t *testing.T) {
	e := Extract("dispo le 2024-03-10 ?")
	if e.PropertyID != "" || e.CheckIn != "2024-03-10" || e.CheckOut != "" {
		t.Fatalf("unexpected entities: %+v", e)
	}
	if e.Complete() {
		t.Fatalf("partial entities must not be complete")
	}
}

func TestExtract_CaseInsensitiveHex(t *testing.T) {
	e := Extract("supprimer 507F1F77BCF86CD799439011")
	if e.PropertyID != "507F1F77BCF86CD799439011" {
		t.Fatalf("id: %q", e.PropertyID)
	}
}

func TestExtract_MalformedDatePassesThrough(t *testing.T) {
	// no calendar validation: 2024-13-45 matches the pattern and is kept
	e := Extract("du 2024-13-45 au 2024-99-99")
	if e.CheckIn != "2024-13-45" || e.CheckOut != "2024-99-99" {
		t.Fatalf("dates: %q %q", e.CheckIn, e.CheckOut)
	}
}
