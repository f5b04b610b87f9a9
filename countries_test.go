package phonefield

import "testing"

func TestCatalog(t *testing.T) {
	t.Run("loads a full catalog", func(t *testing.T) {
		all := All()
		if len(all) < 200 {
			t.Fatalf("catalog has %d entries", len(all))
		}
	})

	t.Run("records are complete", func(t *testing.T) {
		for _, c := range All() {
			if len(c.Iso2) != 2 {
				t.Errorf("%q: bad iso2 %q", c.Name, c.Iso2)
			}
			if c.Name == "" || c.DialCode == "" {
				t.Errorf("%q: empty name or dial code", c.Iso2)
			}
			for _, r := range c.DialCode {
				if r < '0' || r > '9' {
					t.Errorf("%s: dial code %q not digits", c.Iso2, c.DialCode)
				}
			}
		}
	})

	t.Run("max digits follows the template", func(t *testing.T) {
		us, _ := ByIso2("US")
		if us.MaxDigits() != 10 {
			t.Errorf("US max digits %d", us.MaxDigits())
		}
	})
}

func TestByIso2(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		for _, code := range []string{"DE", "de", " De "} {
			c, ok := ByIso2(code)
			if !ok || c.DialCode != "49" {
				t.Errorf("lookup %q: ok=%v", code, ok)
			}
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, ok := ByIso2("XX"); ok {
			t.Error("XX should not resolve")
		}
	})
}

func TestByDialCode(t *testing.T) {
	t.Run("plus prefix ignored", func(t *testing.T) {
		a, _ := ByDialCode("+44")
		b, _ := ByDialCode("44")
		if a == nil || b == nil || a.Iso2 != b.Iso2 {
			t.Fatal("dial code with and without '+' should agree")
		}
	})

	t.Run("shared code resolves to primary", func(t *testing.T) {
		c, ok := ByDialCode("1")
		if !ok || c.Iso2 != "US" {
			t.Fatalf("dial 1 resolved to %v", c)
		}
		c, ok = ByDialCode("7")
		if !ok || c.Iso2 != "RU" {
			t.Fatalf("dial 7 resolved to %v", c)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, ok := ByDialCode("999999"); ok {
			t.Error("bogus dial code should not resolve")
		}
	})
}

func TestGuessFromNumber(t *testing.T) {
	cases := []struct {
		raw  string
		iso2 string
	}{
		{"+12025551234", "US"},
		{"+447911123456", "GB"},
		{"+4930123456", "DE"},
		{"+35818800", "FI"},
		{"+18095551234", "DO"}, // 1809 beats the shorter 1
	}

	for _, c := range cases {
		got, ok := GuessFromNumber(c.raw)
		if !ok {
			t.Errorf("%s: no match", c.raw)
			continue
		}
		if got.Iso2 != c.iso2 {
			t.Errorf("%s: got %s, want %s", c.raw, got.Iso2, c.iso2)
		}
	}

	t.Run("no digits", func(t *testing.T) {
		if _, ok := GuessFromNumber("+"); ok {
			t.Error("bare plus should not resolve")
		}
	})
}

func TestSearchCatalog(t *testing.T) {
	t.Run("by name fragment", func(t *testing.T) {
		found := false
		for _, c := range Search("kingdom") {
			if c.Iso2 == "GB" {
				found = true
			}
		}
		if !found {
			t.Error("'kingdom' should find GB")
		}
	})

	t.Run("by dial code", func(t *testing.T) {
		found := false
		for _, c := range Search("+49") {
			if c.Iso2 == "DE" {
				found = true
			}
		}
		if !found {
			t.Error("'+49' should find DE")
		}
	})

	t.Run("empty query returns all", func(t *testing.T) {
		if len(Search("")) != len(All()) {
			t.Error("empty query should return the whole catalog")
		}
	})
}

func TestFlag(t *testing.T) {
	fr, _ := ByIso2("FR")
	if fr.Flag() != "\U0001F1EB\U0001F1F7" {
		t.Errorf("FR flag %q", fr.Flag())
	}
}
