package knowledge

import "testing"

func TestPartitionLookups(t *testing.T) {
	base := Load()

	t.Run("Crop By Key", func(t *testing.T) {
		c, ok := base.Crop("paddy")
		if !ok {
			t.Fatal("expected paddy entry")
		}
		if c.NameLocal != "धान" {
			t.Errorf("unexpected local name: %s", c.NameLocal)
		}
	})

	t.Run("Unknown Key", func(t *testing.T) {
		if _, ok := base.Pest("unicorn"); ok {
			t.Error("expected no match for unknown key")
		}
	})
}

func TestFindKeys(t *testing.T) {
	base := Load()

	t.Run("Underscored Key Matches Spaced Text", func(t *testing.T) {
		if got := base.FindPestKey("my field has stem borer damage"); got != "stem_borer" {
			t.Errorf("expected stem_borer, got %q", got)
		}
	})

	t.Run("Native Script Synonym", func(t *testing.T) {
		if got := base.FindCropKey("मेरी गेहूं की फसल"); got != "wheat" {
			t.Errorf("expected wheat, got %q", got)
		}
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		if got := base.FindDiseaseKey("Is this BLAST on my paddy?"); got != "blast" {
			t.Errorf("expected blast, got %q", got)
		}
	})

	t.Run("Scheme By Spaced Key With Filler", func(t *testing.T) {
		inputs := []string{
			"tell me about pm kisan",
			"  how do I register for PM Kisan please  ",
			"PM KISAN kya hai",
		}
		for _, in := range inputs {
			if got := base.FindSchemeKey(in); got != "pm_kisan" {
				t.Errorf("input %q: expected pm_kisan, got %q", in, got)
			}
		}
	})

	t.Run("No Match Returns Empty", func(t *testing.T) {
		if got := base.FindSchemeKey("hello there"); got != "" {
			t.Errorf("expected empty key, got %q", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		msg := "cotton bollworm and whitefly together"
		first := base.FindPestKey(msg)
		for i := 0; i < 5; i++ {
			if got := base.FindPestKey(msg); got != first {
				t.Fatalf("lookup not deterministic: %q vs %q", got, first)
			}
		}
	})
}

func TestMatchSymptom(t *testing.T) {
	base := Load()

	t.Run("First Pattern Wins", func(t *testing.T) {
		// "yellow" appears before "spot" in the table
		sp := base.MatchSymptom("yellow spots on leaves")
		if sp.Key != "yellow_leaves" {
			t.Errorf("expected yellow_leaves, got %s", sp.Key)
		}
	})

	t.Run("Devanagari Trigger", func(t *testing.T) {
		sp := base.MatchSymptom("पत्तों पर छेद")
		if sp.Key != "holes_in_leaves" {
			t.Errorf("expected holes_in_leaves, got %s", sp.Key)
		}
	})

	t.Run("Healthy Fallback", func(t *testing.T) {
		sp := base.MatchSymptom("everything looks fine")
		if sp.Key != symptomHealthy {
			t.Errorf("expected healthy fallback, got %s", sp.Key)
		}
		if sp.Response == "" {
			t.Error("healthy fallback must carry a response")
		}
	})
}
