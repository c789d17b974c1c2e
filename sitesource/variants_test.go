package sitesource

import "testing"

func TestIncludeVariantNoFilterPassesEverything(t *testing.T) {
	if !IncludeVariant(nil, false, "rs1", "rs2") {
		t.Fatal("with no set configured, every variant should pass")
	}
}

func TestIncludeVariantSetMembership(t *testing.T) {
	set := setFromList([]string{"rs1", "rs2"})
	if !IncludeVariant(set, true, "rsTarget", "rs1") {
		t.Error("rs1 is in the set and should pass")
	}
	if IncludeVariant(set, true, "rsTarget", "rs3") {
		t.Error("rs3 is neither in the set nor the target and should not pass")
	}
	if !IncludeVariant(set, true, "rs3", "rs3") {
		t.Error("rs3 equals the target and should pass even though it is not in the set")
	}
}

func TestSetFromListTrimsAndDropsEmpty(t *testing.T) {
	set := setFromList([]string{" rs1 ", "", "rs2", "  "})
	if len(set) != 2 {
		t.Fatalf("len(set) = %d, want 2", len(set))
	}
	if !set["rs1"] || !set["rs2"] {
		t.Errorf("set = %v, want rs1 and rs2 present", set)
	}
}
