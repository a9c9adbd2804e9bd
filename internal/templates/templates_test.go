package templates

import "testing"

func TestBrandsAreDistinct(t *testing.T) {
	brands := Brands()
	if len(brands) == 0 {
		t.Fatal("catalog should not be empty")
	}
	seen := map[string]bool{}
	for _, b := range brands {
		if seen[b] {
			t.Fatalf("brand %q listed twice", b)
		}
		seen[b] = true
	}
	if brands[0] != "Apple" {
		t.Fatalf("catalog order changed, first brand = %q", brands[0])
	}
}

func TestModelsForBrand(t *testing.T) {
	models := ModelsForBrand("Samsung")
	if len(models) == 0 {
		t.Fatal("Samsung should have models")
	}
	for _, m := range models {
		if m == "" {
			t.Fatal("empty model name in catalog")
		}
	}
	if got := ModelsForBrand("Nokia"); len(got) != 0 {
		t.Fatalf("unknown brand should have no models, got %v", got)
	}
}

func TestCommonIssues(t *testing.T) {
	issues := CommonIssues("Apple", "iPhone 13")
	if len(issues) == 0 {
		t.Fatal("iPhone 13 should have common issues")
	}

	// Unknown pairs return an empty, non-nil list.
	got := CommonIssues("Apple", "iPhone 1")
	if got == nil || len(got) != 0 {
		t.Fatalf("unknown model should return empty list, got %v", got)
	}
}
