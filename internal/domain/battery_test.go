package domain

import "testing"

func mustItem(t *testing.T, number int, dim Dimension, name string) TestItem {
	t.Helper()
	item, err := NewTestItem(number, dim, name, "", "", "", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error creating item %d: %v", number, err)
	}
	return item
}

func TestNewTestItem_Validation(t *testing.T) {
	if _, err := NewTestItem(0, DimensionOpenness, "x", "", "", "", "", "", ""); err == nil {
		t.Fatal("expected item number 0 to be rejected")
	}
	if _, err := NewTestItem(1, DimensionOpenness, "  ", "", "", "", "", "", ""); err == nil {
		t.Fatal("expected empty item name to be rejected")
	}
	if _, err := NewTestItem(1, Dimension("Mut"), "x", "", "", "", "", "", ""); err == nil {
		t.Fatal("expected unknown dimension to be rejected")
	}
}

func TestNewTestBattery_Validation(t *testing.T) {
	item := mustItem(t, 1, DimensionOpenness, "objeto nuevo")

	if _, err := NewTestBattery("", []TestItem{item}); err == nil {
		t.Fatal("expected empty battery name to be rejected")
	}
	if _, err := NewTestBattery("b", nil); err == nil {
		t.Fatal("expected empty battery to be rejected")
	}
}

func TestNewTestBattery_RejectsDuplicateNumbers(t *testing.T) {
	items := []TestItem{
		mustItem(t, 1, DimensionOpenness, "objeto nuevo"),
		mustItem(t, 1, DimensionExtraversion, "contacto social"),
	}
	if _, err := NewTestBattery("b", items); err == nil {
		t.Fatal("expected duplicate test number to be rejected")
	}
}

func TestBattery_ItemByNumber(t *testing.T) {
	battery, err := NewTestBattery("b", []TestItem{
		mustItem(t, 1, DimensionOpenness, "objeto nuevo"),
		mustItem(t, 5, DimensionNeuroticism, "ruido subito"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, ok := battery.ItemByNumber(5)
	if !ok || item.Name != "ruido subito" {
		t.Fatalf("expected item 5, got %+v ok=%v", item, ok)
	}
	if _, ok := battery.ItemByNumber(99); ok {
		t.Fatal("expected item 99 to be absent")
	}
}

func TestBattery_ItemsByDimension(t *testing.T) {
	battery, err := NewTestBattery("b", []TestItem{
		mustItem(t, 1, DimensionOpenness, "objeto nuevo"),
		mustItem(t, 2, DimensionOpenness, "superficie rara"),
		mustItem(t, 3, DimensionExtraversion, "contacto social"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(battery.ItemsByDimension(DimensionOpenness)); got != 2 {
		t.Fatalf("expected 2 openness items, got %d", got)
	}
	if got := battery.DimensionItemCount(DimensionNeuroticism); got != 0 {
		t.Fatalf("expected 0 neuroticism items, got %d", got)
	}
}

func TestParseDimension(t *testing.T) {
	for _, dim := range Dimensions() {
		parsed, err := ParseDimension(string(dim))
		if err != nil || parsed != dim {
			t.Fatalf("expected %q to parse, got %v / %v", dim, parsed, err)
		}
	}
	if _, err := ParseDimension("Dominanz"); err == nil {
		t.Fatal("expected unknown label to be rejected")
	}
}

func TestDimensionKeys(t *testing.T) {
	want := []string{"O", "C", "E", "A", "N"}
	for i, dim := range Dimensions() {
		if dim.Key() != want[i] {
			t.Fatalf("expected key %q for %q, got %q", want[i], dim, dim.Key())
		}
	}
}
