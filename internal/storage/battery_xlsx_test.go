package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"dog-ocean/internal/domain"
)

var xlsxHeader = []any{"Nr.", "Dimension", "Test", "Setting", "Material", "Dauer", "Rolle Figurant", "Bewertungskriterien", "Skala"}

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "bateria.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestImportBatteryXLSX(t *testing.T) {
	path := writeWorkbook(t, "standard", [][]any{
		xlsxHeader,
		{"1", "Offenheit", "Neues Objekt", "Raum", "Regenschirm", "5 min", "keine", "Annäherung", "-2 bis +2"},
		{"", "", "", "", "", "", "", "", ""},
		{"2", "Extraversion", "Fremde Person", "Raum", "keines", "5 min", "passiv stehen", "Kontaktaufnahme", "-2 bis +2"},
	})

	battery, err := ImportBatteryXLSX(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if battery.Name != "standard" {
		t.Fatalf("expected sheet name as battery name, got %q", battery.Name)
	}
	if len(battery.Items) != 2 {
		t.Fatalf("expected 2 tests (empty row skipped), got %d", len(battery.Items))
	}

	item, ok := battery.ItemByNumber(2)
	if !ok || item.Dimension != domain.DimensionExtraversion || item.RoleFigurant != "passiv stehen" {
		t.Fatalf("unexpected item: %+v ok=%v", item, ok)
	}
}

func TestImportBatteryXLSX_ShortRowsArePadded(t *testing.T) {
	// El workbook recorta celdas vacias al final; la fila se completa con
	// strings vacios en vez de fallar.
	path := writeWorkbook(t, "standard", [][]any{
		xlsxHeader,
		{"1", "Offenheit", "Neues Objekt"},
	})

	battery, err := ImportBatteryXLSX(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, ok := battery.ItemByNumber(1)
	if !ok || item.Setting != "" || item.RatingScale != "" {
		t.Fatalf("unexpected item: %+v ok=%v", item, ok)
	}
}

func TestImportBatteryXLSX_UnknownDimensionFailsWithContext(t *testing.T) {
	path := writeWorkbook(t, "standard", [][]any{
		xlsxHeader,
		{"1", "Mut", "Neues Objekt", "Raum", "keines", "5 min", "keine", "x", "-2 bis +2"},
	})

	_, err := ImportBatteryXLSX(path, "")
	if err == nil {
		t.Fatal("expected error for unknown dimension")
	}
	if !strings.Contains(err.Error(), "row 2") || !strings.Contains(err.Error(), "Mut") {
		t.Fatalf("expected row and label in error, got %v", err)
	}
}

func TestImportBatteryXLSX_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, "standard", [][]any{
		xlsxHeader,
		{"1", "Offenheit", "Neues Objekt", "", "", "", "", "", ""},
	})

	if _, err := ImportBatteryXLSX(path, "welpen"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestImportBatteryFile_DispatchesByExtension(t *testing.T) {
	path := writeWorkbook(t, "welpen", [][]any{
		xlsxHeader,
		{"1", "Neurotizismus", "Geräuschtest", "Raum", "Hupe", "3 min", "keine", "Reaktion", "-2 bis +2"},
	})

	battery, err := ImportBatteryFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if battery.Name != "welpen" || len(battery.Items) != 1 {
		t.Fatalf("unexpected battery: %+v", battery)
	}
}

func TestSheetNames(t *testing.T) {
	path := writeWorkbook(t, "standard", [][]any{
		xlsxHeader,
		{"1", "Offenheit", "Neues Objekt", "", "", "", "", "", ""},
	})

	names, err := SheetNames(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "standard" {
		t.Fatalf("unexpected sheet names: %v", names)
	}
}
