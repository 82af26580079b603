package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"dog-ocean/internal/domain"
)

// ImportBatteryXLSX importa una bateria desde un workbook xlsx (el formato
// nativo de la planilla del colaborador). sheetName vacio usa la primera hoja;
// el nombre de la hoja es el nombre de la bateria. La fila 1 es header; filas
// con la celda de numero vacia se saltean.
func ImportBatteryXLSX(path, sheetName string) (*domain.TestBattery, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("battery import: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("battery import: sheet %q: %w", sheetName, err)
	}

	var items []domain.TestItem
	for i, row := range rows {
		rowIdx := i + 1
		if rowIdx == 1 {
			continue // header
		}
		if len(row) == 0 || strings.TrimSpace(row[colNumber]) == "" {
			continue
		}

		// Celdas vacias al final de la fila vienen recortadas; se rellenan
		// como strings vacios, igual que las celdas None del workbook.
		item, err := parseBatteryRow(padRow(row))
		if err != nil {
			return nil, fmt.Errorf("battery import: row %d: %w", rowIdx, err)
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, errors.New("battery import: no tests found")
	}
	return domain.NewTestBattery(sheetName, items)
}

// SheetNames devuelve las hojas disponibles de un workbook, para que el caller
// pueda elegir cual importar.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("battery import: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func padRow(row []string) []string {
	if len(row) >= batteryColumns {
		return row
	}
	out := make([]string, batteryColumns)
	copy(out, row)
	return out
}
