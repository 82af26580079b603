package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dog-ocean/internal/domain"
)

// Orden fijo de columnas de la planilla de baterias (formato del colaborador).
const (
	colNumber = iota
	colDimension
	colName
	colSetting
	colMaterials
	colDuration
	colFigurant
	colCriteria
	colScale
	batteryColumns
)

// ImportBattery lee una bateria desde una planilla CSV orientada a filas.
// La primera fila es header y se descarta; filas con la celda de numero vacia
// se saltean. Una etiqueta de dimension desconocida es fallo duro de import,
// con fila y valor en el mensaje.
func ImportBattery(r io.Reader, name string) (*domain.TestBattery, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var items []domain.TestItem
	rowIdx := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("battery import: row %d: %w", rowIdx+1, err)
		}
		rowIdx++
		if rowIdx == 1 {
			continue // header
		}
		if len(row) == 0 || strings.TrimSpace(row[colNumber]) == "" {
			continue
		}
		if len(row) < batteryColumns {
			return nil, fmt.Errorf("battery import: row %d: expected %d columns, got %d", rowIdx, batteryColumns, len(row))
		}

		item, err := parseBatteryRow(row)
		if err != nil {
			return nil, fmt.Errorf("battery import: row %d: %w", rowIdx, err)
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, errors.New("battery import: no tests found")
	}
	return domain.NewTestBattery(name, items)
}

func parseBatteryRow(row []string) (domain.TestItem, error) {
	number, err := strconv.Atoi(strings.TrimSpace(row[colNumber]))
	if err != nil {
		return domain.TestItem{}, fmt.Errorf("invalid test number: %q", row[colNumber])
	}

	dim, err := domain.ParseDimension(strings.TrimSpace(row[colDimension]))
	if err != nil {
		return domain.TestItem{}, err
	}

	return domain.NewTestItem(
		number,
		dim,
		strings.TrimSpace(row[colName]),
		strings.TrimSpace(row[colSetting]),
		strings.TrimSpace(row[colMaterials]),
		strings.TrimSpace(row[colDuration]),
		strings.TrimSpace(row[colFigurant]),
		strings.TrimSpace(row[colCriteria]),
		strings.TrimSpace(row[colScale]),
	)
}

// ImportBatteryFile importa una bateria desde un archivo segun su extension:
// workbooks xlsx van por el importador de planillas, cualquier otra cosa se
// lee como CSV con el nombre de la bateria tomado del nombre del archivo.
func ImportBatteryFile(path string) (*domain.TestBattery, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportBatteryXLSX(path, "")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("battery import: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ImportBattery(f, name)
}
