package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"dog-ocean/internal/domain"
	"dog-ocean/internal/storage"
)

// ErrBatteryNotFound indica que no hay bateria registrada con ese nombre.
var ErrBatteryNotFound = errors.New("battery not found")

// BatteryRegistry mantiene en memoria las baterias conocidas, indexadas por
// nombre. Las sesiones referencian baterias por nombre (clave blanda), asi
// que este registro es el unico punto de resolucion.
type BatteryRegistry struct {
	mu        sync.RWMutex
	batteries map[string]*domain.TestBattery
}

func NewBatteryRegistry() *BatteryRegistry {
	return &BatteryRegistry{batteries: make(map[string]*domain.TestBattery)}
}

// Register agrega o reemplaza una bateria.
func (r *BatteryRegistry) Register(b *domain.TestBattery) {
	if b == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batteries[b.Name] = b
}

// Get resuelve una bateria por nombre.
func (r *BatteryRegistry) Get(name string) (*domain.TestBattery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.batteries[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBatteryNotFound, name)
	}
	return b, nil
}

// Names devuelve los nombres registrados, ordenados.
func (r *BatteryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.batteries))
	for name := range r.batteries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir importa todas las planillas (xlsx o export CSV) de un directorio.
// Archivos invalidos se reportan y se saltean: una planilla rota no debe
// impedir el arranque del servicio.
func (r *BatteryRegistry) LoadDir(dir string, logger *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read battery directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !importableSheet(e.Name()) {
			continue
		}
		battery, err := storage.ImportBatteryFile(filepath.Join(dir, e.Name()))
		if err != nil {
			logger.Warn("skipping invalid battery sheet",
				zap.String("file", e.Name()),
				zap.Error(err),
			)
			continue
		}
		r.Register(battery)
		logger.Info("battery loaded",
			zap.String("name", battery.Name),
			zap.Int("tests", len(battery.Items)),
		)
	}
	return nil
}

func importableSheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx", ".xlsm":
		return true
	}
	return false
}
