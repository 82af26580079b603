package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dog-ocean/internal/domain"
)

// ErrSessionNotFound indica que no existe registro para el ID pedido.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persiste sesiones como registros planos. El core nunca borra
// sesiones; eso es asunto del filesystem de la capa excluida.
type SessionStore interface {
	Save(session *domain.TestSession) error
	Load(id string) (*domain.TestSession, error)
	List() ([]string, error)
}

// FileSessionStore guarda un registro JSON por sesion en un directorio.
type FileSessionStore struct {
	dir string
}

// NewFileSessionStore crea el store y asegura el directorio de datos.
func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileSessionStore{dir: dir}, nil
}

func (s *FileSessionStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save escribe el registro de la sesion. Escritura a archivo temporal y
// rename para no dejar registros a medias ante un corte.
func (s *FileSessionStore) Save(session *domain.TestSession) error {
	if session == nil || strings.TrimSpace(session.ID) == "" {
		return errors.New("session must have an id")
	}
	data, err := EncodeSession(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	tmp := s.path(session.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write session %s: %w", session.ID, err)
	}
	if err := os.Rename(tmp, s.path(session.ID)); err != nil {
		return fmt.Errorf("write session %s: %w", session.ID, err)
	}
	return nil
}

// Load lee y decodifica el registro de una sesion.
func (s *FileSessionStore) Load(id string) (*domain.TestSession, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("read session %s: %w", id, err)
	}
	session, err := DecodeSession(data)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	if session.ID == "" {
		session.ID = id
	}
	return session, nil
}

// List devuelve los IDs de todas las sesiones guardadas, ordenados.
func (s *FileSessionStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
