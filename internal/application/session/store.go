// Package session administra las sesiones de edición en memoria. Cada sesión
// envuelve un editor (un documento, un escritor); el store serializa el
// acceso para que los handlers HTTP concurrentes no compartan un editor sin
// sincronizar.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/editor"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/entity"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/logger"
)

// Session sesión de edición viva.
type Session struct {
	ID        string
	DocType   string
	Editor    *editor.Editor
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store registro de sesiones en memoria.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     document.CalculatorOptions
	log      *logger.Logger
}

// NewStore construye el store. Las opciones del calculador aplican a todos
// los editores que el store abra.
func NewStore(log *logger.Logger, opts document.CalculatorOptions) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		log:      log.WithComponent("session"),
	}
}

// Create abre una sesión para el tipo de documento dado. Con seed nil la
// sesión empieza con un documento vacío; con seed se siembra desde un
// documento existente.
func (s *Store) Create(docType string, seed *entity.DocumentState) (*Session, error) {
	cfg, err := formconfig.ForType(docType)
	if err != nil {
		return nil, err
	}

	var ed *editor.Editor
	if seed != nil {
		ed = editor.NewFromDocument(cfg, *seed)
	} else {
		ed = editor.New(cfg)
	}
	ed.WithOptions(s.opts)

	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		DocType:   docType,
		Editor:    ed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	docNumber := ""
	if seed != nil {
		docNumber = seed.Header.DocNumber
	}
	s.log.WithDocument(docType, docNumber).Info().Str("session_id", sess.ID).Bool("seeded", seed != nil).Msg("sesión creada")
	return sess, nil
}

// Read ejecuta fn sobre la sesión bajo el lock de lectura. Toda consulta
// del editor pasa por aquí: fuera del lock el editor puede estar siendo
// mutado por Update y leerlo sería una carrera de datos. fn no debe retener
// la sesión ni el editor más allá de su retorno.
func (s *Store) Read(id string, fn func(sess *Session) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	return fn(sess)
}

// Update ejecuta fn sobre la sesión bajo el lock de escritura. Es el único
// camino de mutación: mantiene la invariante de un solo escritor por
// sesión. Igual que en Read, fn no debe retener la sesión ni el editor.
func (s *Store) Update(id string, fn func(sess *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if err := fn(sess); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete cierra la sesión y descarta su estado.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sessions, id)
	s.log.Debug().Str("session_id", id).Msg("sesión cerrada")
	return nil
}

// Len cantidad de sesiones vivas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
