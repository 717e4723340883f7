package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/session"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del registro de sesiones: ciclo de vida y serialización del acceso
// al editor. Read y Update son los únicos caminos hacia el editor; tocarlo
// fuera de ellos es una carrera de datos.
// ──────────────────────────────────────────────────────────────────────────────

func newTestStore() *session.Store {
	return session.NewStore(logger.Nop(), document.DefaultOptions())
}

func TestStore_CicloDeVida(t *testing.T) {
	st := newTestStore()

	sess, err := st.Create("invoice", nil)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, st.Len())

	err = st.Update(sess.ID, func(s *session.Session) error {
		_, err := s.Editor.AddLine(nil)
		return err
	})
	require.NoError(t, err)

	err = st.Read(sess.ID, func(s *session.Session) error {
		assert.Equal(t, "invoice", s.DocType)
		assert.Len(t, s.Editor.Document().Lines, 1)
		assert.True(t, s.Editor.IsDirty())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, st.Delete(sess.ID))
	assert.Equal(t, 0, st.Len())
	err = st.Read(sess.ID, func(s *session.Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_TipoDesconocido(t *testing.T) {
	st := newTestStore()

	_, err := st.Create("waybill", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
}

// Lecturas y mutaciones concurrentes sobre la misma sesión no deben pisarse:
// Update muta bajo el lock de escritura y Read consulta bajo el de lectura.
func TestStore_LecturasYMutacionesConcurrentes(t *testing.T) {
	st := newTestStore()
	sess, err := st.Create("invoice", nil)
	require.NoError(t, err)

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			err := st.Update(sess.ID, func(s *session.Session) error {
				if _, err := s.Editor.AddLine(nil); err != nil {
					return err
				}
				return s.Editor.RemoveLine(0)
			})
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			err := st.Read(sess.ID, func(s *session.Session) error {
				doc := s.Editor.Document()
				assert.False(t, doc.Totals.Total.IsNegative())
				_ = s.Editor.IsDirty()
				return nil
			})
			assert.NoError(t, err)
		}
	}()

	wg.Wait()

	err = st.Read(sess.ID, func(s *session.Session) error {
		assert.Empty(t, s.Editor.Document().Lines)
		return nil
	})
	require.NoError(t, err)
}
