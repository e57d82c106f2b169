package loading

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/growth-dashboard-api/internal/config"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/pkg/utils"
)

var (
	ErrSessionNotFound = errors.New("sessão não encontrada")
	ErrMissingPath     = errors.New("caminho do dataset não configurado")
)

// Sessioner gerencia sessões de dataset. Cada sessão possui sua própria
// cópia dos registros carregados; não há estado compartilhado entre sessões.
type Sessioner interface {
	// Open carrega o dataset do caminho informado (ou do caminho padrão da
	// configuração quando vazio) e cria uma nova sessão.
	Open(path string) (*domain.DatasetSession, error)

	// Get retorna a sessão pelo ID.
	Get(sessionID string) (*domain.DatasetSession, error)

	// Refresh recarrega o dataset da origem da sessão, substituindo o
	// conjunto de registros por inteiro.
	Refresh(sessionID string) (*domain.DatasetSession, error)

	// Close descarta a sessão e seus registros.
	Close(sessionID string) error
}

type Service struct {
	loader dataset.Loader
	cfg    *config.Config

	mu       sync.RWMutex
	sessions map[string]*domain.DatasetSession
}

func NewService(loader dataset.Loader, cfg *config.Config) Sessioner {
	return &Service{
		loader:   loader,
		cfg:      cfg,
		sessions: make(map[string]*domain.DatasetSession),
	}
}

func (s *Service) Open(path string) (*domain.DatasetSession, error) {
	if path == "" {
		path = s.cfg.Dataset.Path
	}

	if path == "" {
		return nil, ErrMissingPath
	}

	customers, err := s.loader.LoadCustomers(path)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	session := &domain.DatasetSession{
		ID:        id,
		Source:    path,
		LoadedAt:  time.Now(),
		Customers: customers,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"session_id":      session.ID,
		"session_source":  session.Source,
		"session_records": session.TotalRecords(),
	}).Info("Sessão de dataset aberta")

	return session, nil
}

func (s *Service) Get(sessionID string) (*domain.DatasetSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrap(ErrSessionNotFound, sessionID)
	}

	return session, nil
}

func (s *Service) Refresh(sessionID string) (*domain.DatasetSession, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}

	customers, err := s.loader.LoadCustomers(session.Source)
	if err != nil {
		// Falha na recarga preserva a sessão com o conjunto anterior
		return nil, err
	}

	refreshed := &domain.DatasetSession{
		ID:        session.ID,
		Source:    session.Source,
		LoadedAt:  time.Now(),
		Customers: customers,
	}

	s.mu.Lock()
	s.sessions[refreshed.ID] = refreshed
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"session_id":      refreshed.ID,
		"session_records": refreshed.TotalRecords(),
	}).Info("Sessão de dataset recarregada")

	return refreshed, nil
}

func (s *Service) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return errors.Wrap(ErrSessionNotFound, sessionID)
	}

	delete(s.sessions, sessionID)

	logrus.WithField("session_id", sessionID).Info("Sessão de dataset encerrada")

	return nil
}
