package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

// Messages used when the backend supplies none.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgRegistered         = "Registration successful"
)

// API is the part of the backend the store needs.
type API interface {
	Register(ctx context.Context, form models.RegisterForm) (string, error)
	Login(ctx context.Context, email, password string) (client.LoginReply, error)
	AdminLogin(ctx context.Context, email, password string) (client.LoginReply, error)
}

// Result is the outcome of Register and Login.
type Result struct {
	Success bool
	Message string
	User    *models.Session
}

// State is a snapshot of the store. Session is nil when unauthenticated;
// Loading is true until the first Init has finished.
type State struct {
	Loading bool
	Session *models.Session
}

type Store struct {
	api     API
	persist Persister
	log     logging.Logger

	// writeMu serialises transitions; mu guards the fields below it.
	writeMu sync.Mutex

	mu       sync.RWMutex
	loading  bool
	session  *models.Session
	lastRole string

	readyOnce sync.Once
	ready     chan struct{}
}

func NewStore(api API, persist Persister, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		api:     api,
		persist: persist,
		log:     log,
		loading: true,
		ready:   make(chan struct{}),
	}
}

// Ready is closed when the first Init completes.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Init restores the persisted session. A missing, unreadable or corrupt
// value yields no session; a corrupt value is also deleted. Init never fails.
func (s *Store) Init(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	restored := s.restore(ctx)

	role, err := s.persist.LoadRole(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read last known role", "error", err)
		role = ""
	}

	s.mu.Lock()
	s.session = restored
	s.lastRole = role
	s.loading = false
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *Store) restore(ctx context.Context) *models.Session {
	raw, err := s.persist.LoadSession(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted session", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var sess models.Session
	err = json.Unmarshal(raw, &sess)
	if err == nil {
		err = sess.Validate()
	}
	if err == nil {
		return &sess
	}

	s.log.Warn(ctx, "discarding corrupt persisted session", "error", err)
	if err := s.persist.DeleteSession(ctx); err != nil {
		s.log.Warn(ctx, "failed to delete corrupt session", "error", err)
	}
	return nil
}

// State returns a snapshot; the session is a copy.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Loading: s.loading, Session: s.session.Clone()}
}

// Current returns a copy of the active session, or nil.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

// LastRole is the role recorded with the most recent login. It survives a
// corrupt session value and is cleared by Logout.
func (s *Store) LastRole() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRole
}

// Register creates an account. It never changes the session.
func (s *Store) Register(ctx context.Context, form models.RegisterForm) Result {
	msg, err := s.api.Register(ctx, form)
	if err != nil {
		s.log.Warn(ctx, "registration failed", "email", form.Email, "error", err)
		if m := client.ServerMessage(err); m != "" {
			return Result{Message: m}
		}
		return Result{Message: MsgRegistrationFailed}
	}
	if msg == "" {
		msg = MsgRegistered
	}
	return Result{Success: true, Message: msg}
}

func (s *Store) Login(ctx context.Context, email, password string) Result {
	return s.login(ctx, s.api.Login, email, password)
}

// AdminLogin signs in through the admin endpoint. The resulting session is
// held in the same store as any other.
func (s *Store) AdminLogin(ctx context.Context, email, password string) Result {
	return s.login(ctx, s.api.AdminLogin, email, password)
}

type loginFunc func(ctx context.Context, email, password string) (client.LoginReply, error)

func (s *Store) login(ctx context.Context, fn loginFunc, email, password string) Result {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	reply, err := fn(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return Result{Message: MsgLoginFailed}
	}
	if reply.Session == nil {
		s.log.Info(ctx, "login rejected", "email", email, "reason", reply.Rejection)
		if reply.Rejection == "" {
			return Result{Message: MsgLoginFailed}
		}
		return Result{Message: reply.Rejection}
	}

	sess := reply.Session.Clone()
	raw, err := json.Marshal(sess)
	if err == nil {
		err = s.persist.SaveSession(ctx, raw, string(sess.Role))
	}
	if err != nil {
		s.log.Error(ctx, "failed to persist session", "email", email, "error", err)
		return Result{Message: MsgLoginFailed}
	}

	s.mu.Lock()
	s.session = sess
	s.lastRole = string(sess.Role)
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "user_id", sess.ID, "role", sess.Role)
	return Result{Success: true, User: sess.Clone()}
}

// Logout clears the in-memory session unconditionally, then removes the
// persisted copy. The returned error reports only the storage step.
func (s *Store) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.session = nil
	s.lastRole = ""
	s.mu.Unlock()

	if err := s.persist.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted session", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
