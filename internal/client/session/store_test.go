package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/farmchainx/internal/common"
)

type fakeAPI struct {
	mu sync.Mutex

	registerMsg string
	registerErr error

	loginBody string
	loginErr  error

	adminCalls int
}

func (f *fakeAPI) Register(ctx context.Context, form models.RegisterForm) (string, error) {
	return f.registerMsg, f.registerErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (client.LoginReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return client.LoginReply{}, f.loginErr
	}
	return parse(f.loginBody)
}

func (f *fakeAPI) AdminLogin(ctx context.Context, email, password string) (client.LoginReply, error) {
	f.mu.Lock()
	f.adminCalls++
	f.mu.Unlock()
	return f.Login(ctx, email, password)
}

// parse mirrors the wire contract: a JSON string is a rejection, an object
// is a session.
func parse(body string) (client.LoginReply, error) {
	var s string
	if err := json.Unmarshal([]byte(body), &s); err == nil {
		return client.LoginReply{Rejection: s}, nil
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(body), &sess); err != nil {
		return client.LoginReply{}, err
	}
	return client.LoginReply{Session: &sess}, nil
}

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T, api API) (*Store, *sql.DB) {
	t.Helper()
	db := newDB(t)
	s := NewStore(api, NewSQLitePersister(db), nil)
	s.Init(context.Background())
	return s, db
}

func stored(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	v, err := metadata.NewSQLiteStore(db).Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func TestStore_LoadingUntilInit(t *testing.T) {
	s := NewStore(&fakeAPI{}, NewSQLitePersister(newDB(t)), nil)

	st := s.State()
	assert.True(t, st.Loading)
	assert.Nil(t, st.Session)

	select {
	case <-s.Ready():
		t.Fatal("ready before Init")
	default:
	}

	s.Init(context.Background())
	assert.False(t, s.State().Loading)
	<-s.Ready()
}

func TestStore_LoginWithStringBody(t *testing.T) {
	s, db := newStore(t, &fakeAPI{loginBody: `"Invalid credentials"`})

	res := s.Login(context.Background(), "asha@example.com", "nope")

	assert.Equal(t, Result{Success: false, Message: "Invalid credentials"}, res)
	assert.Nil(t, s.Current())
	assert.Nil(t, stored(t, db, common.StorageKeyUser))
}

func TestStore_LoginWithObjectBody(t *testing.T) {
	s, db := newStore(t, &fakeAPI{loginBody: `{"id":"U1","name":"Asha","role":"FARMER"}`})

	res := s.Login(context.Background(), "asha@example.com", "ok")

	require.True(t, res.Success)
	require.NotNil(t, res.User)
	assert.Equal(t, models.ID("U1"), res.User.ID)

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, *res.User, *cur)

	var persisted models.Session
	require.NoError(t, json.Unmarshal(stored(t, db, common.StorageKeyUser), &persisted))
	assert.Equal(t, *cur, persisted)
	assert.Equal(t, "FARMER", string(stored(t, db, common.StorageKeyRole)))
	assert.Equal(t, "FARMER", s.LastRole())
}

func TestStore_PersistsLoginBodyAsReceived(t *testing.T) {
	for _, body := range []string{
		`{"id":7,"name":"Asha","role":"FARMER"}`,
		`{"id":"U2","name":"Ravi","email":null,"role":"BUYER","farm":{"acres":3}}`,
	} {
		s, db := newStore(t, &fakeAPI{loginBody: body})
		require.True(t, s.Login(context.Background(), "e", "p").Success)

		assert.JSONEq(t, body, string(stored(t, db, common.StorageKeyUser)))
	}
}

func TestStore_PersistRoundTrip(t *testing.T) {
	bodies := []string{
		`{"id":"U1","name":"Asha","role":"FARMER"}`,
		`{"id":17,"name":"Ravi","email":"ravi@example.com","role":"DISTRIBUTOR","phone":"555","blocked":false}`,
		`{"id":"X","role":"SOMETHING_ELSE","address":{"city":"Pune","lines":["a","b"]}}`,
	}

	for _, body := range bodies {
		db := newDB(t)
		first := NewStore(&fakeAPI{loginBody: body}, NewSQLitePersister(db), nil)
		first.Init(context.Background())
		require.True(t, first.Login(context.Background(), "e", "p").Success)

		second := NewStore(&fakeAPI{}, NewSQLitePersister(db), nil)
		second.Init(context.Background())

		require.NotNil(t, second.Current(), body)
		assert.Equal(t, *first.Current(), *second.Current(), body)
	}
}

func TestStore_CorruptStorageIsNoSession(t *testing.T) {
	for _, raw := range []string{`{not json`, `"just a string"`, `{"name":"no id"}`, ``} {
		db := newDB(t)
		require.NoError(t, metadata.NewSQLiteStore(db).Put(context.Background(),
			metadata.Entry{Key: common.StorageKeyUser, Value: []byte(raw)},
			metadata.Entry{Key: common.StorageKeyRole, Value: []byte("BUYER")},
		))

		s := NewStore(&fakeAPI{}, NewSQLitePersister(db), nil)
		s.Init(context.Background())

		st := s.State()
		assert.False(t, st.Loading)
		assert.Nil(t, st.Session, raw)
		assert.Nil(t, stored(t, db, common.StorageKeyUser), raw)
		assert.Equal(t, "BUYER", s.LastRole())
	}
}

func TestStore_FailedLoginLeavesSessionUnchanged(t *testing.T) {
	api := &fakeAPI{loginBody: `{"id":"U1","name":"Asha","role":"FARMER","farm":{"acres":3}}`}
	s, db := newStore(t, api)
	require.True(t, s.Login(context.Background(), "e", "p").Success)

	before, err := json.Marshal(s.Current())
	require.NoError(t, err)
	storedBefore := stored(t, db, common.StorageKeyUser)

	failures := []func(){
		func() { api.loginBody, api.loginErr = `"Invalid credentials"`, nil },
		func() { api.loginErr = client.ErrUnavailable },
		func() { api.loginErr = &client.StatusError{Code: 500} },
	}
	for _, fail := range failures {
		fail()
		res := s.Login(context.Background(), "e", "bad")
		assert.False(t, res.Success)

		after, err := json.Marshal(s.Current())
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
		assert.Equal(t, storedBefore, stored(t, db, common.StorageKeyUser))
	}
}

func TestStore_LoginTransportErrorMessage(t *testing.T) {
	s, _ := newStore(t, &fakeAPI{loginErr: &client.StatusError{Code: 401, Message: "Invalid password"}})
	assert.Equal(t, Result{Message: MsgLoginFailed}, s.Login(context.Background(), "e", "p"))
}

type failingPersister struct {
	*SQLitePersister
}

func (failingPersister) SaveSession(context.Context, []byte, string) error {
	return errors.New("disk full")
}

func TestStore_PersistFailureIsFailedLogin(t *testing.T) {
	db := newDB(t)
	s := NewStore(&fakeAPI{loginBody: `{"id":"U1","role":"BUYER"}`}, failingPersister{NewSQLitePersister(db)}, nil)
	s.Init(context.Background())

	res := s.Login(context.Background(), "e", "p")
	assert.False(t, res.Success)
	assert.Equal(t, MsgLoginFailed, res.Message)
	assert.Nil(t, s.Current())
}

func TestStore_Logout(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		s, db := newStore(t, &fakeAPI{loginBody: `{"id":"U1","role":"BUYER"}`})
		require.True(t, s.Login(context.Background(), "e", "p").Success)

		require.NoError(t, s.Logout(context.Background()))
		assert.Nil(t, s.Current())
		assert.Empty(t, s.LastRole())
		assert.Nil(t, stored(t, db, common.StorageKeyUser))
		assert.Nil(t, stored(t, db, common.StorageKeyRole))
	})

	t.Run("already signed out", func(t *testing.T) {
		s, db := newStore(t, &fakeAPI{})
		require.NoError(t, s.Logout(context.Background()))
		require.NoError(t, s.Logout(context.Background()))
		assert.Nil(t, s.Current())
		assert.Nil(t, stored(t, db, common.StorageKeyUser))
	})
}

func TestStore_AdminLoginUsesSameStore(t *testing.T) {
	api := &fakeAPI{loginBody: `{"id":"A1","name":"Root","role":"ADMIN"}`}
	s, _ := newStore(t, api)

	res := s.AdminLogin(context.Background(), "root@example.com", "p")
	require.True(t, res.Success)
	assert.Equal(t, 1, api.adminCalls)
	assert.Equal(t, models.RoleAdmin, s.Current().Role)
}

func TestStore_Register(t *testing.T) {
	form := models.RegisterForm{Name: "Asha", Email: "a@b.io"}

	t.Run("success", func(t *testing.T) {
		s, _ := newStore(t, &fakeAPI{registerMsg: "Registration successful"})
		assert.Equal(t, Result{Success: true, Message: "Registration successful"}, s.Register(context.Background(), form))
		assert.Nil(t, s.Current())
	})

	t.Run("server message", func(t *testing.T) {
		err := &client.StatusError{Code: 400, Message: "Email already exists"}
		s, _ := newStore(t, &fakeAPI{registerErr: err})
		assert.Equal(t, Result{Message: "Email already exists"}, s.Register(context.Background(), form))
	})

	t.Run("no message", func(t *testing.T) {
		s, _ := newStore(t, &fakeAPI{registerErr: client.ErrUnavailable})
		assert.Equal(t, Result{Message: MsgRegistrationFailed}, s.Register(context.Background(), form))
	})

	t.Run("does not touch an active session", func(t *testing.T) {
		api := &fakeAPI{loginBody: `{"id":"U1","role":"BUYER"}`, registerErr: client.ErrServer}
		s, _ := newStore(t, api)
		require.True(t, s.Login(context.Background(), "e", "p").Success)
		s.Register(context.Background(), form)
		assert.Equal(t, models.ID("U1"), s.Current().ID)
	})
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s, _ := newStore(t, &fakeAPI{loginBody: `{"id":"U1","name":"Asha","role":"FARMER"}`})
	require.True(t, s.Login(context.Background(), "e", "p").Success)

	s.Current().Name = "changed"
	s.State().Session.Role = models.RoleAdmin

	assert.Equal(t, "Asha", s.Current().Name)
	assert.Equal(t, models.RoleFarmer, s.Current().Role)
}

func TestStore_ConcurrentReadsDuringLogin(t *testing.T) {
	s, _ := newStore(t, &fakeAPI{loginBody: `{"id":"U1","role":"FARMER"}`})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Login(context.Background(), "e", "p")
		}()
		go func() {
			defer wg.Done()
			_ = s.State()
			_ = s.LastRole()
		}()
	}
	wg.Wait()
	assert.Equal(t, models.ID("U1"), s.Current().ID)
}
