package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_UnmarshalKeepsExtraFields(t *testing.T) {
	raw := `{"id":"U1","name":"Asha","email":"asha@example.com","role":"FARMER","phone":"123","location":{"city":"Pune", "pin": 411001},"blocked":false}`

	var s Session
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, ID("U1"), s.ID)
	assert.Equal(t, "Asha", s.Name)
	assert.Equal(t, RoleFarmer, s.Role)
	require.Len(t, s.Extra, 3)
	assert.JSONEq(t, `"123"`, string(s.Extra["phone"]))
	assert.Equal(t, `{"city":"Pune","pin":411001}`, string(s.Extra["location"]))
}

func TestSession_NumericID(t *testing.T) {
	var s Session
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"role":"BUYER"}`), &s))
	assert.Equal(t, ID("42"), s.ID)
	assert.NoError(t, s.Validate())
}

func TestSession_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"id":"U1","name":"Asha","role":"FARMER"}`,
		`{"id":7,"name":"Ravi","email":"r@x.io","role":"DISTRIBUTOR","company":"Agro Ltd","tags":["a", "b"]}`,
		`{"id":"A","role":"SOMETHING_NEW","nested":{"deep":[1,2,{"x":null}]}}`,
	}

	for _, in := range inputs {
		var first Session
		require.NoError(t, json.Unmarshal([]byte(in), &first))

		b, err := json.Marshal(first)
		require.NoError(t, err)

		var second Session
		require.NoError(t, json.Unmarshal(b, &second))
		assert.Equal(t, first, second, in)

		b2, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, string(b), string(b2))
	}
}

func TestSession_RejectsNonObjects(t *testing.T) {
	for _, in := range []string{`"Invalid credentials"`, `[1,2]`, `null`, `{"name":5}`, `{"id":true}`} {
		var s Session
		assert.Error(t, json.Unmarshal([]byte(in), &s), in)
	}
}

func TestSession_Validate(t *testing.T) {
	var nilSession *Session
	assert.Error(t, nilSession.Validate())
	assert.Error(t, (&Session{Name: "no id"}).Validate())
	assert.NoError(t, (&Session{ID: "U1"}).Validate())
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := &Session{ID: "U1", Extra: map[string]json.RawMessage{"k": json.RawMessage(`"v"`)}}
	c := s.Clone()
	c.Extra["k"][1] = 'X'
	assert.Equal(t, `"v"`, string(s.Extra["k"]))
	assert.Nil(t, (*Session)(nil).Clone())
}

func TestSession_MarshalKeepsReceivedEncoding(t *testing.T) {
	inputs := []string{
		`{"id":7,"name":"Asha","role":"FARMER"}`,
		`{"id":7,"name":null,"role":"BUYER","phone":"555"}`,
		`{"id":"U1"}`,
	}
	for _, in := range inputs {
		var s Session
		require.NoError(t, json.Unmarshal([]byte(in), &s))

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(b))
	}
}

func TestSession_MarshalWritesChangedFields(t *testing.T) {
	var s Session
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"Asha","role":"FARMER"}`), &s))

	s.Role = RoleBuyer
	s.Email = "asha@example.com"
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Asha","email":"asha@example.com","role":"BUYER"}`, string(b))

	s.ID = "8"
	b, err = json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"8","name":"Asha","email":"asha@example.com","role":"BUYER"}`, string(b))

	b, err = json.Marshal(Session{ID: "U1", Role: RoleFarmer})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"U1","role":"FARMER"}`, string(b))
}

func TestSession_CloneKeepsReceivedEncoding(t *testing.T) {
	var s Session
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"role":"FARMER"}`), &s))

	c := s.Clone()
	c.wire["id"][0] = '9'
	assert.Equal(t, "7", string(s.wire["id"]))

	b, err := json.Marshal(s.Clone())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"role":"FARMER"}`, string(b))
}
