package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Session is the client-held record of the authenticated identity.
//
// Fields other than id, name, email and role are kept verbatim in Extra and
// written back on marshal, so persisting a session never drops data the
// backend sent. The four named fields keep their received encoding too (a
// numeric id stays numeric, an absent key stays absent) until they change.
type Session struct {
	ID    ID
	Name  string
	Email string
	Role  Role

	Extra map[string]json.RawMessage

	// wire holds the compacted bytes of the named fields as received.
	wire map[string]json.RawMessage
}

var errNoSessionID = errors.New("session has no id")

// Validate reports whether s is usable as a login payload.
func (s *Session) Validate() error {
	if s == nil || s.ID == "" {
		return errNoSessionID
	}
	return nil
}

func (s *Session) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("session must be a JSON object")
	}

	var out Session
	for _, key := range sessionKeys {
		if raw, ok := fields[key]; ok {
			c, err := compact(raw)
			if err != nil {
				return err
			}
			if out.wire == nil {
				out.wire = make(map[string]json.RawMessage, len(sessionKeys))
			}
			out.wire[key] = c
		}
	}

	if raw, ok := fields["id"]; ok {
		if err := out.ID.UnmarshalJSON(raw); err != nil {
			return err
		}
		delete(fields, "id")
	}

	for key, dst := range map[string]*string{"name": &out.Name, "email": &out.Email, "role": (*string)(&out.Role)} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if !bytes.Equal(bytes.TrimSpace(raw), null) {
			if err := json.Unmarshal(raw, dst); err != nil {
				return fmt.Errorf("session field %s: %w", key, err)
			}
		}
		delete(fields, key)
	}

	if len(fields) > 0 {
		out.Extra = make(map[string]json.RawMessage, len(fields))
		for key, raw := range fields {
			c, err := compact(raw)
			if err != nil {
				return err
			}
			out.Extra[key] = c
		}
	}

	*s = out
	return nil
}

var sessionKeys = []string{"id", "name", "email", "role"}

func (s Session) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(s.Extra)+len(sessionKeys))
	for key, raw := range s.Extra {
		m[key] = raw
	}
	values := map[string]string{"id": string(s.ID), "name": s.Name, "email": s.Email, "role": string(s.Role)}
	for _, key := range sessionKeys {
		value := values[key]
		if raw, ok := s.wire[key]; ok && decodesTo(key, raw, value) {
			m[key] = raw
			continue
		}
		if value == "" {
			continue
		}
		b, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		m[key] = b
	}
	return json.Marshal(m)
}

// decodesTo reports whether raw, as received for key, still decodes to value.
func decodesTo(key string, raw json.RawMessage, value string) bool {
	if bytes.Equal(raw, null) {
		return value == ""
	}
	if key == "id" {
		var id ID
		return id.UnmarshalJSON(raw) == nil && string(id) == value
	}
	var str string
	return json.Unmarshal(raw, &str) == nil && str == value
}

func compact(raw json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Extra = cloneRaw(s.Extra)
	c.wire = cloneRaw(s.wire)
	return &c
}

func cloneRaw(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}
