package models

import "fmt"

// UserPayload is a decoded user object as returned by the API. Key presence
// matters: Apply overwrites exactly the fields present in the payload, so a
// partial update response never erases previously known fields.
type UserPayload map[string]any

// Apply merges the payload into u. Unknown keys are ignored; known keys with
// the wrong JSON type, or an invalid role, make the whole payload invalid.
// The profile extension map is merged key-wise; an address object replaces
// the stored address wholesale.
func (p UserPayload) Apply(u *UserRecord) error {
	for key, raw := range p {
		switch key {
		case "id":
			s, err := asString(key, raw)
			if err != nil {
				return err
			}
			u.ID = s
		case "email":
			s, err := asString(key, raw)
			if err != nil {
				return err
			}
			u.Email = s
		case "first":
			s, err := asString(key, raw)
			if err != nil {
				return err
			}
			u.First = s
		case "last":
			s, err := asString(key, raw)
			if err != nil {
				return err
			}
			u.Last = s
		case "role":
			s, err := asString(key, raw)
			if err != nil {
				return err
			}
			role, err := ParseRole(s)
			if err != nil {
				return err
			}
			u.Role = role
		case "verified":
			b, ok := raw.(bool)
			if !ok {
				return fmt.Errorf("field %q: expected bool, got %T", key, raw)
			}
			u.Verified = b
		case "avatar":
			s, err := asString(key, raw)
			if err != nil {
				return err
			}
			u.Avatar = s
		case "profile":
			m, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("field %q: expected object, got %T", key, raw)
			}
			if u.Profile == nil {
				u.Profile = make(map[string]any, len(m))
			}
			for k, v := range m {
				u.Profile[k] = v
			}
		case "address":
			m, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("field %q: expected object, got %T", key, raw)
			}
			addr, err := addressFromMap(m)
			if err != nil {
				return err
			}
			u.Address = addr
		}
	}
	return nil
}

// User builds a fresh record from the payload.
func (p UserPayload) User() (*UserRecord, error) {
	u := &UserRecord{}
	if err := p.Apply(u); err != nil {
		return nil, err
	}
	return u, nil
}

func addressFromMap(m map[string]any) (*Address, error) {
	addr := &Address{}
	for key, raw := range m {
		switch key {
		case "street", "city", "state", "zip", "country":
		default:
			continue
		}
		s, err := asString(key, raw)
		if err != nil {
			return nil, fmt.Errorf("address: %w", err)
		}
		switch key {
		case "street":
			addr.Street = s
		case "city":
			addr.City = s
		case "state":
			addr.State = s
		case "zip":
			addr.Zip = s
		case "country":
			addr.Country = s
		}
	}
	return addr, nil
}

func asString(key string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, raw)
	}
	return s, nil
}
