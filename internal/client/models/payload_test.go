package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) UserPayload {
	t.Helper()
	var p UserPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestApply_PartialPayloadKeepsAbsentFields(t *testing.T) {
	u := &UserRecord{
		ID:       "u-1",
		Email:    "org@example.com",
		First:    "Acme",
		Last:     "Org",
		Role:     RoleNGO,
		Verified: true,
		Avatar:   "a.png",
	}

	p := decodePayload(t, `{"first":"Acme Updated"}`)
	require.NoError(t, p.Apply(u))

	require.Equal(t, "Acme Updated", u.First)
	// everything absent from the payload is retained
	require.Equal(t, "u-1", u.ID)
	require.Equal(t, "org@example.com", u.Email)
	require.Equal(t, "Org", u.Last)
	require.Equal(t, RoleNGO, u.Role)
	require.True(t, u.Verified)
	require.Equal(t, "a.png", u.Avatar)
}

func TestApply_OverwritesExactlyPresentFields(t *testing.T) {
	u := &UserRecord{First: "Old", Last: "Name", Verified: false}

	p := decodePayload(t, `{"last":"Other","verified":true}`)
	require.NoError(t, p.Apply(u))

	require.Equal(t, "Old", u.First)
	require.Equal(t, "Other", u.Last)
	require.True(t, u.Verified)
}

func TestApply_ProfileMergesKeyWise(t *testing.T) {
	u := &UserRecord{Profile: map[string]any{"mission": "help", "size": "10"}}

	p := decodePayload(t, `{"profile":{"size":"25","website":"acme.org"}}`)
	require.NoError(t, p.Apply(u))

	require.Equal(t, "help", u.Profile["mission"])
	require.Equal(t, "25", u.Profile["size"])
	require.Equal(t, "acme.org", u.Profile["website"])
}

func TestApply_AddressReplacedWholesale(t *testing.T) {
	u := &UserRecord{Address: &Address{Street: "Old St", City: "Oldtown", Country: "US"}}

	p := decodePayload(t, `{"address":{"street":"New St","city":"Newtown"}}`)
	require.NoError(t, p.Apply(u))

	require.Equal(t, "New St", u.Address.Street)
	require.Equal(t, "Newtown", u.Address.City)
	require.Equal(t, "", u.Address.Country)
}

func TestApply_InvalidRoleRejected(t *testing.T) {
	u := &UserRecord{Role: RoleNGO}
	p := decodePayload(t, `{"role":"superuser"}`)
	require.Error(t, p.Apply(u))
}

func TestApply_WrongTypeRejected(t *testing.T) {
	u := &UserRecord{}
	p := decodePayload(t, `{"email":42}`)
	require.Error(t, p.Apply(u))

	p = decodePayload(t, `{"verified":"yes"}`)
	require.Error(t, p.Apply(u))

	p = decodePayload(t, `{"profile":"not-an-object"}`)
	require.Error(t, p.Apply(u))
}

func TestApply_UnknownKeysIgnored(t *testing.T) {
	u := &UserRecord{First: "Acme"}
	p := decodePayload(t, `{"created_at":"2024-01-01","first":"Still Acme"}`)
	require.NoError(t, p.Apply(u))
	require.Equal(t, "Still Acme", u.First)
}

func TestUser_BuildsFreshRecord(t *testing.T) {
	p := decodePayload(t, `{"id":"u-2","email":"v@example.com","role":"individual"}`)
	u, err := p.User()
	require.NoError(t, err)
	require.Equal(t, "u-2", u.ID)
	require.Equal(t, RoleIndividual, u.Role)
}

func TestClone_DeepCopies(t *testing.T) {
	u := &UserRecord{
		ID:      "u-1",
		Profile: map[string]any{"k": "v"},
		Address: &Address{City: "Springfield"},
	}
	c := u.Clone()
	c.Profile["k"] = "changed"
	c.Address.City = "Shelbyville"

	require.Equal(t, "v", u.Profile["k"])
	require.Equal(t, "Springfield", u.Address.City)
	require.Nil(t, (*UserRecord)(nil).Clone())
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"ngo", "individual", "admin"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		require.Equal(t, Role(s), r)
	}
	_, err := ParseRole("root")
	require.Error(t, err)
}
