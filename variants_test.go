package jsonapi_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	jsonapi "github.com/reoring/jsonapi"
)

// Test variants: a small domain (organizations, users, projects) exercising
// required/optional attributes, date attributes, and required/optional
// relationships through the public decode contract.

type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	MemberCap int
}

func (o *Organization) ResourceID() string   { return o.ID }
func (o *Organization) ResourceType() string { return "orgs" }

func decodeOrganization(rd *jsonapi.ResourceData) (jsonapi.Resource, error) {
	name, err := jsonapi.Attr[string](rd, "name")
	if err != nil {
		return nil, err
	}
	org := &Organization{ID: rd.ID(), Name: name}
	if t, ok := jsonapi.OptTimeAttr(rd, "created_at"); ok {
		org.CreatedAt = t
	}
	if n, ok := jsonapi.OptAttr[int](rd, "member_cap"); ok {
		org.MemberCap = n
	}
	return org, nil
}

type User struct {
	ID    string
	Email string
}

func (u *User) ResourceID() string   { return u.ID }
func (u *User) ResourceType() string { return "users" }

func decodeUser(rd *jsonapi.ResourceData) (jsonapi.Resource, error) {
	email, err := jsonapi.Attr[string](rd, "email")
	if err != nil {
		return nil, err
	}
	if !strings.Contains(email, "@") {
		return nil, jsonapi.InvalidAttribute("email")
	}
	return &User{ID: rd.ID(), Email: email}, nil
}

type Project struct {
	ID    string
	Name  string
	Owner *User
	Org   *Organization
}

func (p *Project) ResourceID() string   { return p.ID }
func (p *Project) ResourceType() string { return "projects" }

func decodeProject(rd *jsonapi.ResourceData) (jsonapi.Resource, error) {
	name, err := jsonapi.Attr[string](rd, "name")
	if err != nil {
		return nil, err
	}
	owner, err := jsonapi.Related[*User](rd, "owner")
	if err != nil {
		return nil, err
	}
	p := &Project{ID: rd.ID(), Name: name, Owner: owner}
	if org, ok := jsonapi.OptRelated[*Organization](rd, "org"); ok {
		p.Org = org
	}
	return p, nil
}

func testRegistry() *jsonapi.Registry {
	return jsonapi.NewRegistry().
		Register("orgs", decodeOrganization).
		Register("users", decodeUser).
		Register("projects", decodeProject)
}

func newTestDeserializer() *jsonapi.Deserializer {
	return jsonapi.NewDeserializer(testRegistry(), jsonapi.WithLogger(zerolog.Nop()))
}

func mustTree(t *testing.T, src string) any {
	t.Helper()
	v, err := jsonapi.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	return v
}
