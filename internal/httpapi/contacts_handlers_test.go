package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"svokit/internal/domain"
	"svokit/internal/email"
	"svokit/internal/httpapi"
	"svokit/internal/pagination"
)

type fakeContactSvc struct {
	createErr error
	getErr    error
	listErr   error
	removeErr error

	lastEmail  string
	lastLimit  int
	lastCursor *pagination.Cursor
}

func (f *fakeContactSvc) RegisterContact(_ context.Context, name, rawEmail, phone string) (httpapi.Contact, error) {
	if f.createErr != nil {
		return httpapi.Contact{}, f.createErr
	}
	f.lastEmail = rawEmail
	return httpapi.Contact{ID: "c1", Name: name, Email: email.MustParse(rawEmail), Phone: phone}, nil
}

func (f *fakeContactSvc) GetContact(_ context.Context, rawEmail string) (httpapi.Contact, error) {
	f.lastEmail = rawEmail
	if f.getErr != nil {
		return httpapi.Contact{}, f.getErr
	}
	return httpapi.Contact{ID: "c1", Name: "Info", Email: email.MustParse(rawEmail)}, nil
}

func (f *fakeContactSvc) ListContacts(_ context.Context, limit int, cursor *pagination.Cursor) (httpapi.ListContactsResult, error) {
	if f.listErr != nil {
		return httpapi.ListContactsResult{}, f.listErr
	}
	f.lastLimit = limit
	f.lastCursor = cursor
	return httpapi.ListContactsResult{
		Items: []httpapi.Contact{
			{ID: "c1", Name: "Info", Email: email.MustParse("info@qowaiv.org")},
		},
	}, nil
}

func (f *fakeContactSvc) RemoveContact(_ context.Context, rawEmail string) error {
	f.lastEmail = rawEmail
	return f.removeErr
}

func newServer(svc httpapi.ContactService) *httpapi.Server {
	return httpapi.New(httpapi.Deps{ContactSvc: svc, Logger: zerolog.Nop()})
}

func TestHealthz(t *testing.T) {
	s := newServer(&fakeContactSvc{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/healthz", nil)

	s.ServeHTTP(rr, req)
	require.Equal(t, 200, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}

func TestCreateContact_OK(t *testing.T) {
	fake := &fakeContactSvc{}
	s := newServer(fake)

	body := []byte(`{"name":"  Joe ","email":"Joe <info@QOWAIV.org>","phone":" +14155552671 "}`)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/contacts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	s.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Equal(t, "Joe", got["name"])
	require.Equal(t, "info@qowaiv.org", got["email"])
	require.Equal(t, "+14155552671", got["phone"])
	require.Equal(t, "Joe <info@QOWAIV.org>", fake.lastEmail)
}

func TestCreateContact_InvalidJSON(t *testing.T) {
	s := newServer(&fakeContactSvc{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/contacts", bytes.NewReader([]byte(`{`)))

	s.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateContact_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidName, http.StatusUnprocessableEntity},
		{email.TryParse("nope").Unparsable(), http.StatusUnprocessableEntity},
		{domain.ErrInvalidPhone, http.StatusUnprocessableEntity},
		{domain.ErrContactEmailTaken, http.StatusConflict},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		s := newServer(&fakeContactSvc{createErr: tc.err})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/contacts",
			bytes.NewReader([]byte(`{"name":"A","email":"a@example.org"}`)))

		s.ServeHTTP(rr, req)
		require.Equal(t, tc.code, rr.Code, tc.err.Error())
	}
}

func TestGetContact_DecodesPathParam(t *testing.T) {
	fake := &fakeContactSvc{}
	s := newServer(fake)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/contacts/info%40qowaiv.org", nil)

	s.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "info@qowaiv.org", fake.lastEmail)
}

func TestGetContact_NotFound(t *testing.T) {
	s := newServer(&fakeContactSvc{getErr: domain.ErrContactNotFound})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/contacts/info@qowaiv.org", nil)

	s.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteContact(t *testing.T) {
	fake := &fakeContactSvc{}
	s := newServer(fake)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/v1/contacts/info@qowaiv.org", nil)
	s.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "info@qowaiv.org", fake.lastEmail)

	fake.removeErr = domain.ErrContactNotFound
	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest("DELETE", "/v1/contacts/info@qowaiv.org", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListContacts_DefaultLimit(t *testing.T) {
	fake := &fakeContactSvc{}
	s := newServer(fake)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/contacts", nil)

	s.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 50, fake.lastLimit)
	require.Nil(t, fake.lastCursor)

	var got httpapi.ListContactsResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got.Items, 1)
	require.Equal(t, "info@qowaiv.org", got.Items[0].Email.String())
}

func TestListContacts_ClampsLimit(t *testing.T) {
	fake := &fakeContactSvc{}
	s := newServer(fake)

	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/contacts?limit=9999", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 200, fake.lastLimit)

	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/contacts?limit=abc", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListContacts_Cursor(t *testing.T) {
	fake := &fakeContactSvc{}
	s := newServer(fake)

	cur := pagination.Encode(pagination.Cursor{After: email.MustParse("a@example.org")})
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/contacts?cursor="+cur, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, fake.lastCursor)
	require.Equal(t, "a@example.org", fake.lastCursor.After.String())

	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/contacts?cursor=!!!", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCORS_Preflight(t *testing.T) {
	s := httpapi.New(httpapi.Deps{
		ContactSvc:     &fakeContactSvc{},
		Logger:         zerolog.Nop(),
		AllowedOrigins: []string{"https://app.example.org"},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/v1/emails/parse", nil)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", "POST")

	s.ServeHTTP(rr, req)
	require.Equal(t, "https://app.example.org", rr.Header().Get("Access-Control-Allow-Origin"))
}
