package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iurnickita/binday/internal/collection"
	"github.com/iurnickita/binday/internal/service"
	"github.com/iurnickita/binday/internal/skill"
)

type fakeService struct {
	intent  *skill.Intent
	address *skill.AlexaAddress
	house   skill.HouseAddress
	tokens  []string
	result  collection.Result
	err     error
}

func (s *fakeService) Fulfill(_ context.Context, intent *skill.Intent, address *skill.AlexaAddress) string {
	s.intent = intent
	s.address = address
	return "The next recycling collection is today. "
}

func (s *fakeService) NextCollections(_ context.Context, addr skill.HouseAddress, tokens []string) (collection.Result, error) {
	s.house = addr
	s.tokens = tokens
	return s.result, s.err
}

func (s *fakeService) Today() time.Time {
	return time.Date(2018, time.November, 20, 0, 0, 0, 0, time.UTC)
}

func TestPostSkill(t *testing.T) {
	svc := &fakeService{}
	srv := httptest.NewServer(newHandler(svc, zap.NewNop()).newRouter())
	defer srv.Close()

	body := `{"request":{"type":"IntentRequest","intent":{"name":"NextCollection","slots":{"BinColor":{"name":"BinColor","value":"blue"}}}},` +
		`"address":{"addressLine1":"12 Mill Road","postalCode":"CB1 2AB"}}`
	resp, err := http.Post(srv.URL+"/api/skill", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var answer skill.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&answer))
	require.Equal(t, "The next recycling collection is today. ", answer.Response.OutputSpeech.Text)
	require.True(t, answer.Response.ShouldEndSession)

	require.Equal(t, "blue", svc.intent.Slots[skill.SlotBinColor].Value)
	require.Equal(t, "CB1 2AB", svc.address.PostalCode)
}

func TestPostSkillBadRequest(t *testing.T) {
	srv := httptest.NewServer(newHandler(&fakeService{}, zap.NewNop()).newRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/skill", "application/json", strings.NewReader(`{"request":`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCollections(t *testing.T) {
	date := time.Date(2018, time.November, 21, 0, 0, 0, 0, time.UTC)
	svc := &fakeService{result: collection.Result{Entries: []collection.Entry{
		{Key: "RECYCLE", RoundType: "RECYCLE", Resolved: true, AskedFor: "blue bin", Date: &date},
		{Key: "purple", AskedFor: "purple bin"},
	}}}
	srv := httptest.NewServer(newHandler(svc, zap.NewNop()).newRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/collections?house=12&street=Mill+Rd&postcode=CB1+2AB&type=blue&type=purple")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var answer GetCollectionsJSONResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&answer))
	require.Len(t, answer.Collections, 2)
	require.Equal(t, "RECYCLE", answer.Collections[0].Type)
	require.True(t, date.Equal(*answer.Collections[0].Date))
	require.Nil(t, answer.Collections[1].Date)
	require.Equal(t,
		"The next blue bin collection is tomorrow. Sorry, I could not find the date for the next purple bin collection.",
		answer.Text)

	require.Equal(t, skill.HouseAddress{HouseNumber: "12", Street: "Mill Rd", Postcode: "CB1 2AB"}, svc.house)
	require.Equal(t, []string{"blue", "purple"}, svc.tokens)
}

func TestGetCollectionsErrors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: service.ErrAddressNotFound, code: http.StatusNotFound},
		{err: fmt.Errorf("%w: timeout", service.ErrAddressLookupFailed), code: http.StatusBadGateway},
		{err: fmt.Errorf("%w: 500", service.ErrScheduleFetchFailed), code: http.StatusBadGateway},
		{err: service.ErrMissingScheduleData, code: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			srv := httptest.NewServer(newHandler(&fakeService{err: tt.err}, zap.NewNop()).newRouter())
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/api/collections?house=12&street=Mill+Rd&postcode=CB1+2AB")
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, tt.code, resp.StatusCode)
		})
	}

	srv := httptest.NewServer(newHandler(&fakeService{}, zap.NewNop()).newRouter())
	defer srv.Close()
	resp, err := http.Get(srv.URL + "/api/collections?house=12")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
