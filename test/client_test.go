//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/misc"
)

const testPassword = "testpass"

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) *http.Response {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends the request, requires expectedStatus and decodes the response into out, if given.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body any, expectedStatus int, out any) {
	t := s.T()

	resp := s.doRequest(ctx, method, path, token, body)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}

// registerUser creates a user with a random name and returns its session token.
func (s *IntegrationTestSuite) registerUser(ctx context.Context) (string, auth.Credentials) {
	credentials := auth.Credentials{
		Username: fmt.Sprintf("%s-%d", gofakeit.Username(), gofakeit.Number(1000, 999999)),
		Password: testPassword,
	}

	var tokenResp misc.TokenResponse
	s.doJSON(ctx, http.MethodPost, "/a/register", "", credentials, http.StatusCreated, &tokenResp)
	require.NotEmpty(s.T(), tokenResp.Token)

	return tokenResp.Token, credentials
}

func requireStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expected, resp.StatusCode, "response: %s", respBytes)
}
