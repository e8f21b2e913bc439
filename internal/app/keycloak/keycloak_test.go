package keycloak

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeycloak serves the token endpoint plus the admin user routes.
func fakeKeycloak(t *testing.T, userID uuid.UUID, existingEmail string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/realms/notary/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "fake-token"})
	})

	mux.HandleFunc("/admin/realms/notary/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fake-token", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodPost:
			w.Header().Set("Location", "/admin/realms/notary/users/"+userID.String())
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			if r.URL.Query().Get("email") == existingEmail {
				json.NewEncoder(w).Encode([]map[string]string{{"id": userID.String()}})
				return
			}
			json.NewEncoder(w).Encode([]map[string]string{})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/admin/realms/notary/users/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	return httptest.NewServer(mux)
}

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:       baseURL,
		Realm:         "notary",
		AdminUsername: "admin",
		AdminPassword: "admin",
		ClientID:      "admin-cli",
	})
}

func TestClient_CreateUser(t *testing.T) {
	want := uuid.New()
	srv := fakeKeycloak(t, want, "")
	defer srv.Close()

	got, err := testClient(srv.URL).CreateUser(context.Background(), "jdoe", "jdoe@example.com", "Jo", "Doe")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_EmailExists(t *testing.T) {
	srv := fakeKeycloak(t, uuid.New(), "taken@example.com")
	defer srv.Close()

	client := testClient(srv.URL)

	exists, err := client.EmailExists(context.Background(), "taken@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.EmailExists(context.Background(), "free@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_DeleteUser(t *testing.T) {
	srv := fakeKeycloak(t, uuid.New(), "")
	defer srv.Close()

	err := testClient(srv.URL).DeleteUser(context.Background(), uuid.New())
	require.NoError(t, err)
}

func TestClient_DeleteUser_MissingIdentityIgnored(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/notary/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "fake-token"})
	})
	mux.HandleFunc("/admin/realms/notary/users/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	err := testClient(srv.URL).DeleteUser(context.Background(), uuid.New())
	require.NoError(t, err)
}

func TestClient_CreateUser_ErrorStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/notary/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "fake-token"})
	})
	mux.HandleFunc("/admin/realms/notary/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := testClient(srv.URL).CreateUser(context.Background(), "jdoe", "jdoe@example.com", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
}
