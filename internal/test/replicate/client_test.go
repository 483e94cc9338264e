package replicate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juraijvu/furn-newyear/internal/replicate"
)

func TestClient_Inpaint_ListOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/predictions", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "wait", r.Header.Get("Prefer"))

		var req struct {
			Version string                 `json:"version"`
			Input   map[string]interface{} `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, replicate.VersionFluxFillPro, req.Version)
		assert.Equal(t, "http://img.example/a.png", req.Input["image"])
		assert.NotEmpty(t, req.Input["seed"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["http://result/b.png"]`))
	}))
	defer server.Close()

	client := replicate.NewClient(server.URL, "test-token", "")
	url, err := client.Inpaint(replicate.InpaintParams{
		ImageURL:       "http://img.example/a.png",
		MaskURL:        "http://img.example/mask.png",
		Prompt:         "a red seat cushion",
		PromptStrength: 0.85,
		MaskBlur:       8,
	})

	assert.NoError(t, err)
	assert.Equal(t, "http://result/b.png", url)
}

func TestClient_Inpaint_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "invalid version"}`))
	}))
	defer server.Close()

	client := replicate.NewClient(server.URL, "test-token", "")
	_, err := client.Inpaint(replicate.InpaintParams{
		ImageURL: "http://img.example/a.png",
		Prompt:   "a red seat cushion",
	})

	var providerErr *replicate.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusUnprocessableEntity, providerErr.StatusCode)
	assert.Contains(t, providerErr.Message, "invalid version")
}

func TestClient_Inpaint_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "failed", "error": "NSFW content detected"}`))
	}))
	defer server.Close()

	client := replicate.NewClient(server.URL, "test-token", "")
	_, err := client.Inpaint(replicate.InpaintParams{
		ImageURL: "http://img.example/a.png",
		Prompt:   "a red seat cushion",
	})

	var providerErr *replicate.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Contains(t, providerErr.Message, "NSFW")
}

func TestClient_Inpaint_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := replicate.NewClient(server.URL, "test-token", "")
	_, err := client.Inpaint(replicate.InpaintParams{
		ImageURL: "http://img.example/a.png",
		Prompt:   "a red seat cushion",
	})

	var providerErr *replicate.ProviderError
	assert.ErrorAs(t, err, &providerErr)
}

func TestClient_ResolvePublicURL(t *testing.T) {
	client := replicate.NewClient("https://api.test", "token", "https://app.example.com")

	assert.Equal(t, "https://app.example.com/uploads/a.png",
		client.ResolvePublicURL("http://localhost:8080/uploads/a.png"))
	assert.Equal(t, "https://app.example.com/uploads/a.png",
		client.ResolvePublicURL("http://127.0.0.1:3000/uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png",
		client.ResolvePublicURL("https://cdn.example.com/a.png"))
}

func TestClient_ResolvePublicURL_NoopWithoutBase(t *testing.T) {
	client := replicate.NewClient("https://api.test", "token", "")

	assert.Equal(t, "http://localhost:8080/uploads/a.png",
		client.ResolvePublicURL("http://localhost:8080/uploads/a.png"))
}

func TestClient_CheckModel_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/acme/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "not found"}`))
	}))
	defer server.Close()

	client := replicate.NewClient(server.URL, "test-token", "")
	_, err := client.CheckModel("acme", "missing")

	var providerErr *replicate.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusNotFound, providerErr.StatusCode)
}
