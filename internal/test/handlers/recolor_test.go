package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juraijvu/furn-newyear/internal/handlers"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/recolor"
	"github.com/juraijvu/furn-newyear/internal/replicate"
)

func newRecolorRouter(t *testing.T, providerURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gateway := replicate.NewClient(providerURL, "test-token", "")
	service := recolor.NewService(gateway, nil, logger.NewNop())
	handler := handlers.NewRecolorHandler(service, logger.NewNop())

	router := gin.New()
	router.POST("/api/segment-professional", handler.Segment)
	router.POST("/api/inpaint-professional", handler.Inpaint)
	router.POST("/api/professional-recolor", handler.Recolor)
	return router
}

func postJSON(router *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecolor_Success(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["http://result/b.png"]`))
	}))
	defer provider.Close()

	router := newRecolorRouter(t, provider.URL)
	w := postJSON(router, "/api/professional-recolor", map[string]interface{}{
		"imageUrl": "http://x/a.png",
		"color":    "#FF0000",
		"material": "leather",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ResultURL string `json:"resultUrl"`
		MaskURL   string `json:"maskUrl"`
		Prompt    string `json:"prompt"`
		PartLabel string `json:"partLabel"`
		Settings  struct {
			PromptStrength float64 `json:"promptStrength"`
			MaskBlur       int     `json:"maskBlur"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "http://result/b.png", resp.ResultURL)
	assert.Equal(t, "http://x/a.png", resp.MaskURL, "placeholder segmentation echoes the input image")
	assert.Contains(t, resp.Prompt, "vibrant red")
	assert.Equal(t, 0.85, resp.Settings.PromptStrength)
	assert.Equal(t, 8, resp.Settings.MaskBlur)
}

func TestRecolor_MissingColor(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called when validation fails")
	}))
	defer provider.Close()

	router := newRecolorRouter(t, provider.URL)
	w := postJSON(router, "/api/professional-recolor", map[string]interface{}{
		"imageUrl": "http://x/a.png",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecolor_ProviderFailure(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail": "model unavailable"}`))
	}))
	defer provider.Close()

	router := newRecolorRouter(t, provider.URL)
	w := postJSON(router, "/api/professional-recolor", map[string]interface{}{
		"imageUrl": "http://x/a.png",
		"color":    "#FF0000",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "model unavailable")
}

func TestRecolor_InvalidModelOutput(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"foo": 1}`))
	}))
	defer provider.Close()

	router := newRecolorRouter(t, provider.URL)
	w := postJSON(router, "/api/professional-recolor", map[string]interface{}{
		"imageUrl": "http://x/a.png",
		"color":    "#FF0000",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "invalid model output")
}

func TestSegment_EchoesImageAsMask(t *testing.T) {
	router := newRecolorRouter(t, "http://unused.invalid")
	w := postJSON(router, "/api/segment-professional", map[string]interface{}{
		"imageUrl":      "http://x/a.png",
		"clickX":        120,
		"clickY":        340,
		"furniturePart": "cushion",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		MaskID    string `json:"maskId"`
		MaskURL   string `json:"maskUrl"`
		PartLabel string `json:"partLabel"`
		ClickX    *int   `json:"clickX"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.MaskID)
	assert.Equal(t, "http://x/a.png", resp.MaskURL)
	assert.Equal(t, "cushion", resp.PartLabel)
	require.NotNil(t, resp.ClickX)
	assert.Equal(t, 120, *resp.ClickX)
}

func TestSegment_MissingImageURL(t *testing.T) {
	router := newRecolorRouter(t, "http://unused.invalid")
	w := postJSON(router, "/api/segment-professional", map[string]interface{}{
		"autoDetect": true,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInpaint_MissingFields(t *testing.T) {
	router := newRecolorRouter(t, "http://unused.invalid")
	w := postJSON(router, "/api/inpaint-professional", map[string]interface{}{
		"imageUrl": "http://x/a.png",
		"color":    "#FF0000",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInpaint_Success(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output": "http://result/c.png"}`))
	}))
	defer provider.Close()

	router := newRecolorRouter(t, provider.URL)
	w := postJSON(router, "/api/inpaint-professional", map[string]interface{}{
		"imageUrl":      "http://x/a.png",
		"maskUrl":       "http://x/mask.png",
		"color":         "#0000FF",
		"material":      "velvet",
		"furniturePart": "backrest",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ResultURL string `json:"resultUrl"`
		Prompt    string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "http://result/c.png", resp.ResultURL)
	assert.Contains(t, resp.Prompt, "deep blue")
	assert.Contains(t, resp.Prompt, "backrest")
}
