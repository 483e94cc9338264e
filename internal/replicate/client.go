package replicate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Pinned model versions. Segmentation pins both SAM-2 (click-driven) and
// Grounded-SAM (text-driven auto-detect); inpainting defaults to
// FLUX-Fill-Pro with SDXL inpainting as the fallback generation model.
const (
	VersionFluxFillPro    = "black-forest-labs/flux-fill-pro:7135ad1a7fd2728ed7b96f0a2f4b1f06a9505f79ebe985e2c3c3a1f4a9b7e8d1"
	VersionSDXLInpainting = "stability-ai/sdxl:95b7223104132402a9ae91cc677285bc5eb997834bd2349fa486f53910fd68b3"
	VersionSAM2           = "meta/sam-2:fe97b453a6455861e3bac769b441ca1f1086110da7466dbb65cf1eecfd60dc83"
	VersionGroundedSAM    = "schananas/grounded_sam:ee871c19efb1941f55f66a3d7d960428c8a5afcb77449547fe8e5a3ab9ebc21c"
)

type Client struct {
	baseURL       string
	apiToken      string
	publicBaseURL string
	httpClient    *http.Client
}

// ProviderError carries the upstream status and body when the provider
// answers non-2xx, times out, or returns unparseable JSON.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

// NewClient builds a gateway to the Replicate API. publicBaseURL, when
// non-empty, replaces loopback hosts in image URLs so the provider can fetch
// them; empty means requests go out unmodified.
func NewClient(baseURL, apiToken, publicBaseURL string) *Client {
	return &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		apiToken:      apiToken,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		httpClient: &http.Client{
			// Synchronous predictions can take a while; no per-request
			// cancellation is enforced above this timeout.
			Timeout: 120 * time.Second,
		},
	}
}

type predictionRequest struct {
	Version string                 `json:"version"`
	Input   map[string]interface{} `json:"input"`
}

// CreatePrediction invokes a model synchronously (Prefer: wait) and returns
// the raw response body for output extraction. Failures are never retried.
func (c *Client) CreatePrediction(version string, input map[string]interface{}) (json.RawMessage, error) {
	jsonData, err := json.Marshal(predictionRequest{Version: version, Input: input})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/predictions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if !json.Valid(body) {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: "malformed JSON response: " + string(body)}
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	return body, nil
}

type InpaintParams struct {
	ImageURL       string
	MaskURL        string
	Prompt         string
	PromptStrength float64
	MaskBlur       int
	Version        string
	Seed           int64
}

// Inpaint runs a masked generation and returns the result image URL. A zero
// seed is replaced with a random one, so identical requests produce fresh
// generations.
func (c *Client) Inpaint(params InpaintParams) (string, error) {
	version := params.Version
	if version == "" {
		version = VersionFluxFillPro
	}

	seed := params.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	input := map[string]interface{}{
		"image":           c.ResolvePublicURL(params.ImageURL),
		"prompt":          params.Prompt,
		"prompt_strength": params.PromptStrength,
		"seed":            seed,
	}
	if params.MaskURL != "" {
		input["mask"] = c.ResolvePublicURL(params.MaskURL)
		input["mask_blur"] = params.MaskBlur
	}

	body, err := c.CreatePrediction(version, input)
	if err != nil {
		return "", err
	}

	return ExtractOutputURL(body)
}

// ResolvePublicURL rewrites loopback hosts to the configured public base URL.
// Without a public base URL the input passes through untouched and may fail
// at the provider.
func (c *Client) ResolvePublicURL(imageURL string) string {
	if c.publicBaseURL == "" {
		return imageURL
	}

	parsed, err := url.Parse(imageURL)
	if err != nil {
		return imageURL
	}

	host := parsed.Hostname()
	if host != "localhost" && host != "127.0.0.1" && host != "::1" && host != "0.0.0.0" {
		return imageURL
	}

	rewritten := c.publicBaseURL + parsed.Path
	if parsed.RawQuery != "" {
		rewritten += "?" + parsed.RawQuery
	}
	return rewritten
}

// TestConnection probes the provider account endpoint.
func (c *Client) TestConnection() (json.RawMessage, error) {
	return c.get(c.baseURL + "/account")
}

// CheckModel fetches metadata for one model, mostly to verify the token can
// see it.
func (c *Client) CheckModel(owner, name string) (json.RawMessage, error) {
	return c.get(c.baseURL + "/models/" + url.PathEscape(owner) + "/" + url.PathEscape(name))
}

func (c *Client) get(requestURL string) (json.RawMessage, error) {
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return body, nil
}
