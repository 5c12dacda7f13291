// Package fhir is a thin bearer-token client for the REST surface of a
// hosted FHIR server. Each method performs exactly one request and hands
// the raw status and body back to the caller; classification beyond
// "created or not" is left to the server's own semantics.
package fhir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client issues authenticated requests against one FHIR data endpoint,
// typically https://<host>/<tenant>/data.
type Client struct {
	// BaseURL is the data endpoint without a trailing slash.
	BaseURL string
	// Token is the opaque bearer credential sent on every request.
	Token string
	// HTTPClient is the transport used for all calls.
	HTTPClient *http.Client
}

// NewClient returns a Client for the given endpoint and bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: http.DefaultClient,
	}
}

// Outcome is the structured result of one request: the raw status code,
// the full response body, and whether the server reported success.
type Outcome struct {
	StatusCode int
	Body       []byte
	Success    bool
}

// newOutcome classifies a response. The batch endpoint answers 200 for a
// processed transaction and 201 for a plain create; everything else is a
// reportable failure.
func newOutcome(statusCode int, body []byte) Outcome {
	return Outcome{
		StatusCode: statusCode,
		Body:       body,
		Success:    statusCode == http.StatusOK || statusCode == http.StatusCreated,
	}
}

// CreateBundle submits a batch/transaction bundle to the base endpoint.
// The payload is the already-parsed fixture document and is re-encoded as
// the POST body.
func (c *Client) CreateBundle(payload any) (Outcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{}, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return Outcome{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("POST %s: %w", c.BaseURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading response: %w", err)
	}
	return newOutcome(resp.StatusCode, respBody), nil
}

// DeleteResource deletes one resource identified by type and id. When
// cascade is true and the type is Patient, the server is asked to also
// delete every resource referencing the patient; cascade is ignored for
// all other types.
func (c *Client) DeleteResource(resourceType, resourceID string, cascade bool) (int, []byte, error) {
	u := c.BaseURL + "/" + resourceType + "/" + resourceID
	if cascade && resourceType == "Patient" {
		u += "?_cascade=delete"
	}

	req, err := http.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("DELETE %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// SearchResources performs a GET search over one resource type, for
// example SearchResources("Immunization", url.Values{"patient":
// {"Patient/691"}}).
func (c *Client) SearchResources(resourceType string, params url.Values) (Outcome, error) {
	u := c.BaseURL + "/" + resourceType
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading response: %w", err)
	}
	return newOutcome(resp.StatusCode, body), nil
}
