// Package fixtures implements the operator-facing operations for seeding
// and cleaning fixture data on a hosted FHIR sandbox: bulk-create from a
// JSON file, delete one resource (optionally cascading for patients), and
// list resources by type.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/fhirfix/fhirfix/cli"
	"github.com/fhirfix/fhirfix/fhir"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

// spin wraps in-flight requests with a progress spinner. It is a variable
// so tests can substitute a passthrough.
var spin = cli.Spin

// Config holds the sandbox connection settings read from config.json.
type Config struct {
	// ServerURL is the tenant data endpoint, e.g.
	// "https://api.logicahealth.org/test1thesis/data".
	ServerURL string `json:"server_url"`
	// AccessToken is the bearer token the operator copied from the
	// sandbox login page. The --token flag overrides it per invocation.
	AccessToken string `json:"access_token"`
	// Debug pretty-prints parsed response bundles.
	Debug bool `json:"debug"`
}

// loadConfig reads and parses the configuration file from the given path.
func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config JSON: %w", err)
	}
	if cfg.ServerURL == "" {
		return nil, errors.New("config must set server_url")
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return &cfg, nil
}

// connect loads the config and builds a client. A non-empty token takes
// precedence over the configured access token.
func connect(configPath, token string) (*Config, *fhir.Client, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if token == "" {
		token = cfg.AccessToken
	}
	if token == "" {
		return nil, nil, errors.New("no access token: set access_token in the config or pass --token")
	}
	return cfg, fhir.NewClient(cfg.ServerURL, token), nil
}

// CreateResourcesFromFile reads a JSON fixture file and submits it as one
// batch to the server's base endpoint. Missing files, malformed JSON, and
// transport failures are returned as errors; a rejecting server is
// reported on the console and is not an error.
func CreateResourcesFromFile(configPath, token, filePath string) error {
	cfg, client, err := connect(configPath, token)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("could not read fixture file: %w", err)
	}
	var payload any
	if err := json.Unmarshal(b, &payload); err != nil {
		return fmt.Errorf("could not parse fixture JSON: %w", err)
	}

	var out fhir.Outcome
	err = spin("Creating resources...", func() error {
		var opErr error
		out, opErr = client.CreateBundle(payload)
		return opErr
	})
	if err != nil {
		return err
	}

	if !out.Success {
		fmt.Println(failureStyle.Render("Failed to create batch of resources."))
		fmt.Println("Status code:", out.StatusCode)
		fmt.Println("Response:", string(out.Body))
		return nil
	}

	fmt.Println(successStyle.Render("Batch of resources created successfully."))
	printBody(cfg, out.Body)
	return nil
}

// DeleteResource deletes one resource by type and id. Cascade only takes
// effect for Patient resources; the server ignores it everywhere else, so
// the client does too.
func DeleteResource(configPath, token, resourceType, resourceID string, cascade bool) error {
	_, client, err := connect(configPath, token)
	if err != nil {
		return err
	}

	var status int
	var body []byte
	err = spin(fmt.Sprintf("Deleting %s/%s...", resourceType, resourceID), func() error {
		var opErr error
		status, body, opErr = client.DeleteResource(resourceType, resourceID, cascade)
		return opErr
	})
	if err != nil {
		return err
	}

	fmt.Println(styleForStatus(status).Render(
		fmt.Sprintf("Deleted %s/%s: %d - %s", resourceType, resourceID, status, body)))
	return nil
}

// CascadeDeletePatient deletes a patient together with every resource
// referencing it and prints a formatted status line.
func CascadeDeletePatient(configPath, token, patientID string) error {
	_, client, err := connect(configPath, token)
	if err != nil {
		return err
	}

	var status int
	var body []byte
	err = spin(fmt.Sprintf("Deleting Patient/%s with cascading...", patientID), func() error {
		var opErr error
		status, body, opErr = client.DeleteResource("Patient", patientID, true)
		return opErr
	})
	if err != nil {
		return err
	}

	fmt.Println(styleForStatus(status).Render(
		fmt.Sprintf("Deleted Patient/%s with cascading: %d - %s", patientID, status, body)))
	return nil
}

// ListResources fetches all resources of one type, optionally restricted
// to those referencing a patient.
func ListResources(configPath, token, resourceType, patientID string) error {
	cfg, client, err := connect(configPath, token)
	if err != nil {
		return err
	}

	params := url.Values{}
	if patientID != "" {
		params.Set("patient", "Patient/"+patientID)
	}

	var out fhir.Outcome
	err = spin(fmt.Sprintf("Fetching %s resources...", resourceType), func() error {
		var opErr error
		out, opErr = client.SearchResources(resourceType, params)
		return opErr
	})
	if err != nil {
		return err
	}

	if !out.Success {
		fmt.Println(failureStyle.Render(fmt.Sprintf("Failed to list %s resources.", resourceType)))
		fmt.Println("Status code:", out.StatusCode)
		fmt.Println("Response:", string(out.Body))
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s:", resourceType)))
	printBody(cfg, out.Body)
	return nil
}

// printBody emits a response body, pretty-printed when debug is on.
func printBody(cfg *Config, body []byte) {
	if cfg.Debug {
		var parsed any
		if err := json.Unmarshal(body, &parsed); err == nil {
			pp.Println(parsed)
			return
		}
	}
	fmt.Println(string(body))
}

// styleForStatus colors delete report lines by status class.
func styleForStatus(status int) lipgloss.Style {
	if status >= 200 && status < 300 {
		return successStyle
	}
	return failureStyle
}
