package gdctl

import (
	"github.com/rileyhilliard/gms/internal/errors"
	"github.com/rileyhilliard/gms/internal/logger"
)

// Client is the high-level gdctl interface the rest of gms talks to.
type Client struct {
	runner Runner
	log    logger.Logger
}

// NewClient creates a Client that shells out to the given gdctl binary.
func NewClient(binary string) *Client {
	return NewClientWithRunner(NewRunner(binary))
}

// NewClientWithRunner creates a Client with a custom Runner (fakes in tests).
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r, log: logger.NewEnvLogger("[gdctl]")}
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(l logger.Logger) {
	c.log = l
}

// Show returns the raw "gdctl show" text: the current configuration.
func (c *Client) Show() (string, error) {
	result, err := c.runner.Run("show")
	if err != nil {
		return "", err
	}
	if !result.Ok() {
		return "", errors.NewGdctlFailure("Reading current configuration", result.Stderr)
	}
	return result.Stdout, nil
}

// ShowModes returns the raw "gdctl show --modes" text: the verbose listing
// including every mode each monitor advertises.
func (c *Client) ShowModes() (string, error) {
	result, err := c.runner.Run("show", "--modes")
	if err != nil {
		return "", err
	}
	if !result.Ok() {
		return "", errors.NewGdctlFailure("Listing monitor modes", result.Stderr)
	}
	return result.Stdout, nil
}

// Monitors queries gdctl and returns the connected monitors with their mode
// lists and, when determinable, their active modes. Failure to read current
// modes degrades to monitors without a Current annotation.
func (c *Client) Monitors() ([]Monitor, error) {
	modesOut, err := c.ShowModes()
	if err != nil {
		return nil, err
	}
	monitors := ParseMonitors(modesOut)

	showOut, err := c.Show()
	if err != nil {
		c.log.Warn("could not determine current modes: %v", err)
		return monitors, nil
	}
	MergeCurrentModes(monitors, ParseCurrentModes(showOut))

	return monitors, nil
}

// ConnectedIDs returns the IDs of currently connected monitors.
func (c *Client) ConnectedIDs() ([]string, error) {
	out, err := c.Show()
	if err != nil {
		return nil, err
	}
	return ParseConnectedIDs(out), nil
}

// Apply executes a set request. On non-zero exit the returned error carries
// gdctl's stderr text; the Result is returned either way so callers can
// inspect the failure text for declared fallback retries.
func (c *Client) Apply(req SetRequest) (Result, error) {
	args := req.Args()
	c.log.Debug("gdctl %v", args)

	result, err := c.runner.Run(args...)
	if err != nil {
		return result, err
	}
	if !result.Ok() {
		return result, errors.NewGdctlFailure("Applying configuration", result.Stderr)
	}
	return result, nil
}
