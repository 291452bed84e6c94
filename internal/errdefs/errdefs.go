// Package errdefs defines the error taxonomy shared across the skiff
// runtime. Every operation either completes or fails with one of these
// kinds; the command dispatcher maps each kind to a single formatted error
// line and a non-zero exit status.
package errdefs

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError indicates malformed, missing or invalid configuration,
// including a failed environment interpolation.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NotFoundError indicates that no matching server or resource exists.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found", e.Resource)
}

// CommandError indicates a remote command that executed but returned a
// non-zero exit code. It carries the exit code and the captured output.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
}

// APIError indicates a failed call to an external provider API.
type APIError struct {
	Provider   string
	StatusCode int
	Code       string
	Err        error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s api error", e.Provider)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Code != "" {
		msg += fmt.Sprintf(" (code %s)", e.Code)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

// UnreadyPod identifies one pod that was still unready when a rollout
// deadline elapsed.
type UnreadyPod struct {
	Name  string
	Phase string
}

// TimeoutError indicates the rollout deadline elapsed before every requested
// deployment became ready. Unready enumerates the pods still not ready at
// the deadline, for diagnosis.
type TimeoutError struct {
	Unready []UnreadyPod
}

func (e *TimeoutError) Error() string {
	if len(e.Unready) == 0 {
		return "rollout timed out: no matching pods found"
	}
	pods := make([]string, 0, len(e.Unready))
	for _, p := range e.Unready {
		pods = append(pods, fmt.Sprintf("%s (%s)", p.Name, p.Phase))
	}
	return fmt.Sprintf("rollout timed out, unready pods: %s", strings.Join(pods, ", "))
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsCommand reports whether err is a remote command failure.
func IsCommand(err error) bool {
	var e *CommandError
	return errors.As(err, &e)
}

// IsAPI reports whether err is an external provider failure.
func IsAPI(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsTimeout reports whether err is a rollout deadline failure.
func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}
