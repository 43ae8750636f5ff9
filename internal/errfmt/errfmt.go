// Package errfmt turns any failed backend call into one user-presentable
// sentence. Handlers never show raw error text to visitors.
package errfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
)

const networkMessage = "Network error - please check your connection"

var statusMessages = map[int]string{
	400: "Bad request - please check your input",
	401: "Unauthorized - please log in again",
	403: "Forbidden - you do not have permission to perform this action",
	404: "Not found - the requested resource was not found",
	409: "Conflict - the request could not be completed due to a conflict",
	500: "Internal server error - please try again later",
	502: "Bad gateway - please try again later",
	503: "Service unavailable - please try again later",
}

// Format converts err into a display string. HTTP failures with a known
// status map to a fixed sentence; otherwise the server-provided payload is
// probed for a message; transport failures report connectivity; anything
// else falls back to the error's own text. The first letter is always
// uppercased.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return capitalize(message(err))
}

func message(err error) string {
	var re *api.RequestError
	if errors.As(err, &re) {
		if msg, ok := statusMessages[re.Status]; ok {
			return msg
		}
		if msg := fromPayload(re.Payload()); msg != "" {
			return msg
		}
		return fmt.Sprintf("HTTP %d - an error occurred", re.Status)
	}
	if errors.Is(err, api.ErrNetwork) {
		return networkMessage
	}
	return err.Error()
}

// fromPayload extracts a message from a structured error body: a detail
// field, then a message field, then the first entry of the first
// array-valued field (DRF field-level validation errors), then the
// serialized body.
func fromPayload(payload map[string]any) string {
	if payload == nil {
		return ""
	}
	if s, ok := payload["detail"].(string); ok && s != "" {
		return s
	}
	if s, ok := payload["message"].(string); ok && s != "" {
		return s
	}
	for _, v := range payload {
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			continue
		}
		if s, ok := list[0].(string); ok && s != "" {
			return s
		}
	}
	if b, err := json.Marshal(payload); err == nil {
		return string(b)
	}
	return "An error occurred"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
