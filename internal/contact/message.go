// Package contact validates contact-form submissions, throttles them per
// client and forwards them to the hosted email relay.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalid marks a submission rejected by validation.
	ErrInvalid = errors.New("invalid contact message")
	// ErrThrottled is returned when a client sent too many messages.
	ErrThrottled = errors.New("too many contact messages")
	// ErrRelay wraps every failure to hand a message to the relay.
	ErrRelay = errors.New("email relay failed")
)

const (
	MaxNameLen    = 100
	MaxSubjectLen = 200
	MaxMessageLen = 5000
)

// Message is one contact-form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ValidationError lists the offending fields. It matches ErrInvalid.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("%v: %s", ErrInvalid, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks a normalized message. Subject is optional.
func (m Message) Validate() error {
	fields := map[string]string{}

	switch {
	case m.Name == "":
		fields["name"] = "required"
	case utf8.RuneCountInString(m.Name) > MaxNameLen:
		fields["name"] = fmt.Sprintf("at most %d characters", MaxNameLen)
	}

	if m.Email == "" {
		fields["email"] = "required"
	} else if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		fields["email"] = "not a valid address"
	}

	if utf8.RuneCountInString(m.Subject) > MaxSubjectLen {
		fields["subject"] = fmt.Sprintf("at most %d characters", MaxSubjectLen)
	}

	switch {
	case m.Message == "":
		fields["message"] = "required"
	case utf8.RuneCountInString(m.Message) > MaxMessageLen:
		fields["message"] = fmt.Sprintf("at most %d characters", MaxMessageLen)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
