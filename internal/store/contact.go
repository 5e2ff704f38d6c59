// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"github.com/google/uuid"

	"skillforge/internal/models"
)

// ListMessages returns a snapshot of all contact messages, newest first.
func (s *Store) ListMessages() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// FindMessage retrieves a message by ID. Returns nil if not found.
func (s *Store) FindMessage(id string) *models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.messages {
		if m.ID == id {
			out := m
			return &out
		}
	}
	return nil
}

// CreateMessage records a contact form submission. The ID and creation
// timestamp are assigned here and the read flag starts false, whatever
// the caller supplied. New messages are prepended so listings stay
// newest-first.
func (s *Store) CreateMessage(m models.ContactMessage) models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	m.Read = false

	s.messages = append([]models.ContactMessage{m}, s.messages...)
	return m
}

// MarkMessageRead sets the read flag of an existing message and leaves
// every other field untouched. Returns nil if no message has the given ID.
func (s *Store) MarkMessageRead(id string, read bool) *models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = read
			out := s.messages[i]
			return &out
		}
	}
	return nil
}

// DeleteMessage removes a message by ID, reporting whether a removal
// actually occurred.
func (s *Store) DeleteMessage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.messages {
		if m.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true
		}
	}
	return false
}
