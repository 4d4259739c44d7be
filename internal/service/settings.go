package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/engr401-groot-ai/notification-system-server/internal/repository"
)

// emailPattern mirrors the address check the dashboard relies on: something
// before and after the @, and a dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+`)

// ValidationError carries a user-facing message for a rejected settings field.
// The message text is part of the API contract; the dashboard displays it verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SettingsView is the settings document as the dashboard edits it:
// recipients flattened to a CSV string for the text input.
type SettingsView struct {
	Sender     string `json:"sender"`
	Password   string `json:"password"`
	Recipients string `json:"recipients"`
}

// UpdateSettingsRequest is a partial settings update. Nil fields were absent
// from the request body and must be left untouched.
type UpdateSettingsRequest struct {
	Sender     *string `json:"sender"`
	Password   *string `json:"password"`
	Recipients *string `json:"recipients"`
}

// SettingsService defines the use cases for notification settings.
type SettingsService interface {
	// Get returns the current settings, with empty fields if the document
	// has never been written.
	Get(ctx context.Context) (*SettingsView, error)

	// Update validates and persists the supplied fields. Field rejections are
	// returned as *ValidationError; nothing is written in that case.
	Update(ctx context.Context, req UpdateSettingsRequest) error
}

// settingsService is a concrete implementation of SettingsService.
type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService constructs a new SettingsService.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*SettingsView, error) {
	stored, err := s.repo.Fetch(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return &SettingsView{}, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &SettingsView{
		Sender:     stored.Sender,
		Password:   stored.Password,
		Recipients: strings.Join(stored.Recipients, ","),
	}, nil
}

func (s *settingsService) Update(ctx context.Context, req UpdateSettingsRequest) error {
	var upd repository.SettingsUpdate

	if req.Sender != nil {
		val := strings.TrimSpace(*req.Sender)
		if !emailPattern.MatchString(val) || strings.Contains(val, ",") {
			return &ValidationError{Message: "Sender must be a single valid email address."}
		}
		upd.Sender = &val
	}

	if req.Password != nil {
		val := strings.TrimSpace(*req.Password)
		if strings.ContainsFunc(val, unicode.IsSpace) {
			return &ValidationError{Message: "Password must not contain whitespaces."}
		}
		// An empty password means "keep the current one".
		if val != "" {
			upd.Password = &val
		}
	}

	if req.Recipients != nil {
		val := strings.TrimSpace(*req.Recipients)
		if strings.Contains(val, " ") {
			return &ValidationError{Message: "Recipients must be comma-separated with NO spaces."}
		}

		list := splitRecipients(val)
		for _, email := range list {
			if !strings.Contains(email, "@") {
				return &ValidationError{Message: fmt.Sprintf("Invalid email in recipients: %s", email)}
			}
		}
		upd.Recipients = &list
	}

	if upd.IsEmpty() {
		return nil
	}

	if err := s.repo.Save(ctx, upd); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

// splitRecipients turns a CSV string into a list, trimming entries and
// dropping empties. An empty input yields an empty (not nil) list so the
// stored array is cleared, not left unset.
func splitRecipients(val string) []string {
	list := []string{}
	for _, entry := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
