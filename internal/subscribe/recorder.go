// Package subscribe validates and records email/phone signups from the
// public site.
package subscribe

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pigsheadbbq/site/internal/domain"
	"github.com/pigsheadbbq/site/internal/events"
	apperrors "github.com/pigsheadbbq/site/pkg/util"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9+()\-. ]+$`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

var affirmative = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"on":   true,
}

// Recorder appends validated signups to a newline-delimited JSON log and
// publishes an event for each stored record.
type Recorder struct {
	logPath    string
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      func() time.Time
}

// NewRecorder builds a recorder. dispatcher may be nil to disable event
// publication; clock may be nil to use time.Now.
func NewRecorder(logPath string, dispatcher events.Dispatcher, logger *zap.Logger, clock func() time.Time) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	return &Recorder{
		logPath:    logPath,
		dispatcher: dispatcher,
		logger:     logger,
		clock:      clock,
	}
}

// Record validates the submitted fields, appends a subscription line to the
// log and publishes a subscription_created event. Validation failures return
// a VALIDATION_FAILED error with a field-specific message and nothing is
// stored; append failures return a STORAGE_FAILURE error. Event handlers run
// after a successful append and cannot fail the request.
func (r *Recorder) Record(ctx context.Context, email, phone, consent, sourcePage string) (*domain.Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("Please enter a valid email address.", nil)
	}

	phone = strings.TrimSpace(phone)
	if phone != "" {
		digits := len(digitPattern.FindAllString(phone, -1))
		if !phonePattern.MatchString(phone) || digits < 10 {
			return nil, apperrors.NewValidationError("Please enter a valid phone number or leave it blank.", nil)
		}
	}

	if !affirmative[strings.ToLower(strings.TrimSpace(consent))] {
		return nil, apperrors.NewValidationError("Please confirm you agree to receive updates.", nil)
	}

	record := &domain.Subscription{
		ID:         uuid.NewString(),
		Timestamp:  r.clock().UTC(),
		Email:      email,
		Phone:      phone,
		Consent:    true,
		SourcePage: strings.TrimSpace(sourcePage),
	}

	if err := r.append(record); err != nil {
		r.logger.Error("subscription append failed", zap.Error(err))
		return nil, apperrors.NewStorageFailure(err)
	}

	if r.dispatcher != nil {
		_ = r.dispatcher.Publish(ctx, events.Event{
			ID:        record.ID,
			Type:      events.EventSubscriptionCreated,
			Timestamp: record.Timestamp,
			Payload:   record,
		})
	}

	return record, nil
}

func (r *Recorder) append(record *domain.Subscription) error {
	if err := os.MkdirAll(filepath.Dir(r.logPath), 0o755); err != nil {
		return err
	}

	line, err := json.Marshal(record)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(r.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return err
	}
	return file.Sync()
}
