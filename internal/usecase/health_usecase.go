package usecase

import (
	"context"

	"marketing-site-backend/pkg/email"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sender email.Sender
}

func NewHealthUsecase(sender email.Sender) HealthUsecase {
	return &healthUsecase{sender: sender}
}

// Check never fails the probe on missing email credentials; the contact
// endpoint reports that on its own.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	emailStatus := "configured"
	if u.sender == nil || !u.sender.Configured() {
		emailStatus = "not_configured"
	}
	return map[string]string{
		"status": "ok",
		"email":  emailStatus,
	}
}
