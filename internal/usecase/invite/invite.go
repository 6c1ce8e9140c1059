package invite

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domain "github.com/lacantina/turnos-api/internal/domain/roster"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/models"
	"github.com/lacantina/turnos-api/internal/validators"
)

// TokenCreator mints a single-use invitation token for a profile.
type TokenCreator interface {
	Create(ctx context.Context, profileID string) (string, error)
}

// Sender delivers the invitation mail.
type Sender interface {
	SendInvite(email, fullName, token string) error
}

type InviteEmployeeInput struct {
	Email    string
	FullName string
	Role     string
	JobRole  string
}

type InviteEmployeeResult struct {
	ProfileID string
	JobRole   string
}

// InviteEmployee creates the profile row, mints an invitation token and
// mails the activation link. The account stays password-less until the
// invitation is accepted.
type InviteEmployee struct {
	repo   domain.Repository
	tokens TokenCreator
	sender Sender

	// checkDomain is swappable because the real check hits DNS.
	checkDomain func(string) bool
}

func NewInviteEmployee(
	repo domain.Repository,
	tokens TokenCreator,
	sender Sender,
) *InviteEmployee {
	return &InviteEmployee{
		repo:        repo,
		tokens:      tokens,
		sender:      sender,
		checkDomain: validators.IsEmailDomainValid,
	}
}

func (uc *InviteEmployee) Execute(
	ctx context.Context,
	in InviteEmployeeInput,
) (*InviteEmployeeResult, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, httperr.ErrBusiness("missing_email", "Email requerido.")
	}
	if !uc.checkDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain", "El dominio del email no parece válido.")
	}

	role := in.Role
	if role != "admin" {
		role = "employee"
	}
	jobRole := domain.NormalizeJobRole(in.JobRole)

	existing, err := uc.repo.GetProfileByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("email_taken", "Ya existe un empleado con ese email.")
	}

	profile := &models.Profile{
		ID:      uuid.NewString(),
		Email:   email,
		Role:    role,
		JobRole: jobRole,
	}
	if in.FullName != "" {
		name := in.FullName
		profile.FullName = &name
	}

	if err := uc.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Create(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.sender.SendInvite(email, in.FullName, token); err != nil {
		return nil, httperr.ErrBusiness("invite_mail_failed", "No se pudo enviar la invitación.")
	}

	return &InviteEmployeeResult{ProfileID: profile.ID, JobRole: jobRole}, nil
}
