package service

import (
	"errors"
	"fmt"
	"strings"

	"git.sr.ht/~jakintosh/warrant/internal/database"
	"github.com/google/uuid"
)

// ExternalIdentity is a provider-verified identity assertion. Email is the
// natural key used to resolve it to a local account.
type ExternalIdentity struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

// LoginWithExternalIdentity resolves a verified external identity to a local
// account, creating one on first contact, and issues a token pair.
// Existing accounts get the external id and avatar backfilled when absent.
func (s *Service) LoginWithExternalIdentity(
	identity ExternalIdentity,
) (
	*database.User,
	*TokenPair,
	error,
) {
	user, err := s.resolveExternalIdentity(identity)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.IssueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

func (s *Service) resolveExternalIdentity(
	identity ExternalIdentity,
) (
	*database.User,
	error,
) {
	if identity.Email == "" {
		return nil, fmt.Errorf("%w: external identity carries no email", ErrInternal)
	}

	user, err := s.users.GetUserByEmail(identity.Email)
	if errors.Is(err, database.ErrNotFound) {
		return s.createFromExternalIdentity(identity)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve user: %v", ErrInternal, err)
	}

	// backfill linkage on accounts that predate the external login
	googleID := ""
	if user.GoogleID == "" {
		googleID = identity.ID
	}
	avatar := ""
	if user.Avatar == "" {
		avatar = identity.Avatar
	}
	if googleID != "" || avatar != "" {
		if err := s.users.LinkExternalIdentity(user.ID, googleID, avatar); err != nil {
			return nil, fmt.Errorf("%w: failed to link external identity: %v", ErrInternal, err)
		}
		if googleID != "" {
			user.GoogleID = googleID
		}
		if avatar != "" {
			user.Avatar = avatar
		}
	}

	return user, nil
}

func (s *Service) createFromExternalIdentity(
	identity ExternalIdentity,
) (
	*database.User,
	error,
) {
	name := identity.Name
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}

	user := &database.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    identity.Email,
		GoogleID: identity.ID,
		Avatar:   identity.Avatar,
	}
	if err := s.users.InsertUser(user); err != nil {
		return nil, fmt.Errorf("%w: failed to insert user: %v", ErrInternal, err)
	}

	s.log.WithField("user", user.ID).Info("created account from external identity")
	return user, nil
}
