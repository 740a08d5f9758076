package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

var errGoogleSubjectMismatch = errors.New("google userinfo subject does not match the ID token")

// googleUserInfoFromClaims reads the verified identity out of ID token claims.
// Missing or mistyped claims leave the zero value.
func googleUserInfoFromClaims(subject string, claims map[string]any) domain.GoogleUserInfo {
	info := domain.GoogleUserInfo{Subject: subject}
	info.Email, _ = claims["email"].(string)
	info.Name, _ = claims["name"].(string)
	switch v := claims["email_verified"].(type) {
	case bool:
		info.EmailVerified = v
	case string:
		info.EmailVerified = v == "true"
	}
	return info
}

// resolveGoogleUser builds the identity from the ID token and falls back to
// the userinfo endpoint when the token carries no email claim.
func resolveGoogleUser(ctx context.Context, oauth portssvc.GoogleOAuthHandlerSvcFacade, token *oauth2.Token, payload *idtoken.Payload) (domain.GoogleUserInfo, error) {
	info := googleUserInfoFromClaims(payload.Subject, payload.Claims)
	if info.Email != "" {
		return info, nil
	}
	fetched, err := oauth.GetUserInfo(ctx, token)
	if err != nil {
		return info, fmt.Errorf("failed to load google userinfo: %w", err)
	}
	if fetched.Subject != info.Subject {
		return info, errGoogleSubjectMismatch
	}
	info.Email = fetched.Email
	info.EmailVerified = fetched.EmailVerified
	if info.Name == "" {
		info.Name = fetched.Name
	}
	return info, nil
}
