package service

import (
	"context"
	"fmt"
	"net/http"
	"road_scholar_backend/internal/config"
	"road_scholar_backend/internal/util"
	"time"

	"github.com/go-resty/resty/v2"
)

// GoogleProfile is the subset of Google's tokeninfo payload used for sign-in.
type GoogleProfile struct {
	Subject    string `json:"sub"`
	Audience   string `json:"aud"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// GoogleVerifier checks Google ID tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	Client       *resty.Client
	ClientID     string
	TokenInfoURL string
}

func NewGoogleVerifier(cfg *config.GoogleConfig) *GoogleVerifier {
	return &GoogleVerifier{
		Client:       resty.New().SetTimeout(10 * time.Second),
		ClientID:     cfg.ClientID,
		TokenInfoURL: cfg.TokenInfoURL,
	}
}

// Verify resolves idToken to a profile. The token must have been issued for ClientID.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	var profile GoogleProfile
	resp, err := v.Client.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		SetResult(&profile).
		Get(v.TokenInfoURL)
	if err != nil {
		return nil, fmt.Errorf("google tokeninfo: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, util.Denied("invalid Google token")
	}
	if v.ClientID == "" || profile.Audience != v.ClientID {
		return nil, util.Denied("invalid Google client id")
	}
	if profile.Subject == "" || profile.Email == "" {
		return nil, util.Denied("incomplete Google profile")
	}
	return &profile, nil
}
