package ghtoken

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/go-github/v45/github"
	"go.uber.org/zap"

	"github.com/telia-oss/ghtoken/eventctx"
)

// Revoker revokes installation tokens.
//
//counterfeiter:generate . Revoker
type Revoker interface {
	Revoke(ctx context.Context, token string) error
}

// Issuer creates and revokes installation tokens. It is satisfied by *Service.
//
//counterfeiter:generate . Issuer
type Issuer interface {
	Revoker
	Create(ctx context.Context, app AppCredentials, request *TokenRequest) (*Token, error)
}

var _ Issuer = &Service{}

// New returns a new Service for creating and revoking installation tokens.
func New(options ...Option) *Service {
	s := &Service{
		logger: zap.NewNop(),
	}
	for _, optionFunc := range options {
		optionFunc(s)
	}
	if s.appsClientFactory == nil {
		baseURL := s.baseURL
		s.appsClientFactory = func(appID int64, privateKey []byte) (AppsAPI, error) {
			return NewAppsClient(appID, privateKey, baseURL)
		}
	}
	if s.installationClientFactory == nil {
		baseURL := s.baseURL
		s.installationClientFactory = func(token string) (InstallationAPI, error) {
			return NewInstallationClient(token, baseURL)
		}
	}
	return s
}

// Option for the Service.
type Option func(*Service)

// WithLogger sets the logger used for debug output. Token values are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithBaseURL sets the API URL for Github Enterprise Server, e.g. "https://github.example.com/api/v3/".
func WithBaseURL(url string) Option {
	return func(s *Service) {
		s.baseURL = url
	}
}

// WithAppsClientFactory sets the function used to create clients authenticated as the App, and can be used to return test fakes.
func WithAppsClientFactory(f func(appID int64, privateKey []byte) (AppsAPI, error)) Option {
	return func(s *Service) {
		s.appsClientFactory = f
	}
}

// WithInstallationClientFactory sets the function used to create clients authenticated with an installation token,
// and can be used to return test fakes.
func WithInstallationClientFactory(f func(token string) (InstallationAPI, error)) Option {
	return func(s *Service) {
		s.installationClientFactory = f
	}
}

// Service creates and revokes installation tokens. Every call creates its own client.
type Service struct {
	logger                    *zap.Logger
	baseURL                   string
	appsClientFactory         func(appID int64, privateKey []byte) (AppsAPI, error)
	installationClientFactory func(token string) (InstallationAPI, error)
}

// Create an installation token for the owner in the request.
func (s *Service) Create(ctx context.Context, app AppCredentials, request *TokenRequest) (*Token, error) {
	if request == nil || request.Owner == "" {
		return nil, fmt.Errorf("%q must be defined", "owner")
	}
	appID, err := strconv.ParseInt(app.AppID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse app id: %w", err)
	}
	client, err := s.appsClientFactory(appID, []byte(app.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("create apps client: %w", err)
	}
	log := s.logger.With(zap.String("app", app.AppID), zap.String("owner", request.Owner))

	installation, err := s.findInstallation(ctx, client, request)
	if err != nil {
		return nil, err
	}
	id := installation.GetID()
	log.Debug("found installation", zap.Int64("installation_id", id))

	permissions, err := request.Permissions.installationPermissions()
	if err != nil {
		return nil, &TokenCreationError{InstallationID: id, Err: err}
	}

	eventctx.GetStats(ctx).IncGithubCalls()
	token, _, err := client.CreateInstallationToken(ctx, id, &github.InstallationTokenOptions{
		Repositories: request.Repositories,
		Permissions:  permissions,
	})
	if err != nil {
		if isAPIError(err) {
			return nil, &TokenCreationError{InstallationID: id, Err: err}
		}
		return nil, fmt.Errorf("create token: %w", err)
	}

	expiresAt := token.GetExpiresAt().Format(time.RFC3339Nano)
	log.Debug("created installation token",
		zap.Int64("installation_id", id),
		zap.String("expires_at", expiresAt),
		zap.Strings("repositories", request.Repositories),
	)
	return &Token{
		Token:          token.GetToken(),
		ExpiresAt:      expiresAt,
		InstallationID: id,
	}, nil
}

func (s *Service) findInstallation(ctx context.Context, client AppsAPI, request *TokenRequest) (*github.Installation, error) {
	var (
		installation *github.Installation
		err          error
	)
	eventctx.GetStats(ctx).IncGithubCalls()
	if request.Organization {
		installation, _, err = client.FindOrganizationInstallation(ctx, request.Owner)
	} else {
		installation, _, err = client.FindUserInstallation(ctx, request.Owner)
	}
	if err != nil {
		if isAPIError(err) {
			return nil, &InstallationNotFoundError{Owner: request.Owner, Err: err}
		}
		return nil, fmt.Errorf("find installation: %w", err)
	}
	return installation, nil
}

// Revoke the installation token. The token itself is used to authenticate the request.
func (s *Service) Revoke(ctx context.Context, token string) error {
	client, err := s.installationClientFactory(token)
	if err != nil {
		return fmt.Errorf("create installation client: %w", err)
	}
	eventctx.GetStats(ctx).IncGithubCalls()
	if _, err := client.RevokeInstallationToken(ctx); err != nil {
		if isAPIError(err) {
			return &RevocationError{Err: err}
		}
		return fmt.Errorf("revoke token: %w", err)
	}
	s.logger.Debug("revoked installation token")
	return nil
}

// isAPIError returns true if Github responded to the request with an error.
func isAPIError(err error) bool {
	var errorResponse *github.ErrorResponse
	return errors.As(err, &errorResponse)
}

// installationPermissions converts the permissions to the structure expected by the API.
// Unknown permission names are rejected instead of being silently dropped.
func (p Permissions) installationPermissions() (*github.InstallationPermissions, error) {
	if len(p) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal permissions: %w", err)
	}
	d := json.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()

	var permissions github.InstallationPermissions
	if err := d.Decode(&permissions); err != nil {
		return nil, fmt.Errorf("invalid permissions: %w", err)
	}
	return &permissions, nil
}

var defaultService = New()

// Create an installation token using a Service with default options.
func Create(ctx context.Context, app AppCredentials, request *TokenRequest) (*Token, error) {
	return defaultService.Create(ctx, app, request)
}

// Revoke an installation token using a Service with default options.
func Revoke(ctx context.Context, token string) error {
	return defaultService.Revoke(ctx, token)
}
