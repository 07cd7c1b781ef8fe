package ghtoken

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation"
	"github.com/google/go-github/v45/github"
	"github.com/telia-oss/githubapp"
	"golang.org/x/oauth2"
)

// AppsAPI wraps the Github Apps API when authenticated as the App.
//
//counterfeiter:generate . AppsAPI
type AppsAPI interface {
	FindUserInstallation(ctx context.Context, user string) (*github.Installation, *github.Response, error)
	FindOrganizationInstallation(ctx context.Context, org string) (*github.Installation, *github.Response, error)
	CreateInstallationToken(ctx context.Context, id int64, opts *github.InstallationTokenOptions) (*github.InstallationToken, *github.Response, error)
}

// InstallationAPI wraps the Github Apps API when authenticated with an installation token.
//
//counterfeiter:generate . InstallationAPI
type InstallationAPI interface {
	RevokeInstallationToken(ctx context.Context) (*github.Response, error)
}

// NewAppsClient returns a client for a Github App authenticated with a private key. A JWT is
// signed for every request. When baseURL is empty the client talks to github.com.
func NewAppsClient(appID int64, privateKey []byte, baseURL string) (AppsAPI, error) {
	transport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, appID, privateKey)
	if err != nil {
		return nil, err
	}
	client, err := newClient(&http.Client{Transport: transport}, baseURL)
	if err != nil {
		return nil, err
	}
	return client.Apps, nil
}

// NewInstallationClient returns a client authenticated with an installation token.
func NewInstallationClient(token, baseURL string) (InstallationAPI, error) {
	if baseURL == "" {
		return githubapp.NewInstallationClient(token).V3.Apps, nil
	}
	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	client, err := newClient(httpClient, baseURL)
	if err != nil {
		return nil, err
	}
	return client.Apps, nil
}

func newClient(httpClient *http.Client, baseURL string) (*github.Client, error) {
	if baseURL == "" {
		return github.NewClient(httpClient), nil
	}
	return github.NewEnterpriseClient(baseURL, baseURL, httpClient)
}
