package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/telia-oss/ghtoken"
	"github.com/telia-oss/ghtoken/backend/file"
	"github.com/telia-oss/ghtoken/backend/s3"
	"github.com/telia-oss/ghtoken/eventctx"
	"github.com/telia-oss/ghtoken/store/inprocess"
	"github.com/telia-oss/ghtoken/store/secretsmanager"
	"github.com/telia-oss/ghtoken/store/ssm"

	"github.com/alecthomas/kingpin"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Type definitions that allow us to reuse the CLI (flags and setup) between binaries, and
// also so we can pass in test fakes during testing.
type (
	runFunc          func(*ghtoken.Manager, ghtoken.StateBackend, RunConfig) error
	issuerFactory    func(logger *zap.Logger, baseURL string) ghtoken.Issuer
	awsClientFactory func() (s3.S3API, ssm.SSMAPI, secretsmanager.SecretsManagerAPI)
	loggerFactory    func(bool) (*zap.Logger, error)
)

// RunConfig is passed to the runFunc of a run command.
type RunConfig struct {
	Logger *zap.Logger
}

// Globals holds the flags shared by all commands.
type Globals struct {
	AppID          string
	PrivateKey     string
	PrivateKeyFile string
	BaseURL        string
	Debug          bool
}

// AddGlobalFlags registers the flags for authenticating as a Github App.
func AddGlobalFlags(app *kingpin.Application) *Globals {
	g := &Globals{}
	app.Flag("app-id", "Github App ID").StringVar(&g.AppID)
	app.Flag("private-key", "PEM encoded private key for the Github App").StringVar(&g.PrivateKey)
	app.Flag("private-key-file", "Path to the private key for the Github App").StringVar(&g.PrivateKeyFile)
	app.Flag("github-base-url", "API URL for Github Enterprise Server").StringVar(&g.BaseURL)
	app.Flag("debug", "Enable debug logging").BoolVar(&g.Debug)
	return g
}

// Credentials returns the App credentials, reading the private key from file when it was not given directly.
func (g *Globals) Credentials() (ghtoken.AppCredentials, error) {
	if g.AppID == "" {
		return ghtoken.AppCredentials{}, fmt.Errorf("%q must be defined", "app-id")
	}
	key := g.PrivateKey
	if key == "" {
		if g.PrivateKeyFile == "" {
			return ghtoken.AppCredentials{}, errors.New("one of \"private-key\" or \"private-key-file\" must be defined")
		}
		b, err := os.ReadFile(g.PrivateKeyFile)
		if err != nil {
			return ghtoken.AppCredentials{}, fmt.Errorf("read private key: %w", err)
		}
		key = string(b)
	}
	return ghtoken.AppCredentials{AppID: g.AppID, PrivateKey: key}, nil
}

// createOutput is written to stdout by the create command.
type createOutput struct {
	Token          string `json:"token"`
	ExpiresAt      string `json:"expires_at"`
	InstallationID int64  `json:"installation_id"`
}

// AddTokenCommands registers the create, revoke and expired commands.
func AddTokenCommands(app *kingpin.Application, g *Globals, stdout io.Writer, newIssuer issuerFactory, newLogger loggerFactory) {
	if newIssuer == nil {
		newIssuer = defaultIssuer
	}
	if newLogger == nil {
		newLogger = defaultLogger
	}

	var (
		create       = app.Command("create", "Create an installation token.")
		owner        = create.Flag("owner", "User or organization where the App is installed").Required().String()
		organization = create.Flag("organization", "Look up the installation for an organization").Bool()
		repositories = create.Flag("repository", "Repository the token should be scoped to (repeatable)").Strings()
		permissions  = create.Flag("permission", "Permission for the token as name=level (repeatable)").StringMap()
	)
	create.Action(func(_ *kingpin.ParseContext) error {
		logger, err := newLogger(g.Debug)
		if err != nil {
			return fmt.Errorf("initialize zap logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		creds, err := g.Credentials()
		if err != nil {
			return err
		}
		request := &ghtoken.TokenRequest{
			Owner:        *owner,
			Organization: *organization,
			Repositories: *repositories,
		}
		if len(*permissions) > 0 {
			request.Permissions = ghtoken.Permissions(*permissions)
		}

		token, err := newIssuer(logger, g.BaseURL).Create(context.Background(), creds, request)
		if err != nil {
			return err
		}
		return json.NewEncoder(stdout).Encode(&createOutput{
			Token:          token.Token,
			ExpiresAt:      token.ExpiresAt,
			InstallationID: token.InstallationID,
		})
	})

	var (
		revoke = app.Command("revoke", "Revoke an installation token.")
		value  = revoke.Arg("token", "Installation token to revoke").Required().String()
	)
	revoke.Action(func(_ *kingpin.ParseContext) error {
		logger, err := newLogger(g.Debug)
		if err != nil {
			return fmt.Errorf("initialize zap logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		if err := newIssuer(logger, g.BaseURL).Revoke(context.Background(), *value); err != nil {
			return err
		}
		logger.Info("revoked token")
		return nil
	})

	var (
		expired   = app.Command("expired", "Check whether a token with the given expiry has expired.")
		expiresAt = expired.Arg("expires-at", "RFC 3339 expiry timestamp").Required().String()
	)
	expired.Action(func(_ *kingpin.ParseContext) error {
		ok, err := ghtoken.HasExpired(*expiresAt)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, ok)
		return err
	})
}

// AddRunCommand registers a command that sets up a ghtoken.Manager with the configured
// secret store and state backend, and passes them to the runFunc.
func AddRunCommand(app *kingpin.Application, name, help string, g *Globals, run runFunc, newIssuer issuerFactory, newAWSClient awsClientFactory, newLogger loggerFactory) *kingpin.CmdClause {
	var (
		cmd                             = app.Command(name, help)
		secretStoreBackend              = cmd.Flag("secret-store-backend", "Backend to use for secrets").Default(string(ghtoken.Inprocess)).String()
		inprocessStorePathTemplate      = cmd.Flag("inprocess-store-path-template", "Path template to use for the inprocess store").Default("{{ .Namespace }}.{{ .Name }}").String()
		secretsManagerStorePathTemplate = cmd.Flag("secrets-manager-store-path-template", "Path template to use for the secrets manager store").Default("/{{ .Namespace }}/{{ .Name }}").String()
		ssmStorePathTemplate            = cmd.Flag("ssm-store-path-template", "Path template to use for SSM Parameter store").Default("/{{ .Namespace }}/{{ .Name }}").String()
		ssmStoreKMSKeyID                = cmd.Flag("ssm-store-kms-key-id", "KMS key to use for encrypting secrets stored in SSM Parameter store").String()
		stateBackend                    = cmd.Flag("state-backend", "Backend to use for storing state").Default("file").String()
		s3BackendBucket                 = cmd.Flag("s3-backend-bucket", "Bucket name to use for the S3 state backend").String()
		rotationWindow                  = cmd.Flag("rotation-window", "A window in time (duration) where tokens are replaced prior to their expiration").Default("10m").Duration()
	)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		if newIssuer == nil {
			newIssuer = defaultIssuer
		}
		if newAWSClient == nil {
			newAWSClient = defaultAWSClientFactory
		}
		if newLogger == nil {
			newLogger = defaultLogger
		}
		logger, err := newLogger(g.Debug)
		if err != nil {
			return fmt.Errorf("initialize zap logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		creds, err := g.Credentials()
		if err != nil {
			return err
		}

		var store ghtoken.SecretStore
		switch ghtoken.StoreType(*secretStoreBackend) {
		case ghtoken.SecretsManager:
			_, _, client := newAWSClient()
			store = secretsmanager.New(client,
				secretsmanager.WithPathTemplate(*secretsManagerStorePathTemplate),
			)
		case ghtoken.SSM:
			_, client, _ := newAWSClient()
			store = ssm.New(client,
				ssm.WithPathTemplate(*ssmStorePathTemplate),
				ssm.WithKMSKeyID(*ssmStoreKMSKeyID),
			)
		case ghtoken.Inprocess:
			store = inprocess.New(
				inprocess.WithPathTemplate(*inprocessStorePathTemplate),
			)
		default:
			return fmt.Errorf("unknown secret store backend: %q", *secretStoreBackend)
		}

		var backend ghtoken.StateBackend
		switch *stateBackend {
		case "file":
			backend = file.New()
		case "s3":
			if *s3BackendBucket == "" {
				return fmt.Errorf("%q must be defined when using the s3 state backend", "s3-backend-bucket")
			}
			client, _, _ := newAWSClient()
			backend = s3.New(client, *s3BackendBucket)
		default:
			return fmt.Errorf("unknown state backend: %q", *stateBackend)
		}

		m := ghtoken.NewManager(newIssuer(logger, g.BaseURL), store, creds, *rotationWindow, logger)
		return run(m, backend, RunConfig{Logger: logger})
	})
	return cmd
}

// NewContext returns a context for processing a single event, which carries the logger and a fresh set of stats.
func NewContext(ctx context.Context, logger *zap.Logger) context.Context {
	return eventctx.SetStats(eventctx.SetLogger(ctx, logger), &eventctx.Stats{})
}

func defaultIssuer(logger *zap.Logger, baseURL string) ghtoken.Issuer {
	return ghtoken.New(ghtoken.WithLogger(logger), ghtoken.WithBaseURL(baseURL))
}

var (
	awsSession     *session.Session
	awsSessionOnce sync.Once
)

func defaultAWSClientFactory() (s3.S3API, ssm.SSMAPI, secretsmanager.SecretsManagerAPI) {
	awsSessionOnce.Do(func() {
		sess, err := session.NewSession(&aws.Config{Region: aws.String(os.Getenv("AWS_REGION"))})
		if err != nil {
			panic(fmt.Errorf("create aws session: %s", err))
		}
		awsSession = sess
	})
	return s3.NewClient(awsSession), ssm.NewClient(awsSession), secretsmanager.NewClient(awsSession)
}

func defaultLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	// Disable entries like: "caller":"ghtoken/manager.go:97"
	config.DisableCaller = true

	// Disable logging the stack trace
	config.DisableStacktrace = true

	// Format timestamps as RFC3339 strings
	// Adapted from: https://github.com/uber-go/zap/issues/661#issuecomment-520686037
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoder(
		func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339))
		},
	)

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
