package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/telia-oss/ghtoken"
	s3backend "github.com/telia-oss/ghtoken/backend/s3"
	"github.com/telia-oss/ghtoken/config"
	"github.com/telia-oss/ghtoken/eventctx"
	"github.com/telia-oss/ghtoken/internal/cli"

	"github.com/alecthomas/kingpin"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	environment "github.com/telia-oss/aws-env"
	"go.uber.org/zap"
)

var version string

func main() {
	var (
		app     = kingpin.New("ghtoken", "Issue and revoke Github App installation tokens.").Version(version).UsageWriter(os.Stdout).ErrorWriter(os.Stdout).DefaultEnvars()
		bucket  = app.Flag("config-bucket", "Name of the S3 bucket where the config is stored.").Required().String()
		globals = cli.AddGlobalFlags(app)
	)

	sess, err := session.NewSession()
	if err != nil {
		panic(fmt.Errorf("failed to create a new session: %s", err))
	}

	// Exchange secrets in environment variables with their values.
	env, err := environment.New(sess)
	if err != nil {
		panic(fmt.Errorf("failed to initialize aws-env: %s", err))
	}

	if err := env.Populate(); err != nil {
		panic(fmt.Errorf("failed to populate environment: %s", err))
	}

	cli.AddRunCommand(app, "run", "Start the Lambda handler.", globals, runFunc(sess, bucket), nil, nil, nil).Default()
	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// Event is the expected payload sent to the Lambda.
type Event struct {
	// Action is either "apply" (default) or "cleanup".
	Action     string `json:"action"`
	ConfigPath string `json:"config_path"`
	StatePath  string `json:"state_path"`
}

func runFunc(sess *session.Session, configBucket *string) func(*ghtoken.Manager, ghtoken.StateBackend, cli.RunConfig) error {
	return func(m *ghtoken.Manager, backend ghtoken.StateBackend, runConfig cli.RunConfig) error {
		client := s3backend.NewClient(sess)
		lambda.Start(func(ctx context.Context, event Event) error {
			return handle(cli.NewContext(ctx, runConfig.Logger), m, backend, event, func(key string) (*ghtoken.Config, error) {
				return loadConfig(client, *configBucket, key)
			})
		})
		return nil
	}
}

func handle(ctx context.Context, m *ghtoken.Manager, backend ghtoken.StateBackend, event Event, load func(string) (*ghtoken.Config, error)) error {
	logger := eventctx.GetLogger(ctx).With(zap.String("action", event.Action), zap.String("state_path", event.StatePath))

	switch event.Action {
	case "", "apply":
		cfg, err := load(event.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %s", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("failed to validate config: %s", err)
		}
		state, err := backend.Load(ctx, event.StatePath)
		if err != nil {
			return fmt.Errorf("failed to load state: %s", err)
		}
		defer save(ctx, logger, backend, event.StatePath, state)
		return m.Apply(ctx, cfg, state)
	case "cleanup":
		state, err := backend.Load(ctx, event.StatePath)
		if err != nil {
			return fmt.Errorf("failed to load state: %s", err)
		}
		defer save(ctx, logger, backend, event.StatePath, state)
		return m.Cleanup(ctx, state)
	default:
		return fmt.Errorf("unknown action: %q", event.Action)
	}
}

func save(ctx context.Context, logger *zap.Logger, backend ghtoken.StateBackend, path string, state *ghtoken.State) {
	if err := backend.Save(ctx, path, state); err != nil {
		logger.Error("failed to save state", zap.Error(err))
	}
}

func loadConfig(client s3backend.S3API, bucket, key string) (*ghtoken.Config, error) {
	obj, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()

	b := bytes.NewBuffer(nil)
	if _, err := io.Copy(b, obj.Body); err != nil {
		return nil, err
	}

	return config.Parse(b.Bytes())
}
