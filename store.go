package ghtoken

import (
	"strings"
	"text/template"
)

// Enumeration of known secret stores.
const (
	Inprocess      StoreType = "inprocess"
	SecretsManager StoreType = "secretsmanager"
	SSM            StoreType = "ssm"
)

// StoreType ...
type StoreType string

// Secret is a named value written to a SecretStore.
type Secret struct {
	// Name is the identifier for the secret.
	Name string

	// Value is the secret value.
	Value string

	// Description returns a short description of the secret.
	Description string
}

// SecretStore is implemented by store backends for secrets.
//
//counterfeiter:generate . SecretStore
type SecretStore interface {
	// Type returns the store type.
	Type() StoreType

	// Write a secret to the store and return its path.
	Write(namespace string, secret *Secret) (string, error)

	// Read the specified secret by path.
	Read(path string) (string, bool, error)

	// Delete the specified secret. Should not return an error
	// if the secret does not exist or has already been deleted.
	Delete(path string) error
}

// BuildSecretPath is a convenience function for building path templates.
func BuildSecretPath(pathTemplate, namespace, name string) (string, error) {
	t, err := template.New("path").Option("missingkey=error").Parse(pathTemplate)
	if err != nil {
		return "", err
	}

	var p strings.Builder

	if err = t.Execute(&p, struct {
		Namespace string
		Name      string
	}{
		Namespace: namespace,
		Name:      name,
	}); err != nil {
		return "", err
	}

	return p.String(), nil
}
