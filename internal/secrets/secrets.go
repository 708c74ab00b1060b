// Package secrets resolves the GitHub token from configuration or AWS
// Secrets Manager.
package secrets

import (
	"fmt"

	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
)

// ResolveToken returns the configured token. When only a secret name
// is configured the value is fetched through the Secrets Manager cache.
func ResolveToken(token string, secretName string) (string, error) {
	if token != "" {
		return token, nil
	}
	if secretName == "" {
		return "", fmt.Errorf("no token or secret name configured")
	}
	cache, err := secretcache.New()
	if err != nil {
		return "", fmt.Errorf("initializing secrets cache: %w", err)
	}
	value, err := cache.GetSecretString(secretName)
	if err != nil {
		return "", fmt.Errorf("fetching secret %s: %w", secretName, err)
	}
	return value, nil
}
