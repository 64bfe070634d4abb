package main

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	gcs "cloud.google.com/go/storage"
	"github.com/ridge/must/v2"
	"google.golang.org/api/option"

	"github.com/visionex-project/textblocks/dataset/impl"
	"github.com/visionex-project/textblocks/dataset/impl/storage"
	"github.com/visionex-project/textblocks/pkg/env"
)

// Credentials for Google Cloud clients. Without a configured secret or key file the
// application default credentials are used.
func clientOptions(ctx context.Context, config impl.Config) []option.ClientOption {
	switch {
	case config.CredentialsSecret != "":
		secretmanagerClient := must.OK1(secretmanager.NewClient(ctx))
		defer secretmanagerClient.Close()
		key := secretFromGCP(secretmanagerClient, ctx, projectID(config), config.CredentialsSecret)
		return []option.ClientOption{option.WithCredentialsJSON([]byte(key))}
	case config.CredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(config.CredentialsFile)}
	default:
		return nil
	}
}

func projectID(config impl.Config) string {
	if config.ProjectID != "" {
		return config.ProjectID
	}
	return env.RequiredStringVariable("GOOGLE_CLOUD_PROJECT")
}

func secretFromGCP(secretmanagerClient *secretmanager.Client, ctx context.Context, projectID string, secretName string) string {
	secretValue := must.OK1(secretmanagerClient.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName),
	}))
	return string(secretValue.Payload.Data)
}

// newStorage returns the configured image store and a function releasing its client.
// GCS objects are tagged with the run id.
func newStorage(ctx context.Context, config impl.Config, runID string) (storage.Client, func()) {
	if config.Storage != impl.STORAGE_GCS {
		return storage.NewLocal(config.OutputDir), func() {}
	}
	gcsClient := must.OK1(gcs.NewClient(ctx, clientOptions(ctx, config)...))
	return storage.NewGCS(gcsClient, config.Bucket, config.BucketPrefix, map[string]string{"run": runID}), func() {
		gcsClient.Close()
	}
}
