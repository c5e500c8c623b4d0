package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"path"
	"time"

	"cloud.google.com/go/storage"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/pkg/helpers"
)

// SnapshotArchive writes the last snapshot of deleted users to a GCS bucket.
type SnapshotArchive struct {
	client *storage.Client
	bucket string
}

func NewSnapshotArchive(client *storage.Client, bucket string) *SnapshotArchive {
	return &SnapshotArchive{client: client, bucket: bucket}
}

type snapshot struct {
	User      application.UserData `json:"user"`
	DeletedAt time.Time            `json:"deleted_at"`
}

// ObjectPath is deleted-users/<yyyy>/<mm>/<dd>/<id>.json, dated by deletion time.
func ObjectPath(id string, deletedAt time.Time) string {
	return path.Join("deleted-users", deletedAt.UTC().Format("2006/01/02"), id+".json")
}

// Archive stores the snapshot and returns its gs:// URI.
func (a *SnapshotArchive) Archive(ctx context.Context, u application.UserData, deletedAt time.Time) (string, error) {
	b, err := json.Marshal(snapshot{User: u, DeletedAt: deletedAt.UTC()})
	if err != nil {
		return "", err
	}
	return helpers.UploadObject(ctx, a.client, a.bucket, ObjectPath(u.ID, deletedAt), "application/json", bytes.NewReader(b))
}
