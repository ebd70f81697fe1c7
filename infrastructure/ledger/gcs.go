package ledger

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

// GCSReader lê o livro-razão CSV de um objeto do Google Cloud Storage (gs://bucket/objeto)
type GCSReader struct {
	opts []option.ClientOption
}

func NewGCSReader(opts ...option.ClientOption) *GCSReader {
	return &GCSReader{opts: opts}
}

func (g *GCSReader) ReadLedger(ctx context.Context, location string) ([]domain.TransactionRecord, error) {
	bucketName, objectName, err := ParseGCSLocation(location)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, g.opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	r, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}
	defer r.Close()

	records, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bucket":  bucketName,
		"object":  objectName,
		"records": len(records),
	}).Debug("Livro-razão carregado do Cloud Storage")

	return records, nil
}

// ParseGCSLocation separa gs://bucket/caminho/objeto.csv em bucket e objeto
func ParseGCSLocation(location string) (string, string, error) {
	rest, ok := utils.TrimScheme(location, gcsScheme)
	if !ok {
		return "", "", fmt.Errorf("not a GCS location: %s", location)
	}

	bucketName, objectName, ok := strings.Cut(rest, "/")
	if !ok || bucketName == "" || objectName == "" {
		return "", "", fmt.Errorf("GCS location must be gs://bucket/object: %s", location)
	}

	return bucketName, objectName, nil
}
