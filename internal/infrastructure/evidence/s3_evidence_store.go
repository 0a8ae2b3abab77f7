package evidence

import (
	"context"
	"errors"
	"os"
	"path"
	"strconv"
	"strings"

	"fibra_provisioning/internal/config"
	"fibra_provisioning/internal/usecase/interfaces"
	"fibra_provisioning/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrEvidenceStoreNotConfigured = errors.New("evidence store not configured")

// ListObjectsAPI is the subset of *s3.Client the store needs.
type ListObjectsAPI interface {
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var _ ListObjectsAPI = (*s3.Client)(nil)

// S3EvidenceStore checks that OTDR trace files were uploaded for an order.
//
// Layout: <bucket>/<prefix>/<orden id>/<side>/<file>. Every required side
// must hold at least one file; folder markers do not count.
type S3EvidenceStore struct {
	client   ListObjectsAPI
	bucket   string
	prefix   string
	sides    []string
	mockMode bool
}

var _ interfaces.IEvidenceStore = (*S3EvidenceStore)(nil)

func NewS3EvidenceStore(client ListObjectsAPI, cfg config.EvidenceConfig) (*S3EvidenceStore, error) {
	if cfg.Mock || isEvidenceStoreMockEnabled() {
		logger.Warn("evidence store mock mode enabled, activation will not check OTDR files")
		return &S3EvidenceStore{mockMode: true}, nil
	}
	if client == nil || cfg.Bucket == "" {
		return nil, ErrEvidenceStoreNotConfigured
	}
	return &S3EvidenceStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		sides:  cfg.RequiredSides,
	}, nil
}

func (s *S3EvidenceStore) HasRequiredFiles(ctx context.Context, ordenID int64) (bool, error) {
	if s != nil && s.mockMode {
		return true, nil
	}
	if s == nil || s.client == nil {
		return false, ErrEvidenceStoreNotConfigured
	}

	for _, side := range s.sides {
		prefix := path.Join(s.prefix, strconv.FormatInt(ordenID, 10), side) + "/"
		ok, err := s.hasFile(ctx, prefix)
		if err != nil {
			logger.Error("otdr listing failed", zap.Int64("orden_id", ordenID), zap.String("prefix", prefix), zap.Error(err))
			return false, err
		}
		if !ok {
			logger.Info("otdr evidence missing", zap.Int64("orden_id", ordenID), zap.String("side", side))
			return false, nil
		}
	}
	return true, nil
}

func (s *S3EvidenceStore) hasFile(ctx context.Context, prefix string) (bool, error) {
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(50),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return false, err
		}
		for _, obj := range out.Contents {
			if key := aws.ToString(obj.Key); key != "" && !strings.HasSuffix(key, "/") {
				return true, nil
			}
		}
	}
	return false, nil
}

func isEvidenceStoreMockEnabled() bool {
	for _, key := range []string{"EVIDENCE_STORE_MOCK", "OTDR_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
