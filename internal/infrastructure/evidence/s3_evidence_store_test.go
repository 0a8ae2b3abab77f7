package evidence

import (
	"context"
	"errors"
	"testing"

	"fibra_provisioning/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	keys     map[string][]string
	err      error
	prefixes []string
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.prefixes = append(f.prefixes, aws.ToString(in.Prefix))
	if f.err != nil {
		return nil, f.err
	}
	out := &s3.ListObjectsV2Output{}
	for _, k := range f.keys[aws.ToString(in.Prefix)] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	return out, nil
}

func evidenceConfig() config.EvidenceConfig {
	return config.EvidenceConfig{Bucket: "otdr-bucket", Prefix: "/otdr/", RequiredSides: []string{"A", "Z"}}
}

func TestS3EvidenceStore_HasRequiredFiles(t *testing.T) {
	t.Setenv("EVIDENCE_STORE_MOCK", "")
	t.Setenv("OTDR_MOCK", "")

	t.Run("both sides present", func(t *testing.T) {
		client := &fakeS3{keys: map[string][]string{
			"otdr/42/A/": {"otdr/42/A/", "otdr/42/A/trace.sor"},
			"otdr/42/Z/": {"otdr/42/Z/trace.sor"},
		}}
		store, err := NewS3EvidenceStore(client, evidenceConfig())
		require.NoError(t, err)

		ok, err := store.HasRequiredFiles(context.Background(), 42)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"otdr/42/A/", "otdr/42/Z/"}, client.prefixes)
	})

	t.Run("folder marker does not count", func(t *testing.T) {
		client := &fakeS3{keys: map[string][]string{
			"otdr/42/A/": {"otdr/42/A/trace.sor"},
			"otdr/42/Z/": {"otdr/42/Z/"},
		}}
		store, err := NewS3EvidenceStore(client, evidenceConfig())
		require.NoError(t, err)

		ok, err := store.HasRequiredFiles(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing first side stops early", func(t *testing.T) {
		client := &fakeS3{keys: map[string][]string{}}
		store, err := NewS3EvidenceStore(client, evidenceConfig())
		require.NoError(t, err)

		ok, err := store.HasRequiredFiles(context.Background(), 42)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Len(t, client.prefixes, 1)
	})

	t.Run("listing error", func(t *testing.T) {
		client := &fakeS3{err: errors.New("access denied")}
		store, err := NewS3EvidenceStore(client, evidenceConfig())
		require.NoError(t, err)

		_, err = store.HasRequiredFiles(context.Background(), 42)
		assert.EqualError(t, err, "access denied")
	})
}

func TestNewS3EvidenceStore(t *testing.T) {
	t.Run("mock via config", func(t *testing.T) {
		store, err := NewS3EvidenceStore(nil, config.EvidenceConfig{Mock: true})
		require.NoError(t, err)

		ok, err := store.HasRequiredFiles(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mock via env", func(t *testing.T) {
		t.Setenv("EVIDENCE_STORE_MOCK", "on")
		store, err := NewS3EvidenceStore(nil, config.EvidenceConfig{})
		require.NoError(t, err)
		assert.True(t, store.mockMode)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Setenv("EVIDENCE_STORE_MOCK", "")
		t.Setenv("OTDR_MOCK", "")
		_, err := NewS3EvidenceStore(&fakeS3{}, config.EvidenceConfig{})
		assert.ErrorIs(t, err, ErrEvidenceStoreNotConfigured)
	})
}
