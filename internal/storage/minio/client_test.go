package minio

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMinioAPI struct {
	mock.Mock
}

func (m *mockMinioAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *mockMinioAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *mockMinioAPI) FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, filePath, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockMinioAPI) EndpointURL() *url.URL {
	return &url.URL{Scheme: "http", Host: "localhost:9000"}
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("image-bytes"), 0o600))
	return p
}

func TestNewClientWithAPI_BucketMissing(t *testing.T) {
	ctx := context.Background()
	api := &mockMinioAPI{}
	api.On("BucketExists", ctx, "media").Return(false, nil).Once()
	api.On("MakeBucket", ctx, "media", mock.Anything).Return(nil).Once()

	c, err := NewClientWithAPI(ctx, api, "media")
	require.NoError(t, err)
	assert.NotNil(t, c)
	api.AssertExpectations(t)
}

func TestNewClientWithAPI_BucketCheckFails(t *testing.T) {
	ctx := context.Background()
	api := &mockMinioAPI{}
	api.On("BucketExists", ctx, "media").Return(false, assert.AnError).Once()

	_, err := NewClientWithAPI(ctx, api, "media")
	require.Error(t, err)
}

func TestClient_UploadFile(t *testing.T) {
	ctx := context.Background()
	api := &mockMinioAPI{}
	api.On("BucketExists", ctx, "media").Return(true, nil).Once()

	localPath := writeTempFile(t, "avatar.png")

	var uploadedKey string
	api.On("FPutObject", ctx, "media", mock.Anything, localPath, mock.Anything).
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(2)
		}).
		Return(minio.UploadInfo{}, nil).Once()

	c, err := NewClientWithAPI(ctx, api, "media")
	require.NoError(t, err)

	gotURL, err := c.UploadFile(ctx, localPath)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(uploadedKey, ".png"))
	assert.Equal(t, "http://localhost:9000/media/"+uploadedKey, gotURL)

	// the local file is left for the owner to clean up
	_, statErr := os.Stat(localPath)
	assert.NoError(t, statErr)
}

func TestClient_UploadFile_PutFails(t *testing.T) {
	ctx := context.Background()
	api := &mockMinioAPI{}
	api.On("BucketExists", ctx, "media").Return(true, nil).Once()
	api.On("FPutObject", ctx, "media", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError).Once()

	c, err := NewClientWithAPI(ctx, api, "media")
	require.NoError(t, err)

	_, err = c.UploadFile(ctx, writeTempFile(t, "avatar.jpg"))
	require.Error(t, err)
}

func TestClient_UploadFile_MissingLocalFile(t *testing.T) {
	ctx := context.Background()
	api := &mockMinioAPI{}
	api.On("BucketExists", ctx, "media").Return(true, nil).Once()

	c, err := NewClientWithAPI(ctx, api, "media")
	require.NoError(t, err)

	_, err = c.UploadFile(ctx, filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
