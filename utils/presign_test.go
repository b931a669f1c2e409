package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePresignedPostDisabledWithoutBucket(t *testing.T) {
	t.Setenv("S3_BUCKET", "")

	post, err := GeneratePresignedPost(context.Background(), "products/x.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Nil(t, post)
}
