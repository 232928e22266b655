package s3

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/stretchr/testify/assert"
)

func TestClassify_AWSCodes(t *testing.T) {
	tests := []struct {
		code string
		want FailureKind
	}{
		{"InvalidAccessKeyId", FailureCredentials},
		{"SignatureDoesNotMatch", FailureCredentials},
		{"NoSuchBucket", FailureBucket},
		{"PermanentRedirect", FailureRegion},
		{"AccessDenied", FailureAccessDenied},
		{"AccessControlListNotSupported", FailureACLNotSupported},
		{"SomethingElse", FailureUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := awserr.New(tt.code, "boom", nil)
			classified := Classify(err)
			assert.Equal(t, tt.want, classified.Kind)
			assert.Equal(t, tt.code, classified.Code)
		})
	}
}

func TestClassify_NonAWSError(t *testing.T) {
	classified := Classify(errors.New("connection refused"))
	assert.Equal(t, FailureUnknown, classified.Kind)
	assert.Empty(t, classified.Code)
}

func TestClassify_WrappedAWSError(t *testing.T) {
	inner := awserr.New("AccessDenied", "denied", nil)
	classified := Classify(fmt.Errorf("upload failed: %w", inner))
	assert.Equal(t, FailureAccessDenied, classified.Kind)
}

func TestUploadError_Unwrap(t *testing.T) {
	inner := awserr.New("NoSuchBucket", "missing", nil)
	classified := Classify(inner)

	var aerr awserr.Error
	assert.True(t, errors.As(classified, &aerr))
	assert.Equal(t, "NoSuchBucket", aerr.Code())
}
