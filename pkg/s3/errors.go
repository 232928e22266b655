package s3

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// FailureKind is a closed set of storage failure causes. Classification
// happens once here, at the SDK boundary, instead of sniffing error codes
// at every call site.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureCredentials
	FailureBucket
	FailureRegion
	FailureAccessDenied
	FailureACLNotSupported
)

type UploadError struct {
	Kind FailureKind
	Code string
	err  error
}

func (e *UploadError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return "s3 upload failed"
}

func (e *UploadError) Unwrap() error {
	return e.err
}

// Classify maps an AWS SDK error onto a FailureKind.
func Classify(err error) *UploadError {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return &UploadError{Kind: FailureUnknown, err: err}
	}

	kind := FailureUnknown
	switch aerr.Code() {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "CredentialsError":
		kind = FailureCredentials
	case "NoSuchBucket", "BucketNotFound":
		kind = FailureBucket
	case "AuthorizationHeaderMalformed", "PermanentRedirect", "IllegalLocationConstraintException":
		kind = FailureRegion
	case "AccessDenied", "Forbidden":
		kind = FailureAccessDenied
	case "AccessControlListNotSupported", "InvalidBucketAclWithObjectOwnership":
		kind = FailureACLNotSupported
	}

	return &UploadError{Kind: kind, Code: aerr.Code(), err: err}
}
