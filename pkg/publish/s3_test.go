package publish

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorePut(t *testing.T) {
	fake := &fakeS3{}
	store := &S3Store{client: fake, bucket: "my-bucket", prefix: "site/"}

	if err := store.Put(context.Background(), "about/index.html", []byte("<p>hi</p>"), "text/html; charset=utf-8"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.inputs) != 1 {
		t.Fatalf("got %d uploads, want 1", len(fake.inputs))
	}

	in := fake.inputs[0]
	if got := aws.ToString(in.Bucket); got != "my-bucket" {
		t.Errorf("bucket = %q, want %q", got, "my-bucket")
	}
	if got := aws.ToString(in.Key); got != "site/about/index.html" {
		t.Errorf("key = %q, want %q", got, "site/about/index.html")
	}
	if got := aws.ToString(in.ContentType); got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(body) != "<p>hi</p>" {
		t.Errorf("body = %q, want %q", body, "<p>hi</p>")
	}
}
