package s3store

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/dev-tams/sweepkit/internal/config"
	"github.com/dev-tams/sweepkit/internal/storage"
)

// Client is the subset of the S3 API the folder uses; the real
// *s3.Client satisfies it.
type Client interface {
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Folder struct {
	client Client
}

func New(ctx context.Context, cfg config.S3Config) (*Folder, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible stores (minio etc) want path-style addressing.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Folder{client: client}, nil
}

// NewWithClient is used by tests to inject a fake client.
func NewWithClient(client Client) *Folder {
	return &Folder{client: client}
}

func (f *Folder) Scheme() string { return "s3" }

// ParseURI splits an s3://bucket/key URI into bucket and key.
func ParseURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("s3: not an s3:// URI: %s", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("s3: missing bucket in URI: %s", uri)
	}
	return bucket, key, nil
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// Expand resolves glob metacharacters in the key part of pattern against
// the bucket, one path segment at a time. A pattern without metacharacters
// is returned unchanged and treated as a prefix by List.
func (f *Folder) Expand(ctx context.Context, pattern string) ([]string, error) {
	bucket, keyPat, err := ParseURI(pattern)
	if err != nil {
		return nil, err
	}
	if !hasMeta(keyPat) {
		return []string{pattern}, nil
	}

	segs := strings.Split(keyPat, "/")
	prefixes := []string{""}

	for i, seg := range segs {
		if seg == "" {
			continue
		}
		last := i == len(segs)-1

		if !hasMeta(seg) {
			for j := range prefixes {
				prefixes[j] += seg
				if !last {
					prefixes[j] += "/"
				}
			}
			continue
		}

		var next []string
		for _, prefix := range prefixes {
			matched, err := f.matchSegment(ctx, bucket, prefix, seg, last)
			if err != nil {
				return nil, err
			}
			next = append(next, matched...)
		}
		prefixes = next
		if len(prefixes) == 0 {
			break
		}
	}

	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, "s3://"+bucket+"/"+p)
	}
	return out, nil
}

// matchSegment lists one level under prefix and keeps the entries whose
// name matches the glob segment. Matched "directories" keep their trailing
// slash so later listings stay scoped to them.
func (f *Folder) matchSegment(ctx context.Context, bucket, prefix, seg string, last bool) ([]string, error) {
	var out []string

	in := &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	}
	for {
		page, err := f.client.ListObjectsV2(ctx, in)
		if err != nil {
			return nil, wrapAPIError("list", bucket, prefix, err)
		}

		for _, cp := range page.CommonPrefixes {
			full := aws.ToString(cp.Prefix)
			base := strings.TrimPrefix(strings.TrimSuffix(full, "/"), prefix)
			if ok, _ := path.Match(seg, base); ok {
				out = append(out, full)
			}
		}
		if last {
			for _, obj := range page.Contents {
				key := aws.ToString(obj.Key)
				base := strings.TrimPrefix(key, prefix)
				if ok, _ := path.Match(seg, base); ok {
					out = append(out, key)
				}
			}
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		in.ContinuationToken = page.NextContinuationToken
	}

	return out, nil
}

// List returns every object whose key starts with the key part of path.
func (f *Folder) List(ctx context.Context, pathURI string) ([]storage.ObjectInfo, error) {
	bucket, key, err := ParseURI(pathURI)
	if err != nil {
		return nil, err
	}

	var out []storage.ObjectInfo
	in := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(key),
	}
	for {
		page, err := f.client.ListObjectsV2(ctx, in)
		if err != nil {
			return nil, wrapAPIError("list", bucket, key, err)
		}

		for _, obj := range page.Contents {
			out = append(out, storage.ObjectInfo{
				URI:     "s3://" + bucket + "/" + aws.ToString(obj.Key),
				Size:    aws.ToInt64(obj.Size),
				ModTime: aws.ToTime(obj.LastModified).UTC(),
			})
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		in.ContinuationToken = page.NextContinuationToken
	}

	return out, nil
}

func (f *Folder) Delete(ctx context.Context, uri string) error {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return err
	}

	_, err = f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrapAPIError("delete", bucket, key, err)
	}
	return nil
}

func wrapAPIError(op, bucket, key string, err error) error {
	if apiErr, ok := err.(smithy.APIError); ok {
		return fmt.Errorf("s3 %s s3://%s/%s: %s: %s", op, bucket, key, apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return fmt.Errorf("s3 %s s3://%s/%s: %w", op, bucket, key, err)
}
