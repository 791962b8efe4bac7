package assembler

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// DecodeError aborts the whole build: a bundle with a silently dropped
// attachment is worse than no bundle.
type DecodeError struct {
	Title string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode attachment %q: %v", e.Title, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type decodedAttachment struct {
	Title       string
	ContentType string
	Base64      string
	Size        int64
}

// decodeAttachments reads every attachment source concurrently and returns
// the base64-encoded results in input order. Completion order never
// reorders output; the first failure fails the whole set.
func decodeAttachments(ctx context.Context, sources []AttachmentSource) ([]decodedAttachment, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	decoded := make([]decodedAttachment, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(i int, source AttachmentSource) {
			defer wg.Done()
			decoded[i], errs[i] = decodeOne(ctx, source)
		}(i, source)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &DecodeError{Title: sources[i].Title, Err: err}
		}
	}
	return decoded, nil
}

func decodeOne(ctx context.Context, source AttachmentSource) (decodedAttachment, error) {
	rc, err := source.Open(ctx)
	if err != nil {
		return decodedAttachment{}, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return decodedAttachment{}, err
	}

	return decodedAttachment{
		Title:       source.Title,
		ContentType: source.ContentType,
		Base64:      base64.StdEncoding.EncodeToString(content),
		Size:        int64(len(content)),
	}, nil
}
