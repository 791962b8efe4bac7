package assembler

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func readerSource(title, contentType, content string, delay time.Duration) AttachmentSource {
	return AttachmentSource{
		Title:       title,
		ContentType: contentType,
		Open: func(ctx context.Context) (io.ReadCloser, error) {
			time.Sleep(delay)
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestDecodeAttachments(t *testing.T) {
	ctx := context.Background()

	t.Run("Preserves Input Order Regardless Of Completion Order", func(t *testing.T) {
		sources := []AttachmentSource{
			readerSource("slow", "text/plain", "first", 30*time.Millisecond),
			readerSource("fast", "text/plain", "second", 0),
		}

		decoded, err := decodeAttachments(ctx, sources)

		assert.NoError(t, err)
		assert.Len(t, decoded, 2)
		assert.Equal(t, "slow", decoded[0].Title)
		assert.Equal(t, "fast", decoded[1].Title)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("first")), decoded[0].Base64)
		assert.Equal(t, int64(5), decoded[0].Size)
	})

	t.Run("One Failure Fails The Whole Set", func(t *testing.T) {
		boom := errors.New("object not found")
		sources := []AttachmentSource{
			readerSource("ok", "text/plain", "fine", 0),
			{
				Title:       "broken",
				ContentType: "application/pdf",
				Open: func(ctx context.Context) (io.ReadCloser, error) {
					return nil, boom
				},
			},
		}

		decoded, err := decodeAttachments(ctx, sources)

		assert.Nil(t, decoded)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "broken", decodeErr.Title)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Empty Set Decodes To Nothing", func(t *testing.T) {
		decoded, err := decodeAttachments(ctx, nil)

		assert.NoError(t, err)
		assert.Nil(t, decoded)
	})
}
