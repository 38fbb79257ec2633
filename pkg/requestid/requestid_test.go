package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/logger"
	"github.com/createrainforest/bosweb/pkg/requestid"
)

func serve(t *testing.T, header string) (fromCtx string, rec *httptest.ResponseRecorder) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodPost, "/order/transfer", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return fromCtx, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID", func(t *testing.T) {
		id, rec := serve(t, "")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid IDs", func(t *testing.T) {
		for _, valid := range []string{"abc123", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000"} {
			id, rec := serve(t, valid)
			assert.Equal(t, valid, id)
			assert.Equal(t, valid, rec.Header().Get(requestid.Header))
		}
	})

	t.Run("replaces invalid IDs", func(t *testing.T) {
		invalid := []string{
			"test@request#id",
			"test request id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, bad := range invalid {
			id, _ := serve(t, bad)
			assert.NotEqual(t, bad, id)
			assert.NotEmpty(t, id)
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
	assert.Equal(t, "x", requestid.FromContext(requestid.WithContext(context.Background(), "x")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "checked")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	assert.NotContains(t, buf.String(), "request_id")
}
