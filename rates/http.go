package rates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultClient bounds every lookup; an expired deadline is handled exactly
// like an unreachable source.
var DefaultClient = &http.Client{Timeout: 10 * time.Second}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
