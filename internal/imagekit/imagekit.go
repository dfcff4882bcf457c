// Package imagekit talks to the external media host. Binary content never
// flows through this service: browsers upload directly using credentials
// signed here, and the service only records the metadata the host reports.
package imagekit

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultAPIBaseURL = "https://api.imagekit.io/v1"

// UploadCredentials authorize a single direct browser-to-host upload. The
// signature is an HMAC-SHA1 over token+expire keyed with the private key,
// which is the host's own scoping mechanism; no further validation happens
// on this side.
type UploadCredentials struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type Client struct {
	privateKey string
	tokenTTL   time.Duration
	apiBaseURL string
	httpClient *http.Client
}

func NewClient(privateKey string, tokenTTL time.Duration) *Client {
	return &Client{
		privateKey: privateKey,
		tokenTTL:   tokenTTL,
		apiBaseURL: defaultAPIBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SignUpload issues one-time credentials with a fresh token and an expiry
// tokenTTL from now.
func (c *Client) SignUpload() UploadCredentials {
	token := uuid.NewString()
	expire := time.Now().Add(c.tokenTTL).Unix()
	return UploadCredentials{
		Token:     token,
		Expire:    expire,
		Signature: c.sign(token, expire),
	}
}

func (c *Client) sign(token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// DeleteFile removes an uploaded object from the media host. A 404 from the
// host is treated as success so that purging a row whose object is already
// gone stays idempotent.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	url := fmt.Sprintf("%s/files/%s", c.apiBaseURL, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusNotFound {
		return nil
	}

	return fmt.Errorf("media host returned status %d for file %s", resp.StatusCode, fileID)
}
