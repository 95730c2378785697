// Package mediastore is an ImageKit client covering the three calls the
// archive needs: binary upload, per-id deletion and short-lived upload
// auth for browser-side uploads.
package mediastore

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/newsrack-dev/newsrack/internal/domain"
	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

const (
	defaultUploadUrl = "https://upload.imagekit.io/api/v1/files/upload"
	defaultApiUrl    = "https://api.imagekit.io/v1"

	// Upload auth tokens are valid for 40 minutes; callers fetch a
	// fresh one per orchestrated operation rather than caching.
	AuthTTL = 40 * time.Minute
)

type Client struct {
	httpClient  *http.Client
	privateKey  string
	publicKey   string
	urlEndpoint string
	uploadUrl   string
	apiUrl      string
}

type Option func(*Client)

// WithBaseUrls overrides the remote endpoints, used by tests.
func WithBaseUrls(uploadUrl, apiUrl string) Option {
	return func(c *Client) {
		c.uploadUrl = uploadUrl
		c.apiUrl = apiUrl
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(privateKey, publicKey, urlEndpoint string, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 2 * time.Minute},
		privateKey:  privateKey,
		publicKey:   publicKey,
		urlEndpoint: urlEndpoint,
		uploadUrl:   defaultUploadUrl,
		apiUrl:      defaultApiUrl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type uploadResponse struct {
	Url      string `json:"url"`
	FileId   string `json:"fileId"`
	FilePath string `json:"filePath"`
	Message  string `json:"message"`
}

// Upload pushes one file into the given folder. Filename uniqueness is
// deliberately disabled: re-uploading the same name overwrites, which
// is what makes the metadata upserts idempotent end to end.
func (c *Client) Upload(ctx context.Context, data io.Reader, fileName, folder, tags string) (domain.UploadResult, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		err := writeUploadForm(form, data, fileName, folder, tags)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadUrl, pr)
	if err != nil {
		return domain.UploadResult{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UploadResult{}, fmt.Errorf("media store upload: %w", err)
	}
	defer resp.Body.Close()

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && resp.StatusCode < 300 {
		return domain.UploadResult{}, fmt.Errorf("media store upload: decoding response: %w", err)
	}
	if resp.StatusCode >= 300 {
		msg := body.Message
		if msg == "" {
			msg = fmt.Sprintf("upload failed for %s with status %d", fileName, resp.StatusCode)
		}
		return domain.UploadResult{}, &apperrors.ErrorWithStatusCode{Message: msg, StatusCode: http.StatusInternalServerError}
	}
	return domain.UploadResult{Url: body.Url, FileId: body.FileId, Path: body.FilePath}, nil
}

func writeUploadForm(form *multipart.Writer, data io.Reader, fileName, folder, tags string) error {
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, data); err != nil {
		return err
	}
	fields := map[string]string{
		"fileName":          fileName,
		"folder":            folder,
		"useUniqueFileName": "false",
	}
	if tags != "" {
		fields["tags"] = tags
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes one stored file by its media store identifier.
func (c *Client) Delete(ctx context.Context, fileId string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiUrl+"/files/"+fileId, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("media store delete %s: %w", fileId, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Message == "" {
			body.Message = fmt.Sprintf("delete failed with status %d", resp.StatusCode)
		}
		return &apperrors.ErrorWithStatusCode{Message: body.Message, StatusCode: http.StatusInternalServerError}
	}
	return nil
}

// AuthParams mints a signed credential bundle for a browser-side
// upload. The signature is HMAC-SHA1(token+expire) keyed with the
// private key, which is what ImageKit validates server-side.
func (c *Client) AuthParams() domain.UploadAuth {
	token := uuid.NewString()
	expire := time.Now().Add(AuthTTL).Unix()

	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return domain.UploadAuth{
		Token:       token,
		Expire:      expire,
		Signature:   hex.EncodeToString(mac.Sum(nil)),
		PublicKey:   c.publicKey,
		UrlEndpoint: c.urlEndpoint,
	}
}
