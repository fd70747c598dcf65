// Package blobstore uploads resume files to the external blob service and
// returns the public URL the service assigns.
package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type uploadResponse struct {
	URL string `json:"url"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	uploadURL  string
	apiKey     string
	httpClient HTTPClient
}

func NewClient(uploadURL, apiKey string) *Client {
	return &Client{uploadURL: uploadURL, apiKey: apiKey, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// Upload streams one file to the blob service and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("error creating form file: %v", err)
	}
	if _, err = io.Copy(part, content); err != nil {
		return "", fmt.Errorf("error copying file content: %v", err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("error closing multipart writer: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.uploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-File-Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	var uploaded uploadResponse
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return "", fmt.Errorf("error decoding JSON response: %v", err)
	}
	if uploaded.URL == "" {
		return "", fmt.Errorf("blob service returned no url")
	}

	return uploaded.URL, nil
}
