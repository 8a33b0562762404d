package bedrock

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

const signingService = "bedrock"

// Invoker is the minimal contract services need to call a model endpoint.
type Invoker interface {
	Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error)
}

// Client invokes models through the Bedrock runtime HTTP surface using
// SigV4-signed requests. The signing identity only needs InvokeModel on the
// single model the service is configured for.
type Client struct {
	endpoint string
	region   string
	creds    aws.CredentialsProvider
	signer   *v4.Signer
	client   *http.Client
}

// NewClient creates a Bedrock runtime client from an explicitly constructed
// AWS config. The endpoint may be overridden for tests or private endpoints;
// empty selects the regional default.
func NewClient(awsCfg aws.Config, endpoint string) *Client {
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", awsCfg.Region)
	}

	return &Client{
		endpoint: endpoint,
		region:   awsCfg.Region,
		creds:    awsCfg.Credentials,
		signer:   v4.NewSigner(),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Invoke posts a serialized request envelope to the model's invoke path and
// returns the raw response body. No retries; failures surface to the caller.
func (c *Client) Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+InvokePath(modelID), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if err := c.sign(ctx, req, body); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model invocation failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func (c *Client) sign(ctx context.Context, req *http.Request, body []byte) error {
	creds, err := c.creds.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve AWS credentials: %w", err)
	}

	sum := sha256.Sum256(body)
	payloadHash := hex.EncodeToString(sum[:])

	if err := c.signer.SignHTTP(ctx, creds, req, payloadHash, signingService, c.region, time.Now()); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	return nil
}
