package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// maxImageBytes acota la descarga cuando el proveedor solo devuelve una URL.
const maxImageBytes = 20 << 20

// ImageGenerator devuelve los bytes de una imagen generada. Guardarla es
// responsabilidad de quien llama: las URLs del proveedor expiran.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// ImageClient implementa ImageGenerator sobre /images/generations.
type ImageClient struct {
	http  *HTTPClient
	model string
	size  string
}

// NewImageClient reutiliza la configuración HTTP del cliente de chat.
func NewImageClient(baseURL, apiKey, model, size string, logger *zap.Logger) *ImageClient {
	if size == "" {
		size = "1024x1024"
	}
	return &ImageClient{
		http:  NewHTTPClient(baseURL, apiKey, model, logger),
		model: model,
		size:  size,
	}
}

// GenerateImage pide b64_json. Si el proveedor igual responde con una URL,
// descarga la imagen en el momento, antes de que expire.
func (c *ImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("image prompt is empty")
	}
	reqBody := imageRequest{
		Model:          c.model,
		Prompt:         prompt,
		N:              1,
		Size:           c.size,
		ResponseFormat: "b64_json",
	}

	var ir imageResponse
	if err := c.http.postJSON(ctx, "/images/generations", reqBody, &ir); err != nil {
		return nil, err
	}
	if ir.Error != nil {
		return nil, fmt.Errorf("image api error: %s", ir.Error.Message)
	}
	if len(ir.Data) == 0 {
		return nil, fmt.Errorf("image empty response")
	}
	if b64 := strings.TrimSpace(ir.Data[0].B64JSON); b64 != "" {
		data, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return data, nil
	}
	if url := strings.TrimSpace(ir.Data[0].URL); url != "" {
		return c.download(ctx, url)
	}
	return nil, fmt.Errorf("image empty response")
}

func (c *ImageClient) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}
	resp, err := c.http.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.http.logger.Warn("image download error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("image download http error: status=%d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", maxImageBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image empty response")
	}
	return data, nil
}

type imageRequest struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type imageResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}
