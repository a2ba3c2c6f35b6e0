package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
)

// GetModel fetches one model's metadata, including its explore listing.
func (c *Client) GetModel(ctx context.Context, model string) (*lookml.Model, error) {
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	var out lookml.Model
	path := "/lookml_models/" + url.PathEscape(model)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("get model %s: %w", model, err)
	}
	return &out, nil
}

// GetExplore fetches one explore's full field metadata.
func (c *Client) GetExplore(ctx context.Context, model, explore string) (*lookml.Explore, error) {
	if model == "" || explore == "" {
		return nil, fmt.Errorf("model and explore names cannot be empty")
	}
	var out lookml.Explore
	path := "/lookml_models/" + url.PathEscape(model) + "/explores/" + url.PathEscape(explore)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("get explore %s/%s: %w", model, explore, err)
	}
	return &out, nil
}
