package client

import (
	"context"
	"fmt"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/config"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

// TransferClient sends one file to the storage backend and returns the
// identifier the backend assigned to it.
type TransferClient interface {
	Upload(ctx context.Context, file models.SelectedFile) (string, error)
}

// NewTransferClient builds the TransferClient selected by cfg.TransferMode.
// owner is consulted on every upload and names the current session user.
func NewTransferClient(ctx context.Context, cfg *config.Config, owner func() string) (TransferClient, error) {
	switch cfg.TransferMode {
	case "", config.TransferModeHTTP:
		return NewHTTPClient(cfg.BackendURL, cfg.TransferTimeout), nil
	case config.TransferModeS3:
		return NewS3ClientFromConfig(ctx, cfg, owner)
	default:
		return nil, fmt.Errorf("unknown transfer mode %q", cfg.TransferMode)
	}
}
