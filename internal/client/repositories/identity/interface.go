package identity

import (
	"context"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

type Repository interface {
	Get(ctx context.Context, appID string) (*models.Identity, error)
	Save(ctx context.Context, appID string, identity *models.Identity) error
	Delete(ctx context.Context, appID string) error
}
