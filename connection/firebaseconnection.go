package connection

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"github.com/AbdelliBrahim0/DashboardAdmin/config"
	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

// FBConnection initializes the Firebase app from the service account file.
func FBConnection(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	fbConfig := &firebase.Config{
		DatabaseURL: cfg.FirebaseDatabaseURL,
		ProjectID:   cfg.FirebaseProjectID,
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}
	return app, nil
}

// OpenStore returns the document store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store, data is lost on exit")
		return store.NewMemory(), nil
	}

	app, err := FBConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case config.DriverFirestore:
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting Firestore client: %w", err)
		}
		log.Info("Firestore connection successful")
		return store.NewFirestore(client), nil
	default:
		client, err := app.Database(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting Realtime Database client: %w", err)
		}
		log.Info("Realtime Database connection successful")
		return store.NewRealtimeDB(client), nil
	}
}
