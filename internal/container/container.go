package container

import (
	"log/slog"

	"github.com/inviteleaf/api/internal/models"
	"github.com/inviteleaf/api/internal/realtime"
	"github.com/inviteleaf/api/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	Hub             *realtime.Hub
	AuthService     *services.AuthService
	ClientService   *services.ClientService
	CeremonyService *services.CeremonyService
	PhotoService    *services.PhotoService
	BlessingService *services.BlessingService
	RSVPService     *services.RSVPService
	SettingsService *services.SettingsService
	InviteService   *services.InviteService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey, bucket string,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey, bucket)
	mongo := models.MongodbNewRepo(mongoDBClient)
	hub := realtime.NewHub(logger)

	authService := services.NewAuthService(supa)
	clientService := services.NewClientService(supa)
	ceremonyService := services.NewCeremonyService(supa)
	photoService := services.NewPhotoService(supa)
	blessingService := services.NewBlessingService(supa, hub)
	rsvpService := services.NewRSVPService(supa)
	settingsService := services.NewSettingsService(supa)
	inviteService := services.NewInviteService(supa, supa, supa, supa, mongo, logger)

	return &Container{
		Logger:          logger,
		SupabaseClient:  supabaseClient,
		MongoDBClient:   mongoDBClient,
		Hub:             hub,
		AuthService:     authService,
		ClientService:   clientService,
		CeremonyService: ceremonyService,
		PhotoService:    photoService,
		BlessingService: blessingService,
		RSVPService:     rsvpService,
		SettingsService: settingsService,
		InviteService:   inviteService,
	}
}
