package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/services"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	DB         *gorm.DB

	UserService       *services.UserService
	VenueService      *services.VenuesService
	EventService      *services.EventService
	TicketTypeService *services.TicketTypeService
	OrderService      *services.OrderService
	TicketService     *services.TicketService
	PaymentService    *services.PaymentService
	SupportService    *services.SupportService
	AnalyticsService  *services.AnalyticsService
	FavouritesService *services.FavouriteService
}

// NewContainer wires the repositories and services onto one database handle.
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	db *gorm.DB,
	stripeWebhookSecret string,
) *Container {
	repo := models.NewRepo(db)

	return &Container{
		Logger:     logger,
		Cloudinary: cld,
		DB:         db,

		UserService:       services.NewUserService(repo),
		VenueService:      services.NewVenuesService(repo),
		EventService:      services.NewEventService(repo, repo),
		TicketTypeService: services.NewTicketTypeService(repo, repo),
		OrderService:      services.NewOrderService(repo),
		TicketService:     services.NewTicketService(repo),
		PaymentService:    services.NewPaymentService(repo, repo, stripeWebhookSecret),
		SupportService:    services.NewSupportService(repo),
		AnalyticsService:  services.NewAnalyticsService(repo),
		FavouritesService: services.NewFavouriteService(repo),
	}
}
