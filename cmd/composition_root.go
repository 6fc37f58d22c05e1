package cmd

import (
	"errors"
	"log/slog"
	"time"

	inhttp "fieldops/internal/adapters/in/http"
	inkafka "fieldops/internal/adapters/in/kafka"
	outkafka "fieldops/internal/adapters/out/kafka"
	"fieldops/internal/adapters/out/matching"
	"fieldops/internal/adapters/out/postgres/bookingrepo"
	"fieldops/internal/adapters/out/postgres/technicianrepo"
	outredis "fieldops/internal/adapters/out/redis"
	"fieldops/internal/core/application/notifications"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// contactCacheTTL bounds how stale a cached technician contact card can get.
const contactCacheTTL = 10 * time.Minute

// CompositionRoot wires the adapters and use cases together. Adapters are
// built once and shared; the Create methods hand out handlers on top of them.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	redisClient *redis.Client
	bookingRepo ports.BookingRepository
	directory   ports.TechnicianDirectory
	gateway     *outkafka.NotificationGateway
	sockets     ports.SocketEmitter
	matching    ports.MatchingService
	notifier    ports.ReminderNotifier

	consumer *inkafka.AcceptanceConsumer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisHost,
		Password: config.RedisPassword,
	})

	bookingRepo := bookingrepo.NewGormBookingRepository(gormDB)
	directory := outredis.NewContactCache(
		redisClient,
		technicianrepo.NewGormTechnicianRepository(gormDB),
		contactCacheTTL,
	)

	brokers := []string{config.KafkaHost}
	gateway := outkafka.NewNotificationGateway(brokers, config.KafkaPushTopic, config.KafkaSMSTopic)
	sockets := outredis.NewSocketEmitter(redisClient)

	notifier := notifications.NewNotifier(
		directory,
		gateway,
		sockets,
		services.NewReminderComposer(loadTimezone(config.ReminderTimezone, logger)),
		logger,
	)

	return &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		logger:      logger,
		redisClient: redisClient,
		bookingRepo: bookingRepo,
		directory:   directory,
		gateway:     gateway,
		sockets:     sockets,
		matching:    matching.NewClient(config.MatchingServiceURL),
		notifier:    notifier,
	}
}

func (c *CompositionRoot) CreateActivateDueBookingsCommandHandler() commands.ActivateDueBookingsCommandHandler {
	return commands.NewActivateDueBookingsCommandHandler(c.bookingRepo, c.matching, c.logger)
}

func (c *CompositionRoot) CreateSendRemindersCommandHandler() commands.SendRemindersCommandHandler {
	return commands.NewSendRemindersCommandHandler(c.bookingRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRecoverNoShowsCommandHandler() commands.RecoverNoShowsCommandHandler {
	return commands.NewRecoverNoShowsCommandHandler(c.bookingRepo, c.matching, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRegisterAcceptanceCommandHandler() commands.RegisterAcceptanceCommandHandler {
	return commands.NewRegisterAcceptanceCommandHandler(c.bookingRepo)
}

func (c *CompositionRoot) CreateGetUpcomingBookingsQueryHandler() queries.GetUpcomingBookingsQueryHandler {
	return queries.NewGetUpcomingBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateActivateDueBookingsCommandHandler(),
		c.CreateSendRemindersCommandHandler(),
		c.CreateRecoverNoShowsCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateAcceptanceConsumer() *inkafka.AcceptanceConsumer {
	if c.consumer == nil {
		c.consumer = inkafka.NewAcceptanceConsumer(
			[]string{c.config.KafkaHost},
			c.config.KafkaConsumerGroup,
			c.config.KafkaAcceptanceTopic,
			c.CreateRegisterAcceptanceCommandHandler(),
			c.logger,
		)
	}
	return c.consumer
}

func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(c.CreateGetUpcomingBookingsQueryHandler())
}

// Close releases the outbound connections. The acceptance consumer is closed
// here as well when it was created.
func (c *CompositionRoot) Close() error {
	errsList := []error{
		c.gateway.Close(),
		c.redisClient.Close(),
	}
	if c.consumer != nil {
		errsList = append(errsList, c.consumer.Close())
	}
	return errors.Join(errsList...)
}

// loadTimezone resolves the configured reminder timezone, falling back to UTC
// when the name is empty or unknown.
func loadTimezone(name string, logger *slog.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("Unknown reminder timezone, falling back to UTC", "timezone", name)
		return time.UTC
	}
	return location
}
