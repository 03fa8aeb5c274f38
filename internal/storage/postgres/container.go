package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/VIT-EcoTrack/EcoTrack/internal/config"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// Container bundles all repositories behind one explicitly constructed
// value. It is built once at startup and injected into the server.
type Container struct {
	db        *gorm.DB
	log       *log.Logger
	userRepo  UserRepository
	taskRepo  TaskRepository
	eventRepo EventRepository
	forumRepo ForumRepository
	wasteRepo WasteRepository
}

// NewContainer connects to the database, runs migrations and initializes
// all repositories
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container with an existing database connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:        db,
		log:       logger.Repository("postgres_container"),
		userRepo:  NewPostgresUserRepository(db),
		taskRepo:  NewPostgresTaskRepository(db),
		eventRepo: NewPostgresEventRepository(db),
		forumRepo: NewPostgresForumRepository(db),
		wasteRepo: NewPostgresWasteRepository(db),
	}
}

// Users returns the user repository
func (c *Container) Users() UserRepository {
	return c.userRepo
}

// Tasks returns the task repository
func (c *Container) Tasks() TaskRepository {
	return c.taskRepo
}

// Events returns the event repository
func (c *Container) Events() EventRepository {
	return c.eventRepo
}

// Forum returns the forum repository
func (c *Container) Forum() ForumRepository {
	return c.forumRepo
}

// Waste returns the waste repository
func (c *Container) Waste() WasteRepository {
	return c.wasteRepo
}

// Health pings the underlying connection
func (c *Container) Health() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool
func (c *Container) Close() error {
	c.log.Info("Closing database connection")
	return Close(c.db)
}
