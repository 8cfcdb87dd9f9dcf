package deps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"

	"remindu/internal/config"
	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	dl "remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/storage"
	dbcategory "remindu/internal/db/category"
	"remindu/internal/db/kv"
	"remindu/internal/db/migrations"
	dbreminder "remindu/internal/db/reminder"
	eventpublisher "remindu/internal/implementations/event_publisher"
	formstate "remindu/internal/implementations/form_state"
	"remindu/internal/implementations/identity"
	"remindu/internal/implementations/logging"
	"remindu/internal/rabbitmq"
	appevents "remindu/internal/rabbitmq/publishers/app_events"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	Store         storage.KeyValueStore
	CategoryStore storage.KeyValueStore

	ReminderRepository reminder.Repository
	CategoryRepository category.Repository
	Form               form.Container

	ReminderIdentityGenerator reminder.IdentityGenerator
	CategoryIdentityGenerator category.IdentityGenerator

	EventPublisher events.Publisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeStore := deps.initStore()
	closeSseServer := deps.initSseServer()
	closeEventPublisher := deps.initEventPublisher()

	location := deps.Config.Location()
	deps.Now = func() time.Time { return time.Now().In(location) }

	uuid := identity.NewUUID()
	deps.ReminderIdentityGenerator = uuid
	deps.CategoryIdentityGenerator = uuid

	deps.CategoryStore = deps.Store
	if !deps.Config.PersistCategories {
		deps.CategoryStore = kv.NewMemoryStore()
	}
	deps.CategoryRepository = dbcategory.NewKVCategoryRepository(deps.CategoryStore)
	deps.ReminderRepository = dbreminder.NewKVReminderRepository(
		context.Background(),
		deps.Store,
		deps.ReminderIdentityGenerator,
		deps.Logger,
	)
	deps.initForm()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeEventPublisher,
			closeStore,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.LogLevel)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initStore() func() {
	deps.Logger.Info(
		context.Background(),
		"Initializing storage.",
		dl.Entry("driver", deps.Config.StorageDriver),
	)
	switch deps.Config.StorageDriver {
	case config.STORAGE_SQLITE:
		return deps.initSQLiteStore()
	case config.STORAGE_POSTGRES:
		return deps.initPgxStore()
	case config.STORAGE_REDIS:
		return deps.initRedisStore()
	case config.STORAGE_MEMORY:
		deps.Store = kv.NewMemoryStore()
		return func() {}
	}
	panic(fmt.Sprintf("unknown storage driver %q", deps.Config.StorageDriver))
}

func (deps *Deps) initSQLiteStore() func() {
	store, err := kv.OpenSQLite(deps.Config.SQLitePath)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open SQLite database.", dl.Entry("err", err))
		panic(err)
	}
	deps.Store = store
	return func() {
		deps.Logger.Info(context.Background(), "Closing SQLite database.")
		store.Close()
		deps.Logger.Info(context.Background(), "SQLite database closed.")
	}
}

func (deps *Deps) initPgxStore() func() {
	if err := migrations.UpPostgres(deps.Config.PostgresqlURL); err != nil {
		deps.Logger.Error(context.Background(), "Could not migrate DB.", dl.Entry("err", err))
		panic(err)
	}
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	deps.Store = kv.NewPgxStore(db)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisStore() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	deps.Store = kv.NewRedisStore(redisClient, deps.Config.RedisKeyPrefix)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = false
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

// initEventPublisher sends events to SSE subscribers and, when RabbitMQ is
// configured, to the events exchange as well.
func (deps *Deps) initEventPublisher() func() {
	publishers := []events.Publisher{eventpublisher.NewSSE(deps.SseServer)}
	if deps.Config.RabbitmqURL == "" {
		deps.Logger.Info(context.Background(), "RabbitMQ is disabled.")
		deps.EventPublisher = eventpublisher.NewFanOut(publishers...)
		return func() {}
	}

	connection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = connection

	channel, err := connection.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := channel.DeclareTopicExchange(deps.Config.RabbitmqExchange); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	publishers = append(
		publishers,
		appevents.NewRabbitMQ(deps.Logger, channel, deps.Config.RabbitmqExchange, time.Now),
	)
	deps.EventPublisher = eventpublisher.NewFanOut(publishers...)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		channel.Close()
		connection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

// initForm seeds the form with the saved categories.
func (deps *Deps) initForm() {
	registry, err := deps.CategoryRepository.Load(context.Background())
	if err != nil {
		dl.Error(deps.Logger, context.Background(), err, dl.Entry("key", storage.CATEGORIES_KEY))
		deps.Logger.Warning(context.Background(), "Starting without saved categories.")
		registry = category.Registry{}
	}
	deps.Form = formstate.New(form.NewState(registry))
}
