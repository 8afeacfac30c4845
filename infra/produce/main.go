package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	TagService     *TagService
	CleanupService *CleanupService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	tagService := InitTagService(channel)
	if tagService == nil {
		panic("Failed to initialize Tag service")
	}

	cleanupService := InitCleanupService(channel)
	if cleanupService == nil {
		panic("Failed to initialize Cleanup service")
	}

	produceInstance = &Produce{
		TagService:     tagService,
		CleanupService: cleanupService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
