package messaging

import (
	"fmt"

	"careportal-service/internal/app/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQ(driverConfig *config.DriverConfig, log *logrus.Logger) *amqp.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
