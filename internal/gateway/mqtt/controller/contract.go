//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=controller_test
package controller

import (
	"context"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type client interface {
	IsConnected() bool
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
