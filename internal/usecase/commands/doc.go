// Package commands holds the write-side use cases: grabbing and paying orders, queueing and
// reconciling purchase intents, catalog administration and login.
package commands

//go:generate mockgen -destination=commandsmock/mocks.go -package=commandsmock ticket-seckill/internal/usecase/commands AuthCommands,CatalogCommands,IntentCommands,OrderCommands
