package queries

//go:generate mockgen -destination=queriesmock/mocks.go -package=queriesmock ticket-seckill/internal/usecase/queries CatalogQueries,IntentQueries,OrderQueries,UserQueries
